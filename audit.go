package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"braces.dev/errtrace"
	"github.com/mystic-pages/sitefix/internal/jscheck"
	"github.com/mystic-pages/sitefix/internal/site"
	"go.uber.org/zap"
)

// Auditor looks for signs of broken JavaScript on the site's tool pages.
type Auditor struct {
	Stdout io.Writer
	Log    *zap.Logger
	Pool   *pagePool

	// Files are the tool pages to audit in each directory.
	Files []string
}

// Targets resolves the pages to audit.
//
// Each directory contributes those of its Files that exist.
// Files are audited as given.
// A page named more than once is audited once.
func (a *Auditor) Targets(paths ...string) ([]string, error) {
	var pages []string
	seen := make(map[string]struct{})
	add := func(path string) {
		if _, ok := seen[path]; ok {
			return
		}
		seen[path] = struct{}{}
		pages = append(pages, path)
	}

	for _, p := range paths {
		info, err := os.Stat(p)
		if err != nil {
			return nil, errtrace.Wrap(err)
		}
		if !info.IsDir() {
			add(filepath.Clean(p))
			continue
		}

		for _, name := range a.Files {
			path := filepath.Join(p, name)
			if _, err := os.Stat(path); err != nil {
				a.Log.Debug("skipping missing page", zap.String("page", path), zap.Error(err))
				continue
			}
			add(path)
		}
	}
	return pages, nil
}

// Audit audits pages and prints the problems found on each.
// It returns errFindings if there were any.
func (a *Auditor) Audit(ctx context.Context, pages []string) error {
	fmt.Fprintln(a.Stdout, "🔍 Checking for JavaScript issues...")
	fmt.Fprintln(a.Stdout)

	results := forEachPage(ctx, a.Pool, pages, func(_ context.Context, path string) ([]string, error) {
		src, err := site.ReadPage(path)
		if err != nil {
			return nil, errtrace.Wrap(err)
		}
		return jscheck.Audit(src), nil
	})

	var flagged, failed int
	for _, res := range results {
		switch {
		case res.Err != nil:
			failed++
			fmt.Fprintf(a.Stdout, "  ✗ Error processing %v: %v\n", res.Path, res.Err)
		case len(res.Value) > 0:
			flagged++
			fmt.Fprintf(a.Stdout, "⚠️  %v:\n", res.Path)
			for _, issue := range res.Value {
				fmt.Fprintf(a.Stdout, "    - %v\n", issue)
			}
		default:
			fmt.Fprintf(a.Stdout, "✅ %v: OK\n", res.Path)
		}
	}

	fmt.Fprintln(a.Stdout)
	fmt.Fprintln(a.Stdout, "🔍 Done checking files")

	if err := failures(failed, len(pages)); err != nil {
		return errtrace.Wrap(err)
	}
	if flagged > 0 {
		return errtrace.Wrap(errFindings)
	}
	return nil
}
