package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"braces.dev/errtrace"
	"github.com/mystic-pages/sitefix/internal/page"
	"github.com/mystic-pages/sitefix/internal/reading"
	"github.com/mystic-pages/sitefix/internal/site"
	"go.uber.org/zap"
)

// Formatter makes reading pages easier to scan:
// it adds the highlight style, highlights key phrases,
// centers the reading text, and optionally puts each sentence
// on its own line.
type Formatter struct {
	Stdout io.Writer
	Log    *zap.Logger
	Pool   *pagePool

	// Filter selects the reading pages. Other pages are left alone.
	Filter *site.Filter

	// Labels whose paragraph text is highlighted.
	Labels []string

	// CSS is the highlight style rule.
	CSS string

	// Reflow, if set, selects the elements
	// whose sentences are split into paragraphs.
	Reflow *page.Selector

	// DryRun reports changes without writing them.
	DryRun bool
}

// formatReport is what happened to a single page.
type formatReport struct {
	Changed    bool
	NoStyle    bool // no </style> to add the highlight CSS to
	CSS        bool
	Highlights int
	Centered   bool
	Reflowed   int
}

// Changes lists the kinds of changes made, for display.
func (r *formatReport) Changes() []string {
	var changes []string
	if r.CSS {
		changes = append(changes, "CSS")
	}
	if r.Highlights > 0 {
		changes = append(changes, fmt.Sprintf("%d highlights", r.Highlights))
	}
	if r.Centered {
		changes = append(changes, "center-aligned")
	}
	if r.Reflowed > 0 {
		changes = append(changes, fmt.Sprintf("%d reflowed", r.Reflowed))
	}
	return changes
}

// Format formats the reading pages among pages
// and prints a summary of the changes.
func (f *Formatter) Format(ctx context.Context, pages []string) error {
	fmt.Fprintln(f.Stdout, "🎨 Improving reading formatting: sentences on new lines + color highlights...")
	fmt.Fprintln(f.Stdout)

	pages = readingPages(f.Log, f.Filter, pages)
	results := forEachPage(ctx, f.Pool, pages, f.formatPage)

	verb := "updated"
	if f.DryRun {
		verb = "would update"
	}

	var updated, failed int
	for _, res := range results {
		if res.Err != nil {
			failed++
			fmt.Fprintf(f.Stdout, "  ✗ Error processing %v: %v\n", res.Path, res.Err)
			continue
		}

		rep := res.Value
		if rep.NoStyle {
			fmt.Fprintf(f.Stdout, "  ⚠ %v - no </style> tag found\n", res.Path)
		}
		if rep.Changed {
			updated++
			fmt.Fprintf(f.Stdout, "  ✓ %v - %v: %v\n", res.Path, verb, strings.Join(rep.Changes(), ", "))
		}
	}

	fmt.Fprintln(f.Stdout)
	if f.DryRun {
		fmt.Fprintf(f.Stdout, "✅ Done! Would update %d files\n", updated)
	} else {
		fmt.Fprintf(f.Stdout, "✅ Done! Updated %d files\n", updated)
	}

	return errtrace.Wrap(failures(failed, len(pages)))
}

func (f *Formatter) formatPage(_ context.Context, path string) (*formatReport, error) {
	src, err := site.ReadPage(path)
	if err != nil {
		return nil, errtrace.Wrap(err)
	}

	var rep formatReport
	out, inserted, err := reading.InsertCSS(src, f.CSS)
	if err != nil {
		if !errors.Is(err, reading.ErrNoStyleTag) {
			return nil, errtrace.Wrap(err)
		}
		rep.NoStyle = true
	}
	rep.CSS = inserted

	out, rep.Highlights = reading.HighlightReading(out, f.Labels)
	out, rep.Centered = reading.CenterAlign(out)

	if f.Reflow != nil {
		regions, err := f.Reflow.Regions(out)
		if err != nil {
			return nil, fmt.Errorf("find %q: %w", f.Reflow, err)
		}
		out, rep.Reflowed = page.Replace(out, regions, reading.Reflow)
	}

	if out == src {
		return &rep, nil
	}
	rep.Changed = true

	if f.DryRun {
		return &rep, nil
	}
	if err := site.WritePage(path, out); err != nil {
		return nil, errtrace.Wrap(err)
	}
	f.Log.Debug("wrote page", zap.String("page", path), zap.Strings("changes", rep.Changes()))
	return &rep, nil
}

// readingPages filters pages down to reading pages.
func readingPages(log *zap.Logger, filter *site.Filter, pages []string) []string {
	keep := make([]string, 0, len(pages))
	for _, p := range pages {
		if filter.IsReading(p) {
			keep = append(keep, p)
		} else {
			log.Debug("not a reading page", zap.String("page", p))
		}
	}
	return keep
}

// failures builds the error for a run in which some pages failed.
func failures(failed, total int) error {
	if failed == 0 {
		return nil
	}
	return fmt.Errorf("%d of %d pages could not be processed", failed, total)
}
