package main

import (
	"context"
	"fmt"
	"io"

	"braces.dev/errtrace"
	"github.com/mystic-pages/sitefix/internal/reading"
	"github.com/mystic-pages/sitefix/internal/site"
	"go.uber.org/zap"
)

// LabelHighlighter adds highlight spans to the text of reading pages.
type LabelHighlighter struct {
	Stdout io.Writer
	Log    *zap.Logger
	Pool   *pagePool

	// Filter selects the reading pages. Other pages are left alone.
	Filter *site.Filter

	// Labels that become highlight spans.
	Labels []string

	// PowerWords highlighted at the start of a sentence.
	PowerWords []string

	// DryRun reports changes without writing them.
	DryRun bool
}

// Highlight highlights the reading pages among pages
// and prints how many phrases were highlighted in each.
func (h *LabelHighlighter) Highlight(ctx context.Context, pages []string) error {
	fmt.Fprintln(h.Stdout, "✨ Adding color highlights to reading content...")
	fmt.Fprintln(h.Stdout)

	pages = readingPages(h.Log, h.Filter, pages)
	results := forEachPage(ctx, h.Pool, pages, h.highlightPage)

	verb := "added"
	if h.DryRun {
		verb = "would add"
	}

	var updated, failed int
	for _, res := range results {
		switch {
		case res.Err != nil:
			failed++
			fmt.Fprintf(h.Stdout, "  ✗ Error processing %v: %v\n", res.Path, res.Err)
		case res.Value > 0:
			updated++
			fmt.Fprintf(h.Stdout, "  ✓ %v - %v %d highlighted phrases\n", res.Path, verb, res.Value)
		}
	}

	fmt.Fprintln(h.Stdout)
	if h.DryRun {
		fmt.Fprintf(h.Stdout, "✅ Done! Would add highlights to %d files\n", updated)
	} else {
		fmt.Fprintf(h.Stdout, "✅ Done! Added highlights to %d files\n", updated)
	}

	return errtrace.Wrap(failures(failed, len(pages)))
}

func (h *LabelHighlighter) highlightPage(_ context.Context, path string) (int, error) {
	src, err := site.ReadPage(path)
	if err != nil {
		return 0, errtrace.Wrap(err)
	}

	out, labels := reading.HighlightLabels(src, h.Labels)
	out, words := reading.HighlightPowerWords(out, h.PowerWords)
	if out == src {
		return 0, nil
	}

	changes := labels + words
	if h.DryRun {
		return changes, nil
	}
	if err := site.WritePage(path, out); err != nil {
		return 0, errtrace.Wrap(err)
	}
	h.Log.Debug("wrote page", zap.String("page", path), zap.Int("labels", labels), zap.Int("words", words))
	return changes, nil
}
