package main

import (
	"bytes"
	"context"
	"path/filepath"
	"testing"

	"github.com/mystic-pages/sitefix/internal/rules"
	"github.com/mystic-pages/sitefix/internal/site"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

func TestLabelHighlighter_Highlight(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeSite(t, dir, map[string]string{
		"personal-year-reading.html": "<p><strong>Life Lesson:</strong> Patience.</p>\n" +
			"<p>This year. Transformation arrives.</p>",
		"numbers-reading.html": "<p>Nothing to see.</p>",
		"privacy.html":         "<p><strong>Life Lesson:</strong> Skipped.</p>",
	})

	rs := rules.Default()
	rs.AddReadingKeywords("privacy")
	log := zaptest.NewLogger(t)

	var stdout bytes.Buffer
	h := LabelHighlighter{
		Stdout:     &stdout,
		Log:        log,
		Pool:       &pagePool{Jobs: 1, Log: log},
		Filter:     &site.Filter{Keywords: rs.ReadingKeywords, Skip: rs.SkipFiles},
		Labels:     rs.HighlightLabels,
		PowerWords: rs.PowerWords,
	}

	pages, err := (&site.Finder{}).Find(dir)
	require.NoError(t, err)
	require.NoError(t, h.Highlight(context.Background(), pages))

	out := stdout.String()
	assert.Contains(t, out, "personal-year-reading.html - added 2 highlighted phrases")
	assert.NotContains(t, out, "numbers-reading.html")
	assert.Contains(t, out, "✅ Done! Added highlights to 1 files")

	got := readSite(t, dir)
	assert.Equal(t,
		`<p><span class="highlight">Life Lesson:</span> Patience.</p>`+"\n"+
			`<p>This year. <span class="highlight">Transformation</span> arrives.</p>`,
		got["personal-year-reading.html"])
	assert.Equal(t, "<p><strong>Life Lesson:</strong> Skipped.</p>", got["privacy.html"],
		"skip list wins over keywords")
}

func TestLabelHighlighter_Highlight_dryRun(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	const body = "<p><strong>Career Path:</strong> Teaching.</p>"
	writeSite(t, dir, map[string]string{"compatibility-chart.html": body})

	log := zaptest.NewLogger(t)
	var stdout bytes.Buffer
	h := LabelHighlighter{
		Stdout: &stdout,
		Log:    log,
		Pool:   &pagePool{Log: log},
		Filter: &site.Filter{Keywords: []string{"chart"}},
		Labels: []string{"Career Path"},
		DryRun: true,
	}
	require.NoError(t, h.Highlight(context.Background(), []string{filepath.Join(dir, "compatibility-chart.html")}))

	assert.Contains(t, stdout.String(), "would add 1 highlighted phrases")
	assert.Contains(t, stdout.String(), "Would add highlights to 1 files")
	assert.Equal(t, body, readSite(t, dir)["compatibility-chart.html"])
}
