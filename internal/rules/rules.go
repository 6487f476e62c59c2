// Package rules holds the word lists and styles that drive sitefix's passes.
//
// The built-in rules are embedded in the binary.
// Users may lay a YAML file over them with [Load].
package rules

import (
	"bytes"
	_ "embed"
	"errors"
	"io"
	"os"
	"slices"

	"braces.dev/errtrace"
	"github.com/mystic-pages/sitefix/internal/must"
	"gopkg.in/yaml.v3"
)

//go:embed default.yaml
var _defaultYAML []byte

// Rules configures which pages are processed and what gets highlighted.
type Rules struct {
	// ReadingKeywords are filename substrings that mark a reading page.
	ReadingKeywords []string `yaml:"reading_keywords"`

	// SkipFiles are base names that are never treated as reading pages,
	// even if they match a keyword.
	SkipFiles []string `yaml:"skip_files"`

	// FormatLabels are the bold paragraph labels
	// whose text is highlighted by the format pass.
	FormatLabels []string `yaml:"format_labels"`

	// HighlightLabels are the bold paragraph labels
	// that the highlight pass turns into highlight spans.
	HighlightLabels []string `yaml:"highlight_labels"`

	// PowerWords are highlighted once per page
	// where they begin a sentence.
	PowerWords []string `yaml:"power_words"`

	// AuditFiles are the tool pages checked by the audit pass
	// when it's pointed at a directory.
	AuditFiles []string `yaml:"audit_files"`

	// HighlightCSS is the style rule inserted into pages
	// that don't define the highlight class yet.
	HighlightCSS string `yaml:"highlight_css"`
}

// Default returns the built-in rules.
// Each call returns a new copy that the caller may modify.
func Default() *Rules {
	r, err := decode(bytes.NewReader(_defaultYAML), new(Rules))
	must.NotErrorf(err, "built-in rules are invalid")
	return r
}

// Load reads rules from the YAML file at path
// and lays them over the built-in rules.
// Keys absent from the file keep their default values.
func Load(path string) (*Rules, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errtrace.Wrap(err)
	}
	defer f.Close()

	return errtrace.Wrap2(decode(f, Default()))
}

func decode(r io.Reader, into *Rules) (*Rules, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(into); err != nil {
		// An empty overlay changes nothing.
		if errors.Is(err, io.EOF) {
			return into, nil
		}
		return nil, errtrace.Wrap(err)
	}
	return into, nil
}

// AddSkipFiles appends names to the skip list, ignoring duplicates.
func (r *Rules) AddSkipFiles(names ...string) {
	r.SkipFiles = appendNew(r.SkipFiles, names...)
}

// AddReadingKeywords appends keywords to the reading keyword list,
// ignoring duplicates.
func (r *Rules) AddReadingKeywords(words ...string) {
	r.ReadingKeywords = appendNew(r.ReadingKeywords, words...)
}

func appendNew(items []string, add ...string) []string {
	for _, a := range add {
		if !slices.Contains(items, a) {
			items = append(items, a)
		}
	}
	return items
}
