// Package site finds the pages of a static website
// and reads and writes them.
package site

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"unicode/utf8"

	"braces.dev/errtrace"
	"github.com/mystic-pages/sitefix/internal/errdefer"
	"go.uber.org/zap"
	"golang.org/x/net/html"
	"golang.org/x/net/html/charset"
)

// ErrNotUTF8 indicates that a page isn't UTF-8 encoded.
// Pages are always written back as UTF-8,
// so these are refused rather than corrupted.
var ErrNotUTF8 = errors.New("page is not UTF-8")

// Filter decides which pages count as reading pages.
type Filter struct {
	// Keywords are substrings of the file name.
	// A page must match at least one.
	Keywords []string

	// Skip lists file names that never match.
	Skip []string
}

// IsReading reports whether the page at path is a reading page.
// Only the base name of path is considered.
func (f *Filter) IsReading(path string) bool {
	name := filepath.Base(path)
	if slices.Contains(f.Skip, name) {
		return false
	}
	for _, kw := range f.Keywords {
		if strings.Contains(name, kw) {
			return true
		}
	}
	return false
}

// Finder searches for HTML pages on disk.
type Finder struct {
	// Recursive descends into subdirectories
	// of directories passed to Find.
	Recursive bool

	// Log receives debug output. Defaults to a no-op logger.
	Log *zap.Logger
}

// _ignoredDirs are never descended into.
var _ignoredDirs = []string{".git", ".svn", "node_modules"}

// Find expands the given paths into a sorted list of HTML pages.
//
// Directories are replaced by the .html files inside them.
// Files are kept as-is, regardless of extension.
// It's an error for a path to not exist.
func (f *Finder) Find(paths ...string) ([]string, error) {
	log := f.Log
	if log == nil {
		log = zap.NewNop()
	}

	seen := make(map[string]struct{})
	var pages []string
	add := func(p string) {
		p = filepath.Clean(p)
		if _, ok := seen[p]; ok {
			return
		}
		seen[p] = struct{}{}
		pages = append(pages, p)
	}

	for _, root := range paths {
		info, err := os.Stat(root)
		if err != nil {
			return nil, errtrace.Wrap(err)
		}
		if !info.IsDir() {
			add(root)
			continue
		}

		log.Debug("searching directory", zap.String("dir", root), zap.Bool("recursive", f.Recursive))
		err = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if d.IsDir() {
				if path == root {
					return nil
				}
				if !f.Recursive || slices.Contains(_ignoredDirs, d.Name()) {
					return filepath.SkipDir
				}
				return nil
			}
			if d.Type().IsRegular() && strings.HasSuffix(d.Name(), ".html") {
				add(path)
			}
			return nil
		})
		if err != nil {
			return nil, fmt.Errorf("search %v: %w", root, err)
		}
	}

	slices.Sort(pages)
	log.Debug("found pages", zap.Int("count", len(pages)))
	return pages, nil
}

// ReadPage reads the page at path.
//
// It fails with [ErrNotUTF8] if the page isn't valid UTF-8,
// or if its markup declares a different character set.
func ReadPage(path string) (string, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return "", errtrace.Wrap(err)
	}

	if !utf8.Valid(b) {
		return "", errtrace.Wrap(ErrNotUTF8)
	}
	// DetermineEncoding is only certain about byte order marks.
	if _, name, certain := charset.DetermineEncoding(b, "text/html"); certain && name != "utf-8" {
		return "", fmt.Errorf("byte order mark for %q: %w", name, ErrNotUTF8)
	}
	if label := declaredCharset(b); label != "" {
		// Unknown labels are ignored.
		if _, name := charset.Lookup(label); name != "" && name != "utf-8" {
			return "", fmt.Errorf("declared charset %q: %w", label, ErrNotUTF8)
		}
	}

	return string(b), nil
}

// declaredCharset returns the charset label declared by the first
// <meta charset> or <meta http-equiv="Content-Type"> tag
// before the page body, or "" if there is none.
func declaredCharset(b []byte) string {
	z := html.NewTokenizer(bytes.NewReader(b))
	for {
		switch z.Next() {
		case html.ErrorToken:
			return ""
		case html.EndTagToken:
			if name, _ := z.TagName(); string(name) == "head" {
				return ""
			}
		case html.StartTagToken, html.SelfClosingTagToken:
			tok := z.Token()
			switch tok.Data {
			case "body":
				return ""
			case "meta":
				if label := metaCharset(tok.Attr); label != "" {
					return label
				}
			}
		}
	}
}

func metaCharset(attrs []html.Attribute) string {
	var httpEquiv bool
	var content string
	for _, a := range attrs {
		switch a.Key {
		case "charset":
			return strings.TrimSpace(a.Val)
		case "http-equiv":
			httpEquiv = strings.EqualFold(a.Val, "content-type")
		case "content":
			content = a.Val
		}
	}
	if !httpEquiv {
		return ""
	}
	return contentCharset(content)
}

// contentCharset extracts the charset parameter
// from a Content-Type value like "text/html; charset=utf-8".
func contentCharset(content string) string {
	_, rest, ok := strings.Cut(strings.ToLower(content), "charset")
	if !ok {
		return ""
	}
	rest = strings.TrimSpace(rest)
	rest, ok = strings.CutPrefix(rest, "=")
	if !ok {
		return ""
	}
	rest = strings.Trim(strings.TrimSpace(rest), `"'`)
	if i := strings.IndexAny(rest, "; \t\"'"); i >= 0 {
		rest = rest[:i]
	}
	return rest
}

// WritePage replaces the contents of the page at path.
//
// The new contents are written to a temporary file
// in the same directory and renamed over the original,
// so readers never see a partial page.
// The file mode of an existing page is preserved.
func WritePage(path, contents string) (err error) {
	mode := fs.FileMode(0o644)
	if info, err := os.Stat(path); err == nil {
		mode = info.Mode().Perm()
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*")
	if err != nil {
		return errtrace.Wrap(err)
	}
	defer errdefer.Remove(&err, tmp.Name())

	if err := writeAndClose(tmp, contents, mode); err != nil {
		return errtrace.Wrap(err)
	}

	return errtrace.Wrap(os.Rename(tmp.Name(), path))
}

func writeAndClose(f *os.File, contents string, mode fs.FileMode) (err error) {
	defer errdefer.Close(&err, f)

	if err := f.Chmod(mode); err != nil {
		return errtrace.Wrap(err)
	}
	_, err = f.WriteString(contents)
	return errtrace.Wrap(err)
}
