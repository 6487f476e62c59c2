// Package page locates elements in an HTML page by CSS selector
// without re-serializing the document.
//
// Pages are tokenized, not parsed into a tree,
// so only compound selectors that can be decided
// from an element's own tag and attributes are supported:
// "div.result-content", "#reading", "section[data-reading]".
// Selectors with combinators never match.
package page

import (
	"bytes"
	"errors"
	"io"
	"strings"

	"braces.dev/errtrace"
	"github.com/andybalholm/cascadia"
	"golang.org/x/net/html"
)

// Region is the byte range [Start, End) of an element's content,
// excluding its start and end tags.
type Region struct {
	Start, End int
}

// Selector picks elements out of a page.
type Selector struct {
	raw string
	sel cascadia.Sel
}

// Compile parses a CSS selector.
func Compile(sel string) (*Selector, error) {
	s, err := cascadia.Parse(sel)
	if err != nil {
		return nil, errtrace.Wrap(err)
	}
	return &Selector{raw: sel, sel: s}, nil
}

// String returns the selector as it was written.
func (s *Selector) String() string { return s.raw }

// Regions returns the content of each element in src matched by s,
// in document order.
//
// Matches nested inside another match aren't reported.
// An element left open at the end of the page
// extends to the end of the page.
func (s *Selector) Regions(src string) ([]Region, error) {
	z := html.NewTokenizer(strings.NewReader(src))

	var (
		regions []Region
		offset  int

		// Name of the element whose content is being captured,
		// and how many elements of that name are open inside it.
		inside string
		depth  int
		start  int
	)
	for {
		tt := z.Next()
		if tt == html.ErrorToken {
			if err := z.Err(); !errors.Is(err, io.EOF) {
				return nil, errtrace.Wrap(err)
			}
			break
		}

		// Raw must be read before Token, which may reuse its buffer.
		tokStart := offset
		offset += len(z.Raw())
		tok := z.Token()

		switch tt {
		case html.StartTagToken:
			if inside != "" {
				if tok.Data == inside {
					depth++
				}
				continue
			}
			if isVoid(tok.Data) || !s.match(&tok) {
				continue
			}
			inside, depth, start = tok.Data, 1, offset

		case html.EndTagToken:
			if inside == "" || tok.Data != inside {
				continue
			}
			if depth--; depth == 0 {
				regions = append(regions, Region{Start: start, End: tokStart})
				inside = ""
			}
		}
	}

	if inside != "" {
		regions = append(regions, Region{Start: start, End: len(src)})
	}
	return regions, nil
}

func (s *Selector) match(tok *html.Token) bool {
	return s.sel.Match(&html.Node{
		Type:     html.ElementNode,
		DataAtom: tok.DataAtom,
		Data:     tok.Data,
		Attr:     tok.Attr,
	})
}

// Replace rewrites the content of each region with fn.
// Regions must be sorted and must not overlap,
// as returned by [Selector.Regions].
//
// It reports the number of regions whose content changed.
func Replace(src string, regions []Region, fn func(string) string) (string, int) {
	var (
		buf     bytes.Buffer
		last    int
		changed int
	)
	for _, r := range regions {
		buf.WriteString(src[last:r.Start])

		old := src[r.Start:r.End]
		repl := fn(old)
		if repl != old {
			changed++
		}
		buf.WriteString(repl)
		last = r.End
	}
	buf.WriteString(src[last:])
	return buf.String(), changed
}

// Elements that never have content or an end tag.
var _voidElements = map[string]struct{}{
	"area": {}, "base": {}, "br": {}, "col": {}, "embed": {},
	"hr": {}, "img": {}, "input": {}, "link": {}, "meta": {},
	"source": {}, "track": {}, "wbr": {},
}

func isVoid(name string) bool {
	_, ok := _voidElements[name]
	return ok
}
