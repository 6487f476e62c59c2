// Package reading implements the text transforms applied to reading pages.
//
// All transforms operate on raw page text with regular expressions
// and leave everything they don't match byte-for-byte intact.
// None of them parse or re-serialize the document.
package reading

// SpanOpen opens a highlight span.
const SpanOpen = `<span class="highlight">`

// SpanClose closes a highlight span.
const SpanClose = `</span>`

func wrap(s string) string {
	return SpanOpen + s + SpanClose
}
