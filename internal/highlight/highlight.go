package highlight

import (
	"bytes"
	"fmt"
	"io"
	"strconv"
	"strings"
	"sync"

	"braces.dev/errtrace"
	chroma "github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/formatters"
	"github.com/alecthomas/chroma/v2/lexers"
)

// Highlighter writes excerpts of JavaScript code.
type Highlighter struct {
	// Style used for syntax highlighting.
	// Defaults to PlainStyle.
	Style *chroma.Style

	// Color enables syntax highlighting with terminal escape codes.
	Color bool

	// Context is the number of lines to show
	// before and after the line of interest.
	Context int

	once  sync.Once
	lexer chroma.Lexer
}

func (h *Highlighter) init() {
	h.once.Do(func() {
		h.lexer = chroma.Coalesce(lexers.Get("javascript"))
		if h.Style == nil {
			h.Style = PlainStyle
		}
	})
}

// Excerpt writes the lines of code around line,
// numbered and with line marked,
// followed by a caret under the given column.
// Line and column are 1-based. Column counts bytes.
//
//	  2 | var b = 2;
//	> 3 | if (a { b(); }
//	    |       ^
func (h *Highlighter) Excerpt(w io.Writer, code string, line, column int) error {
	h.init()

	lines := strings.Split(code, "\n")
	line = clamp(line, 1, len(lines))
	first := max(1, line-h.Context)
	last := min(len(lines), line+h.Context)
	width := len(strconv.Itoa(last))

	var buf bytes.Buffer
	for n := first; n <= last; n++ {
		marker := "  "
		if n == line {
			marker = "> "
		}
		fmt.Fprintf(&buf, "%s%*d | ", marker, width, n)
		if err := h.writeLine(&buf, lines[n-1]); err != nil {
			return errtrace.Wrap(err)
		}
		buf.WriteByte('\n')
	}

	text := lines[line-1]
	column = clamp(column, 1, len(text)+1)
	fmt.Fprintf(&buf, "  %*s | %s^\n", width, "", indent(text[:column-1]))

	_, err := w.Write(buf.Bytes())
	return errtrace.Wrap(err)
}

func (h *Highlighter) writeLine(w io.Writer, line string) error {
	if !h.Color {
		_, err := io.WriteString(w, line)
		return errtrace.Wrap(err)
	}

	it, err := h.lexer.Tokenise(nil, line)
	if err != nil {
		return errtrace.Wrap(err)
	}

	// Lexers may add a trailing newline. Excerpt places its own.
	tokens := it.Tokens()
	for i := range tokens {
		tokens[i].Value = strings.ReplaceAll(tokens[i].Value, "\n", "")
	}
	return errtrace.Wrap(formatters.TTY256.Format(w, h.Style, chroma.Literator(tokens...)))
}

// indent returns whitespace as wide as s,
// keeping tabs so that the caret lines up.
func indent(s string) string {
	return strings.Map(func(r rune) rune {
		if r == '\t' {
			return r
		}
		return ' '
	}, s)
}

func clamp(v, lo, hi int) int {
	return max(lo, min(v, hi))
}
