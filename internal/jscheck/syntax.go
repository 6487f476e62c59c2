package jscheck

import (
	"context"
	"fmt"
	"strings"
	"unicode/utf8"

	"braces.dev/errtrace"
	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/javascript"
)

// SyntaxError describes the first syntax error in a script.
type SyntaxError struct {
	// Line and Column are 1-based positions in the script.
	// Column counts bytes.
	Line, Column int

	Message string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("%d:%d: %s", e.Line, e.Column, e.Message)
}

// Longest excerpt of offending code quoted in messages.
const _maxExcerpt = 24

// Syntax parses code as the body of a JavaScript function,
// the way a browser would evaluate an inline script,
// and reports the first syntax error in it.
//
// It returns nil if the code parses cleanly.
// The error result is reserved for failures to parse at all,
// such as a cancelled context.
func Syntax(ctx context.Context, code string) (*SyntaxError, error) {
	parser := sitter.NewParser()
	defer parser.Close()
	parser.SetLanguage(javascript.GetLanguage())

	src := []byte(code)
	tree, err := parser.ParseCtx(ctx, nil, src)
	if err != nil {
		return nil, errtrace.Wrap(err)
	}
	defer tree.Close()

	root := tree.RootNode()
	if !root.HasError() {
		return nil, nil
	}

	node := firstError(root)
	if node == nil {
		// HasError without an ERROR or MISSING node to point at.
		node = root
	}

	pos := node.StartPoint()
	serr := &SyntaxError{
		Line:   int(pos.Row) + 1,
		Column: int(pos.Column) + 1,
	}
	switch {
	case node.IsMissing():
		serr.Message = fmt.Sprintf("missing %q", node.Type())
	case node.StartByte() == node.EndByte():
		serr.Message = "unexpected end of input"
	default:
		serr.Message = fmt.Sprintf("unexpected %q", excerpt(node.Content(src)))
	}
	return serr, nil
}

// firstError returns the first ERROR or MISSING node under n
// in document order.
func firstError(n *sitter.Node) *sitter.Node {
	if n.Type() == "ERROR" || n.IsMissing() {
		return n
	}
	for i := 0; i < int(n.ChildCount()); i++ {
		c := n.Child(i)
		if c == nil || !(c.HasError() || c.IsMissing()) {
			continue
		}
		if e := firstError(c); e != nil {
			return e
		}
	}
	return nil
}

// excerpt shortens s to its first line and at most _maxExcerpt runes.
func excerpt(s string) string {
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		s = s[:i]
	}
	s = strings.TrimSpace(s)
	if utf8.RuneCountInString(s) <= _maxExcerpt {
		return s
	}
	runes := []rune(s)
	return string(runes[:_maxExcerpt]) + "..."
}
