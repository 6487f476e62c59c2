package highlight

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHighlighter_Excerpt(t *testing.T) {
	t.Parallel()

	code := "var a = 1;\nvar b = 2;\nif (a { b(); }\nvar c = 3;\nvar d = 4;"

	tests := []struct {
		desc         string
		context      int
		line, column int
		want         []string
	}{
		{
			desc:   "no context",
			line:   3,
			column: 7,
			want: []string{
				"> 3 | if (a { b(); }",
				"    |       ^",
			},
		},
		{
			desc:    "context",
			context: 1,
			line:    3,
			column:  7,
			want: []string{
				"  2 | var b = 2;",
				"> 3 | if (a { b(); }",
				"  4 | var c = 3;",
				"    |       ^",
			},
		},
		{
			desc:    "context clipped at start",
			context: 2,
			line:    1,
			column:  1,
			want: []string{
				"> 1 | var a = 1;",
				"  2 | var b = 2;",
				"  3 | if (a { b(); }",
				"    | ^",
			},
		},
		{
			desc:   "out of range",
			line:   99,
			column: 99,
			want: []string{
				"> 5 | var d = 4;",
				"    |           ^",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.desc, func(t *testing.T) {
			t.Parallel()

			var buf bytes.Buffer
			h := Highlighter{Context: tt.context}
			require.NoError(t, h.Excerpt(&buf, code, tt.line, tt.column))
			assert.Equal(t, strings.Join(tt.want, "\n")+"\n", buf.String())
		})
	}
}

func TestHighlighter_Excerpt_widthAndTabs(t *testing.T) {
	t.Parallel()

	code := strings.Repeat("x();\n", 9) + "\tif (a {"

	var buf bytes.Buffer
	h := Highlighter{Context: 1}
	require.NoError(t, h.Excerpt(&buf, code, 10, 6))
	assert.Equal(t,
		"   9 | x();\n"+
			"> 10 | \tif (a {\n"+
			"     | \t    ^\n",
		buf.String())
}

func TestHighlighter_Excerpt_color(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	h := Highlighter{Color: true, Style: Style("monokai")}
	require.NoError(t, h.Excerpt(&buf, "var s = 'x'; // note", 1, 1))

	got := buf.String()
	assert.Contains(t, got, "\x1b[", "expected terminal escape codes")
	assert.Contains(t, got, "note")
	assert.Equal(t, 2, strings.Count(got, "\n"), "one code line and one caret line")
}

func TestStyle(t *testing.T) {
	t.Parallel()

	assert.Same(t, PlainStyle, Style("plain"))
	assert.Same(t, PlainStyle, Style("does-not-exist"))
	assert.NotSame(t, PlainStyle, Style("monokai"))
}
