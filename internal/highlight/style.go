package highlight

import (
	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/styles"
)

// PlainStyle is a minimal syntax highlighting style for Chroma.
// It leaves most text as-is, and fades comments ever so slightly.
var PlainStyle = chroma.MustNewStyle("plain", map[chroma.TokenType]string{
	chroma.Comment:       "#666666",
	chroma.LiteralString: "#008700",
	chroma.Keyword:       "bold",
})

func init() {
	styles.Register(PlainStyle)
}

// Style returns the registered Chroma style with the given name,
// or [PlainStyle] if there isn't one.
func Style(name string) *chroma.Style {
	if s, ok := styles.Registry[name]; ok {
		return s
	}
	return PlainStyle
}
