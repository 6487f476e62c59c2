package jscheck

import (
	"regexp"
	"strings"
)

var _scriptBlock = regexp.MustCompile(`(?s)<script(?:\s[^>]*)?>(.*?)</script>`)

// Script is an inline or external <script> block.
type Script struct {
	// Index is the 1-based position of the block in the page,
	// counting every script block.
	Index int

	// External is set for blocks that load a src= file.
	// Their body is usually empty and not worth checking.
	External bool

	// Code is the text between the opening and closing tags.
	Code string

	// Line is the 1-based line of the page on which Code starts.
	Line int
}

// Scripts returns the script blocks in src in document order.
func Scripts(src string) []*Script {
	var scripts []*Script
	for i, m := range _scriptBlock.FindAllStringSubmatchIndex(src, -1) {
		openTag := src[m[0]:m[2]]
		scripts = append(scripts, &Script{
			Index:    i + 1,
			External: strings.Contains(openTag, " src="),
			Code:     src[m[2]:m[3]],
			Line:     strings.Count(src[:m[2]], "\n") + 1,
		})
	}
	return scripts
}

// Blank reports whether the script has no code in it.
func (s *Script) Blank() bool {
	return strings.TrimSpace(s.Code) == ""
}
