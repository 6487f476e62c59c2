package reading

import (
	"regexp"
	"strings"
)

var _resultContentJustify = regexp.MustCompile(`(\.result-content[^}]*text-align:\s*)justify`)

// CenterAlign switches justified .result-content rules to centered text.
// It reports whether the page changed.
func CenterAlign(src string) (string, bool) {
	if !strings.Contains(src, "text-align: justify") {
		return src, false
	}

	out := _resultContentJustify.ReplaceAllString(src, "${1}center")
	return out, out != src
}
