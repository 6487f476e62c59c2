package reading

import (
	"errors"
	"strings"
)

// ErrNoStyleTag indicates that a page has no </style> tag
// to insert the highlight rule before.
var ErrNoStyleTag = errors.New("no </style> tag found")

const (
	_cssMarker = ".highlight {"
	_styleEnd  = "</style>"
)

// InsertCSS adds css to the page's first style block.
//
// It does nothing if the page already defines the highlight class.
// Otherwise, css and a newline are placed directly before the first
// </style> tag. It fails with [ErrNoStyleTag] if there isn't one.
func InsertCSS(src, css string) (out string, inserted bool, err error) {
	if strings.Contains(src, _cssMarker) {
		return src, false, nil
	}

	idx := strings.Index(src, _styleEnd)
	if idx < 0 {
		return src, false, ErrNoStyleTag
	}

	return src[:idx] + css + "\n" + src[idx:], true, nil
}
