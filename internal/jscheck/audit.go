// Package jscheck finds JavaScript problems in HTML pages.
//
// [Audit] runs cheap textual heuristics tuned to the site's tool pages.
// [Syntax] parses inline scripts and reports syntax errors.
package jscheck

import (
	"fmt"
	"regexp"
	"strings"
)

var _escapedGetElementByID = regexp.MustCompile(`getElementById\(\\'`)

// Audit checks a page for common signs of broken JavaScript
// and returns a description of each problem found.
//
// The checks are textual. Braces are counted across the whole page,
// CSS included, and script tags are counted only in their bare form.
func Audit(src string) []string {
	var issues []string

	if _escapedGetElementByID.MatchString(src) {
		issues = append(issues, "Escaped quotes in getElementById")
	}

	if open, close := strings.Count(src, "{"), strings.Count(src, "}"); open != close {
		issues = append(issues, fmt.Sprintf("Mismatched braces: %d open, %d close", open, close))
	}

	if !hasSubmitHandler(src) {
		issues = append(issues, "No form submit handler found")
	}

	if open, close := strings.Count(src, "<script>"), strings.Count(src, "</script>"); open != close {
		issues = append(issues, fmt.Sprintf("Mismatched script tags: %d open, %d close", open, close))
	}

	if n := strings.Count(src, "// Version:"); n > 1 {
		issues = append(issues, fmt.Sprintf("Multiple version comments (%d) - may clutter code", n))
	}

	return issues
}

func hasSubmitHandler(src string) bool {
	return strings.Contains(src, "onsubmit=") ||
		strings.Contains(src, `addEventListener('submit'`) ||
		strings.Contains(src, `addEventListener("submit"`)
}
