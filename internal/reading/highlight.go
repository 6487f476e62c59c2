package reading

import (
	"regexp"
	"strings"
)

// _nameParagraph matches a paragraph addressed to the reader by name,
// e.g. "<p>Sarah, your path is one of service.</p>".
var (
	_nameParagraph = regexp.MustCompile(`<p>([A-Z][a-z]+, your [^<]+)</p>`)
	_firstPhrase   = regexp.MustCompile(`^[^.,!?]+`)
)

// HighlightReading highlights the key phrases of a reading
// and returns the number of changes made.
//
// Pages that already contain a highlight span are left alone.
// Otherwise, two kinds of phrases are highlighted:
//
//   - the first phrase of each paragraph addressed to the reader by name,
//     up to the first '.', ',', '!' or '?'
//   - the text that follows each of the given labels
//     in paragraphs of the form "<p><strong>Label:</strong> text"
//
// Every name paragraph counts as one change.
// Every label counts as one change no matter how often it appears.
func HighlightReading(src string, labels []string) (string, int) {
	if strings.Contains(src, SpanOpen) {
		return src, 0
	}

	var changes int
	src = _nameParagraph.ReplaceAllStringFunc(src, func(m string) string {
		changes++
		body := _nameParagraph.FindStringSubmatch(m)[1]
		phrase := _firstPhrase.FindString(body)
		return "<p>" + wrap(phrase) + body[len(phrase):] + "</p>"
	})

	for _, label := range labels {
		// Leading whitespace stays outside the span,
		// and so does trailing whitespace before the next tag.
		re := regexp.MustCompile(`(<p><strong>` + regexp.QuoteMeta(label) + `:</strong>)(\s*)([^<]*[^<\s])`)
		out := re.ReplaceAllString(src, "${1}${2}"+SpanOpen+"${3}"+SpanClose)
		if out != src {
			changes++
			src = out
		}
	}

	return src, changes
}

// HighlightLabels turns bold paragraph labels into highlight spans:
//
//	<p><strong>Label:</strong>  =>  <p><span class="highlight">Label:</span>
//
// It returns the number of labels that were found.
func HighlightLabels(src string, labels []string) (string, int) {
	var changes int
	for _, label := range labels {
		old := "<p><strong>" + label + ":</strong>"
		if !strings.Contains(src, old) {
			continue
		}
		src = strings.ReplaceAll(src, old, "<p>"+wrap(label+":"))
		changes++
	}
	return src, changes
}

// HighlightPowerWords highlights the first occurrence of each word
// that starts a sentence or an element's text,
// i.e. follows a '.' or '>' and some whitespace.
//
// Matching is case-insensitive and the page's casing is kept.
// Words that are already highlighted somewhere on the page are skipped
// so that repeated runs don't keep adding spans.
//
// It returns the number of words that were highlighted.
func HighlightPowerWords(src string, words []string) (string, int) {
	var changes int
	for _, word := range words {
		quoted := regexp.QuoteMeta(word)

		done := regexp.MustCompile(`(?i)` + regexp.QuoteMeta(SpanOpen) + quoted + regexp.QuoteMeta(SpanClose))
		if done.MatchString(src) {
			continue
		}

		re := regexp.MustCompile(`(?i)[.>]\s+(` + quoted + `)\b`)
		loc := re.FindStringSubmatchIndex(src)
		if loc == nil {
			continue
		}

		start, end := loc[2], loc[3]
		src = src[:start] + wrap(src[start:end]) + src[end:]
		changes++
	}
	return src, changes
}
