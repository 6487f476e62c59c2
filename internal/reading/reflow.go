package reading

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

const (
	// Fragments with more paragraphs than this are considered
	// formatted already.
	_maxParagraphs = 10

	// _sentenceSep joins reflowed sentences.
	_sentenceSep = "\n                "
)

var (
	_tag = regexp.MustCompile(`<[^>]+>`)

	// A sentence ends with a period followed by whitespace
	// and a capital letter. The capital begins the next sentence.
	_sentenceEnd = regexp.MustCompile(`\.\s+[A-Z]`)

	_placeholder = regexp.MustCompile("\x00([0-9]+)\x00")
)

// Reflow puts each sentence of an HTML fragment in its own paragraph.
//
// Fragments that look formatted already or that have block structure
// (more than 10 <p> tags, or any <div>, <ul> or <ol>) are returned as-is,
// as are fragments containing NUL bytes.
//
// Tags are never split: a sentence boundary inside a tag is ignored.
// Sentences that already begin with a <p> tag are kept as they are.
// Others are wrapped in <p></p> and end with a '.'
// unless they end in some other punctuation.
func Reflow(fragment string) string {
	if strings.Count(fragment, "<p>") > _maxParagraphs {
		return fragment
	}
	// NUL marks the placeholders that stand in for tags.
	for _, block := range []string{"<div", "<ul", "<ol", "\x00"} {
		if strings.Contains(fragment, block) {
			return fragment
		}
	}

	// Swap tags out for placeholders so that periods and capitals
	// inside attributes can't end a sentence.
	var tags []string
	text := _tag.ReplaceAllStringFunc(fragment, func(tag string) string {
		tags = append(tags, tag)
		return fmt.Sprintf("\x00%d\x00", len(tags)-1)
	})
	restore := func(s string) string {
		return _placeholder.ReplaceAllStringFunc(s, func(p string) string {
			i, _ := strconv.Atoi(p[1 : len(p)-1])
			return tags[i]
		})
	}

	var paragraphs []string
	for _, sentence := range splitSentences(text) {
		sentence = strings.TrimSpace(sentence)
		if sentence == "" {
			continue
		}
		sentence = restore(sentence)

		if strings.HasPrefix(sentence, "<p") {
			paragraphs = append(paragraphs, sentence)
			continue
		}
		if !strings.HasSuffix(sentence, ".") &&
			!strings.HasSuffix(sentence, "!") &&
			!strings.HasSuffix(sentence, "?") {
			sentence += "."
		}
		paragraphs = append(paragraphs, "<p>"+sentence+"</p>")
	}

	return strings.Join(paragraphs, _sentenceSep)
}

// splitSentences splits text on sentence boundaries,
// dropping the period and whitespace that separate sentences.
func splitSentences(text string) []string {
	var (
		sentences []string
		last      int
	)
	for _, m := range _sentenceEnd.FindAllStringIndex(text, -1) {
		sentences = append(sentences, text[last:m[0]])
		// Keep the capital letter that ends the match.
		last = m[1] - 1
	}
	return append(sentences, text[last:])
}
