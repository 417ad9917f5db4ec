package compose

import (
	"iter"
	"regexp"
	"strings"
	"unicode/utf8"
)

// Excerpt length thresholds, in characters.
const (
	minParagraphLen = 50  // paragraphs at or below are dropped
	longParagraph   = 300 // paragraphs above are split into sentences
	minFragmentLen  = 30  // sentences and fragments at or below are dropped
)

var (
	paragraphBreak = regexp.MustCompile(`\n\s*\n`)
	sentenceEnd    = regexp.MustCompile(`[.!?]+`)
)

// Excerpts yields the paragraph- or sentence-level fragments of content.
// Fragments are produced on demand; ranging again restarts from the top.
// The sequence is empty when content has no fragment long enough.
func Excerpts(content string) iter.Seq[string] {
	return func(yield func(string) bool) {
		for _, p := range paragraphBreak.Split(content, -1) {
			if trimmedLen(p) <= minParagraphLen {
				continue
			}
			if utf8.RuneCountInString(p) <= longParagraph {
				if trimmedLen(p) > minFragmentLen && !yield(p) {
					return
				}
				continue
			}
			for _, s := range sentenceEnd.Split(p, -1) {
				if trimmedLen(s) > minFragmentLen && !yield(s) {
					return
				}
			}
		}
	}
}

// firstExcerpt returns the first fragment of content, or content itself
// when no fragment qualifies.
func firstExcerpt(content string) string {
	for e := range Excerpts(content) {
		return e
	}
	return content
}

func trimmedLen(s string) int {
	return utf8.RuneCountInString(strings.TrimSpace(s))
}

// truncate cuts s to at most n characters.
func truncate(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	i := 0
	for pos := range s {
		if i == n {
			return s[:pos]
		}
		i++
	}
	return s
}
