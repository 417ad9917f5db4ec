// Package footnote turns inline biblical references into numbered footnotes.
//
// Recognized forms are "Cf. Mateus XIII, 44" and the numbered variant
// "688: Cf. I Timóteo VI, 10", where the chapter is a roman or arabic
// numeral and the verse is optional.
package footnote

import (
	"regexp"
	"strconv"
	"strings"
)

var referenceRegex = regexp.MustCompile(
	`(?:(\d+):\s*)?Cf\.\s*([^,\n]+?)\s+([IVXLCDM]+|\d+)(?:,\s*(\d+(?:[-–]\d+)?))?\b`,
)

// Reference is a biblical reference found in a text.
type Reference struct {
	Number  string // note number preceding "Cf.", empty when absent
	Raw     string // matched text
	Book    string
	Chapter string
	Verse   string // empty when absent
}

// String renders the reference the way footnotes list it: "Book Chapter, Verse".
func (r Reference) String() string {
	s := r.Book + " " + r.Chapter
	if r.Verse != "" {
		s += ", " + r.Verse
	}
	return s
}

// Format replaces every reference in text with a "[n]" marker (1-based, in
// order of appearance) and returns the rewritten text with the footnotes.
func Format(text string) (string, []Reference) {
	locs := referenceRegex.FindAllStringSubmatchIndex(text, -1)
	if len(locs) == 0 {
		return text, nil
	}

	var b strings.Builder
	refs := make([]Reference, 0, len(locs))
	last := 0
	for i, loc := range locs {
		b.WriteString(text[last:loc[0]])
		b.WriteString("[" + strconv.Itoa(i+1) + "]")
		last = loc[1]

		refs = append(refs, Reference{
			Number:  group(text, loc, 1),
			Raw:     text[loc[0]:loc[1]],
			Book:    strings.TrimSpace(group(text, loc, 2)),
			Chapter: group(text, loc, 3),
			Verse:   group(text, loc, 4),
		})
	}
	b.WriteString(text[last:])
	return b.String(), refs
}

func group(text string, loc []int, n int) string {
	start, end := loc[2*n], loc[2*n+1]
	if start < 0 {
		return ""
	}
	return text[start:end]
}
