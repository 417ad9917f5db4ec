package answer

import "github.com/kailas-cloud/filacolia/internal/domain/answer/mode"

// Answer is a composed reply to a single query.
type Answer struct {
	content        string
	mode           mode.Mode
	hasMoreDetails bool
}

// New creates an Answer.
func New(content string, m mode.Mode, hasMoreDetails bool) Answer {
	return Answer{content: content, mode: m, hasMoreDetails: hasMoreDetails}
}

// Content returns the answer text.
func (a *Answer) Content() string { return a.content }

// Mode returns the mode the answer was composed in.
func (a *Answer) Mode() mode.Mode { return a.mode }

// HasMoreDetails reports whether a fuller answer can be requested for the same query.
func (a *Answer) HasMoreDetails() bool { return a.hasMoreDetails }
