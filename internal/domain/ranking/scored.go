package ranking

import "github.com/kailas-cloud/filacolia/internal/domain/corpus"

// MaxResults is the maximum number of documents a ranking returns.
const MaxResults = 5

// Scored is a corpus document with its relevance for one query.
type Scored struct {
	doc       corpus.Document
	relevance int
}

// New creates a scored document.
func New(doc corpus.Document, relevance int) Scored {
	return Scored{doc: doc, relevance: relevance}
}

// Document returns the ranked document.
func (s *Scored) Document() corpus.Document { return s.doc }

// Relevance returns the keyword relevance score.
func (s *Scored) Relevance() int { return s.relevance }
