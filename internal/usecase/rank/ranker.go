package rank

import (
	"slices"
	"strings"
	"unicode/utf8"

	"github.com/kailas-cloud/filacolia/internal/domain/corpus"
	"github.com/kailas-cloud/filacolia/internal/domain/ranking"
)

// Scoring weights.
const (
	PhraseWeight = 15 // full query found verbatim in the content
	TokenWeight  = 3  // per occurrence of each query token
	// MinTokenLen is the shortest token (in characters) that contributes to the score.
	MinTokenLen = 3
)

// Ranker scores documents of a fixed corpus against free-text queries.
type Ranker struct {
	corpus *corpus.Corpus
}

// New creates a Ranker over c.
func New(c *corpus.Corpus) *Ranker {
	return &Ranker{corpus: c}
}

// Rank returns the most relevant documents for query, best first.
func (r *Ranker) Rank(query string) []ranking.Scored {
	return Rank(query, r.corpus)
}

// Rank scores every document of c against query and returns at most
// ranking.MaxResults documents with a positive score, sorted by descending
// score. Ties keep corpus order.
//
// Token occurrences are plain substring counts, so a token also matches
// inside longer words ("oração" counts in "coração").
func Rank(query string, c *corpus.Corpus) []ranking.Scored {
	q := strings.ToLower(query)
	tokens := Tokenize(q)
	phrase := strings.TrimSpace(q) != ""

	var scored []ranking.Scored
	for _, doc := range c.All() {
		content := strings.ToLower(doc.Content())

		score := 0
		if phrase && strings.Contains(content, q) {
			score += PhraseWeight
		}
		for _, tok := range tokens {
			score += strings.Count(content, tok) * TokenWeight
		}

		if score > 0 {
			scored = append(scored, ranking.New(doc, score))
		}
	}

	slices.SortStableFunc(scored, func(a, b ranking.Scored) int {
		return b.Relevance() - a.Relevance()
	})

	if len(scored) > ranking.MaxResults {
		scored = scored[:ranking.MaxResults]
	}
	return scored
}

// Tokenize splits a lowercased query on whitespace and drops tokens shorter
// than MinTokenLen characters. Repeated tokens are kept.
func Tokenize(q string) []string {
	fields := strings.Fields(q)
	tokens := fields[:0]
	for _, f := range fields {
		if utf8.RuneCountInString(f) >= MinTokenLen {
			tokens = append(tokens, f)
		}
	}
	return tokens
}
