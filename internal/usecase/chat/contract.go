package chat

import (
	"context"

	"github.com/kailas-cloud/filacolia/internal/domain/answer"
	"github.com/kailas-cloud/filacolia/internal/domain/answer/mode"
	"github.com/kailas-cloud/filacolia/internal/domain/ranking"
)

// Ranker scores the corpus against a query.
type Ranker interface {
	Rank(query string) []ranking.Scored
}

// AnswerCache stores composed answers. Implementations swallow their own
// failures and report them as misses.
type AnswerCache interface {
	Get(ctx context.Context, query string, m mode.Mode) (answer.Answer, bool)
	Put(ctx context.Context, query string, m mode.Mode, a answer.Answer)
}
