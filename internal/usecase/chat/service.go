package chat

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/kailas-cloud/filacolia/internal/domain"
	"github.com/kailas-cloud/filacolia/internal/domain/answer"
	"github.com/kailas-cloud/filacolia/internal/domain/answer/mode"
	"github.com/kailas-cloud/filacolia/internal/logger"
	"github.com/kailas-cloud/filacolia/internal/metrics"
	"github.com/kailas-cloud/filacolia/internal/usecase/compose"
)

// Outcome labels of filacolia_chat_requests_total.
const (
	OutcomeFound    = "found"
	OutcomeNotFound = "not_found"
	OutcomeInvalid  = "invalid"
)

// Message is one turn of the conversation sent by the client.
type Message struct {
	Role    string
	Content string
}

// Service answers chat questions from the corpus.
type Service struct {
	ranker Ranker
	cache  AnswerCache
}

// New creates a chat service. cache can be nil.
func New(ranker Ranker, cache AnswerCache) *Service {
	return &Service{ranker: ranker, cache: cache}
}

// Answer ranks the corpus against the content of the last message and
// composes the answer in mode m.
func (s *Service) Answer(ctx context.Context, msgs []Message, m mode.Mode) (answer.Answer, error) {
	if len(msgs) == 0 {
		metrics.ChatRequestsTotal.WithLabelValues(string(m), OutcomeInvalid).Inc()
		return answer.Answer{}, domain.ErrNoMessages
	}
	if !m.IsValid() {
		metrics.ChatRequestsTotal.WithLabelValues("unknown", OutcomeInvalid).Inc()
		return answer.Answer{}, fmt.Errorf("mode %q: %w", m, domain.ErrInvalidMode)
	}

	query := msgs[len(msgs)-1].Content
	log := logger.FromContext(ctx)

	if s.cache != nil {
		if a, ok := s.cache.Get(ctx, query, m); ok {
			metrics.ChatRequestsTotal.WithLabelValues(string(m), outcome(a)).Inc()
			log.Debug("Answer served from cache", zap.String("mode", string(m)))
			return a, nil
		}
	}

	ranked := s.ranker.Rank(query)
	metrics.ChatRankedDocuments.Observe(float64(len(ranked)))

	a := compose.Compose(query, ranked, m)
	metrics.ChatRequestsTotal.WithLabelValues(string(m), outcome(a)).Inc()

	log.Debug("Answer composed",
		zap.String("mode", string(m)),
		zap.Int("ranked", len(ranked)),
		zap.Int("messages", len(msgs)),
	)

	if s.cache != nil {
		s.cache.Put(ctx, query, m, a)
	}

	return a, nil
}

func outcome(a answer.Answer) string {
	if a.Content() == compose.NotFoundMessage {
		return OutcomeNotFound
	}
	return OutcomeFound
}
