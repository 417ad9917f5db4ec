package filacolia

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/kailas-cloud/filacolia/internal/db"
	dbRedis "github.com/kailas-cloud/filacolia/internal/db/redis"
	"github.com/kailas-cloud/filacolia/internal/domain/answer"
	"github.com/kailas-cloud/filacolia/internal/domain/answer/mode"
	"github.com/kailas-cloud/filacolia/internal/domain/corpus"
	"github.com/kailas-cloud/filacolia/internal/domain/footnote"
	"github.com/kailas-cloud/filacolia/internal/repository/answercache"
	chatuc "github.com/kailas-cloud/filacolia/internal/usecase/chat"
	healthuc "github.com/kailas-cloud/filacolia/internal/usecase/health"
	"github.com/kailas-cloud/filacolia/internal/usecase/rank"
)

const (
	defaultReadinessTimeout = 10 * time.Second
	defaultCacheTTL         = time.Hour
)

// Internal interfaces, replaced in tests.
type chatUseCase interface {
	Answer(ctx context.Context, msgs []chatuc.Message, m mode.Mode) (answer.Answer, error)
}

type healthUseCase interface {
	Check(ctx context.Context) healthuc.Report
}

// Client is the filacolia SDK entry point. It is safe for concurrent use.
type Client struct {
	store     db.Store
	chatSvc   chatUseCase
	healthSvc healthUseCase
	obs       *observer
}

// New creates a Client. When a cache server is configured the provided
// context bounds the initial readiness check.
func New(ctx context.Context, opts ...Option) (*Client, error) {
	cfg := &clientConfig{cacheTTL: defaultCacheTTL}
	for _, o := range opts {
		o.apply(cfg)
	}

	docs, err := buildCorpus(cfg.documents)
	if err != nil {
		return nil, err
	}

	obs, err := newObserver(cfg.logger, cfg.metricsReg)
	if err != nil {
		return nil, err
	}

	var (
		store   db.Store
		answers chatuc.AnswerCache
		pinger  healthuc.CachePinger
	)
	if cfg.driver != "" {
		store, err = createStore(ctx, cfg)
		if err != nil {
			return nil, err
		}
		answers = answercache.New(store, docs.Fingerprint(), cfg.cacheTTL, nil, zap.NewNop())
		pinger = store
	}

	return &Client{
		store:     store,
		chatSvc:   chatuc.New(rank.New(docs), answers),
		healthSvc: healthuc.New(pinger, nil),
		obs:       obs,
	}, nil
}

func buildCorpus(docs []Document) (*corpus.Corpus, error) {
	if len(docs) == 0 {
		return corpus.Default(), nil
	}
	out := make([]corpus.Document, 0, len(docs))
	for i, d := range docs {
		doc, err := corpus.NewDocument(d.Content, d.Volume, d.Chapter, d.Source)
		if err != nil {
			return nil, fmt.Errorf("filacolia: document %d: %w", i, err)
		}
		out = append(out, doc)
	}
	c, err := corpus.New(out)
	if err != nil {
		return nil, fmt.Errorf("filacolia: %w", err)
	}
	return c, nil
}

func createStore(ctx context.Context, cfg *clientConfig) (db.Store, error) {
	s, err := dbRedis.NewStore(dbRedis.Config{
		Addrs:    cfg.addrs,
		Password: cfg.password,
	})
	if err != nil {
		return nil, fmt.Errorf("filacolia: create %s store: %w", cfg.driver, err)
	}
	if err := s.WaitForReady(ctx, defaultReadinessTimeout); err != nil {
		s.Close()
		return nil, fmt.Errorf("filacolia: %s not ready: %w", cfg.driver, err)
	}
	return s, nil
}

// Close releases all resources.
func (c *Client) Close() {
	if c.store != nil {
		c.store.Close()
	}
}

// Ask answers a single question.
func (c *Client) Ask(ctx context.Context, question string, m Mode) (Answer, error) {
	return c.Chat(ctx, []Message{{Role: "user", Content: question}}, m)
}

// Chat answers the last message of a conversation. An empty mode selects Short.
func (c *Client) Chat(ctx context.Context, msgs []Message, m Mode) (a Answer, err error) {
	start := time.Now()
	defer func() { c.obs.observe("chat", start, err) }()

	md, err := mode.Parse(string(m))
	if err != nil {
		return Answer{}, fmt.Errorf("%w: %w", ErrInvalidMode, err)
	}

	in := make([]chatuc.Message, len(msgs))
	for i, msg := range msgs {
		in[i] = chatuc.Message{Role: msg.Role, Content: msg.Content}
	}

	res, err := c.chatSvc.Answer(ctx, in, md)
	if err != nil {
		return Answer{}, fmt.Errorf("chat: %w", err)
	}
	return answerFromDomain(res), nil
}

// Health checks the health of the configured components.
func (c *Client) Health(ctx context.Context) HealthStatus {
	report := c.healthSvc.Check(ctx)
	checks := make(map[string]string, len(report.Checks))
	for k, v := range report.Checks {
		checks[k] = string(v)
	}
	return HealthStatus{
		Status: string(report.Status),
		Checks: checks,
	}
}

func answerFromDomain(a answer.Answer) Answer {
	content, refs := footnote.Format(a.Content())
	out := Answer{
		Content:        content,
		Mode:           Mode(a.Mode()),
		HasMoreDetails: a.HasMoreDetails(),
	}
	for i, ref := range refs {
		out.Footnotes = append(out.Footnotes, Footnote{Number: i + 1, Reference: ref.String()})
	}
	return out
}
