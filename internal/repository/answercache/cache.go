package answercache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"github.com/kailas-cloud/filacolia/internal/db"
	"github.com/kailas-cloud/filacolia/internal/domain/answer"
	"github.com/kailas-cloud/filacolia/internal/domain/answer/mode"
)

// KeyPrefix namespaces cached answers in the shared store.
const KeyPrefix = "filacolia:answer:"

// store is the consumer interface for the answer cache (ISP).
type store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	SetWithTTL(ctx context.Context, key string, value []byte, ttl time.Duration) error
}

// entry is the stored form of an answer.
type entry struct {
	Content        string `json:"content"`
	Mode           string `json:"mode"`
	HasMoreDetails bool   `json:"has_more_details"`
}

// Cache stores composed answers in a key-value store.
// Store failures are logged and treated as misses; they never fail a request.
type Cache struct {
	store      store
	corpus     string
	ttl        time.Duration
	cacheTotal *prometheus.CounterVec
	logger     *zap.Logger
}

// New creates an answer cache for the corpus identified by corpusID
// (see corpus.Corpus.Fingerprint). Answers cached for one corpus are never
// served for another, even when both share a store.
// cacheTotal is a counter vec with label "result" ("hit"/"miss"), may be nil.
func New(s store, corpusID string, ttl time.Duration, cacheTotal *prometheus.CounterVec, logger *zap.Logger) *Cache {
	return &Cache{store: s, corpus: corpusID, ttl: ttl, cacheTotal: cacheTotal, logger: logger}
}

// Get returns the cached answer for (query, m).
func (c *Cache) Get(ctx context.Context, query string, m mode.Mode) (answer.Answer, bool) {
	key := c.key(query, m)

	data, err := c.store.Get(ctx, key)
	if err != nil {
		if !errors.Is(err, db.ErrKeyNotFound) {
			c.logger.Warn("Failed to get cached answer", zap.String("key", key), zap.Error(err))
		}
		c.inc("miss")
		return answer.Answer{}, false
	}

	var e entry
	if err := json.Unmarshal(data, &e); err != nil || !mode.Mode(e.Mode).IsValid() {
		c.logger.Warn("Failed to parse cached answer", zap.String("key", key), zap.Error(err))
		c.inc("miss")
		return answer.Answer{}, false
	}

	c.inc("hit")
	return answer.New(e.Content, mode.Mode(e.Mode), e.HasMoreDetails), true
}

// Put stores a for (query, m).
func (c *Cache) Put(ctx context.Context, query string, m mode.Mode, a answer.Answer) {
	key := c.key(query, m)

	data, err := json.Marshal(entry{
		Content:        a.Content(),
		Mode:           string(a.Mode()),
		HasMoreDetails: a.HasMoreDetails(),
	})
	if err != nil {
		c.logger.Warn("Failed to encode answer", zap.String("key", key), zap.Error(err))
		return
	}

	if err := c.store.SetWithTTL(ctx, key, data, c.ttl); err != nil {
		c.logger.Warn("Failed to cache answer", zap.String("key", key), zap.Error(err))
	}
}

func (c *Cache) inc(result string) {
	if c.cacheTotal != nil {
		c.cacheTotal.WithLabelValues(result).Inc()
	}
}

// key is KeyPrefix + corpus fingerprint + ":" + sha256(mode, query).
func (c *Cache) key(query string, m mode.Mode) string {
	h := sha256.Sum256([]byte(string(m) + "\x00" + query))
	return KeyPrefix + c.corpus + ":" + hex.EncodeToString(h[:])
}
