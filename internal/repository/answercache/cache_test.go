package answercache

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"go.uber.org/zap"

	"github.com/kailas-cloud/filacolia/internal/domain/answer"
	"github.com/kailas-cloud/filacolia/internal/domain/answer/mode"
	"github.com/kailas-cloud/filacolia/internal/domain/corpus"
	"github.com/kailas-cloud/filacolia/internal/usecase/chat"
	"github.com/kailas-cloud/filacolia/internal/usecase/compose"
	"github.com/kailas-cloud/filacolia/internal/usecase/rank"
)

func TestPutThenGet(t *testing.T) {
	c, ms, counter := newTestCache(t)
	ctx := context.Background()

	saved := map[string][]byte{}
	var savedTTL time.Duration
	ms.setFn = func(_ context.Context, key string, value []byte, ttl time.Duration) error {
		saved[key] = value
		savedTTL = ttl
		return nil
	}
	ms.getFn = func(_ context.Context, key string) ([]byte, error) {
		v, ok := saved[key]
		if !ok {
			return nil, errors.New("unexpected key")
		}
		return v, nil
	}

	c.Put(ctx, "amor", mode.Short, answer.New("O amor...", mode.Short, true))
	if savedTTL != time.Hour {
		t.Errorf("ttl = %v, want 1h", savedTTL)
	}

	got, ok := c.Get(ctx, "amor", mode.Short)
	if !ok {
		t.Fatal("expected cache hit")
	}
	if got.Content() != "O amor..." || got.Mode() != mode.Short || !got.HasMoreDetails() {
		t.Errorf("unexpected answer: %q %q %v", got.Content(), got.Mode(), got.HasMoreDetails())
	}
	if v := testutil.ToFloat64(counter.WithLabelValues("hit")); v != 1 {
		t.Errorf("hit counter = %v, want 1", v)
	}
}

func TestGet_Miss(t *testing.T) {
	c, _, counter := newTestCache(t)

	if _, ok := c.Get(context.Background(), "amor", mode.Full); ok {
		t.Fatal("expected cache miss")
	}
	if v := testutil.ToFloat64(counter.WithLabelValues("miss")); v != 1 {
		t.Errorf("miss counter = %v, want 1", v)
	}
}

func TestGet_StoreErrorIsMiss(t *testing.T) {
	c, ms, _ := newTestCache(t)
	ms.getFn = func(_ context.Context, _ string) ([]byte, error) {
		return nil, errors.New("connection reset")
	}
	if _, ok := c.Get(context.Background(), "amor", mode.Short); ok {
		t.Fatal("expected miss on store error")
	}
}

func TestGet_CorruptEntryIsMiss(t *testing.T) {
	c, ms, _ := newTestCache(t)
	for _, data := range []string{"not json", `{"content":"x","mode":"error"}`} {
		ms.getFn = func(_ context.Context, _ string) ([]byte, error) {
			return []byte(data), nil
		}
		if _, ok := c.Get(context.Background(), "amor", mode.Short); ok {
			t.Errorf("expected miss for %q", data)
		}
	}
}

func TestPut_StoreErrorIsSwallowed(t *testing.T) {
	c, ms, _ := newTestCache(t)
	called := false
	ms.setFn = func(_ context.Context, _ string, _ []byte, _ time.Duration) error {
		called = true
		return errors.New("READONLY")
	}
	c.Put(context.Background(), "amor", mode.Full, answer.New("x", mode.Full, false))
	if !called {
		t.Error("expected store to be called")
	}
}

func TestCacheKey(t *testing.T) {
	c := New(&mockKVStore{}, "abc", time.Hour, nil, zap.NewNop())
	short := c.key("amor", mode.Short)
	full := c.key("amor", mode.Full)

	if !strings.HasPrefix(short, KeyPrefix+"abc:") {
		t.Errorf("key %q missing prefix", short)
	}
	if short == full {
		t.Error("keys must differ by mode")
	}
	if short != c.key("amor", mode.Short) {
		t.Error("key must be deterministic")
	}
	if c.key("Amor", mode.Short) == short {
		t.Error("keys are case-sensitive")
	}

	other := New(&mockKVStore{}, "xyz", time.Hour, nil, zap.NewNop())
	if other.key("amor", mode.Short) == short {
		t.Error("keys must differ by corpus")
	}
}

func TestSharedStore_CorporaIsolated(t *testing.T) {
	ms := newMemStore()
	ctx := context.Background()
	first := New(ms, "corpus-a", time.Hour, nil, zap.NewNop())
	second := New(ms, "corpus-b", time.Hour, nil, zap.NewNop())

	first.Put(ctx, "oração", mode.Full, answer.New("resposta A", mode.Full, false))

	if _, ok := second.Get(ctx, "oração", mode.Full); ok {
		t.Fatal("answer cached for one corpus served for another")
	}
	second.Put(ctx, "oração", mode.Full, answer.New("resposta B", mode.Full, false))

	a, ok := first.Get(ctx, "oração", mode.Full)
	if !ok || a.Content() != "resposta A" {
		t.Errorf("corpus-a answer = %q, %v", a.Content(), ok)
	}
	b, ok := second.Get(ctx, "oração", mode.Full)
	if !ok || b.Content() != "resposta B" {
		t.Errorf("corpus-b answer = %q, %v", b.Content(), ok)
	}
}

func TestSharedStore_ChatAnswersFollowCorpus(t *testing.T) {
	ms := newMemStore()
	ctx := context.Background()

	doc, err := corpus.NewDocument("Outro texto sobre a oração.", "Tomo X", "Outro", "outro")
	if err != nil {
		t.Fatalf("NewDocument: %v", err)
	}
	alt, err := corpus.New([]corpus.Document{doc})
	if err != nil {
		t.Fatalf("corpus.New: %v", err)
	}
	def := corpus.Default()

	newSvc := func(c *corpus.Corpus) *chat.Service {
		return chat.New(rank.New(c), New(ms, c.Fingerprint(), time.Hour, nil, zap.NewNop()))
	}
	defSvc, altSvc := newSvc(def), newSvc(alt)
	msgs := []chat.Message{{Role: "user", Content: "oração"}}

	if _, err := defSvc.Answer(ctx, msgs, mode.Full); err != nil {
		t.Fatalf("default answer: %v", err)
	}
	got, err := altSvc.Answer(ctx, msgs, mode.Full)
	if err != nil {
		t.Fatalf("alt answer: %v", err)
	}

	want := compose.Compose("oração", rank.Rank("oração", alt), mode.Full)
	if got.Content() != want.Content() {
		t.Errorf("alt corpus answer = %q, want %q", got.Content(), want.Content())
	}
}

func TestNew_NilCounter(t *testing.T) {
	_, ms, _ := newTestCache(t)
	c := New(ms, "test-corpus", 0, nil, zap.NewNop())
	if _, ok := c.Get(context.Background(), "q", mode.Short); ok {
		t.Fatal("expected miss")
	}
}
