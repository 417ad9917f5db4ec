package corpus

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"iter"
)

// Corpus is a fixed, ordered collection of documents.
// It is built once and only read afterwards, so it is safe for concurrent use.
type Corpus struct {
	docs        []Document
	fingerprint string
}

// New creates a Corpus from docs, preserving their order.
// The slice is copied; later changes to docs are not observed.
func New(docs []Document) (*Corpus, error) {
	seen := make(map[string]struct{}, len(docs))
	for i := range docs {
		src := docs[i].Source()
		if _, dup := seen[src]; dup {
			return nil, fmt.Errorf("duplicate document source %q", src)
		}
		seen[src] = struct{}{}
	}

	c := make([]Document, len(docs))
	copy(c, docs)
	return build(c), nil
}

func build(docs []Document) *Corpus {
	return &Corpus{docs: docs, fingerprint: fingerprint(docs)}
}

// Len returns the number of documents.
func (c *Corpus) Len() int { return len(c.docs) }

// Fingerprint identifies the corpus contents and order.
// Two corpora share a fingerprint only if they hold the same documents in the same order.
func (c *Corpus) Fingerprint() string { return c.fingerprint }

// All yields documents in corpus order together with their position.
func (c *Corpus) All() iter.Seq2[int, Document] {
	return func(yield func(int, Document) bool) {
		for i, d := range c.docs {
			if !yield(i, d) {
				return
			}
		}
	}
}

// fingerprint hashes the ordered (source, content, volume, chapter) tuples.
// Fields are length-prefixed so that no two distinct corpora encode alike.
func fingerprint(docs []Document) string {
	h := sha256.New()
	for i := range docs {
		for _, field := range []string{docs[i].source, docs[i].content, docs[i].volume, docs[i].chapter} {
			fmt.Fprintf(h, "%d:%s", len(field), field)
		}
	}
	return hex.EncodeToString(h.Sum(nil))
}
