package corpus

import "fmt"

// Document is a passage of the corpus (immutable value object).
type Document struct {
	content string
	volume  string
	chapter string
	source  string
}

// NewDocument validates and creates a Document.
// Content and source are required; volume and chapter are display labels.
func NewDocument(content, volume, chapter, source string) (Document, error) {
	if content == "" {
		return Document{}, fmt.Errorf("document content is required")
	}
	if source == "" {
		return Document{}, fmt.Errorf("document source is required")
	}
	return Document{content: content, volume: volume, chapter: chapter, source: source}, nil
}

// Content returns the passage text.
func (d *Document) Content() string { return d.content }

// Volume returns the volume label, e.g. "Tomo 1, Volume 1".
func (d *Document) Volume() string { return d.volume }

// Chapter returns the chapter label.
func (d *Document) Chapter() string { return d.chapter }

// Source returns the source identifier.
func (d *Document) Source() string { return d.source }
