package filacolia

// Mode selects the answer length.
type Mode string

// Answer modes.
const (
	Short Mode = "sucinta"  // one excerpt of the best passage
	Full  Mode = "completa" // every relevant passage
)

// Document is a corpus passage.
type Document struct {
	Content string
	Volume  string
	Chapter string
	Source  string // unique identifier
}

// Message is one conversation turn.
type Message struct {
	Role    string
	Content string
}

// Footnote is a biblical reference lifted out of an answer.
type Footnote struct {
	Number    int    // marker number in Content, "[Number]"
	Reference string // e.g. "Mateus XIII, 44"
}

// Answer is a composed reply.
type Answer struct {
	Content        string
	Mode           Mode
	HasMoreDetails bool
	Footnotes      []Footnote
}

// HealthStatus represents the aggregated system health.
type HealthStatus struct {
	Status string            // "ok", "degraded"
	Checks map[string]string // component → "ok"/"error"
}
