package mode

import "fmt"

// Mode is the answer length requested by the client.
type Mode string

// Answer mode constants. Values match the wire protocol.
const (
	// Short answers with one excerpt of the best document and offers more detail.
	Short Mode = "sucinta"
	// Full answers with every ranked document.
	Full Mode = "completa"
	// Error marks answers produced by the failure path.
	Error Mode = "error"
)

// IsValid reports whether the mode can be requested by a client.
func (m Mode) IsValid() bool {
	return m == Short || m == Full
}

// Parse converts a wire value into a Mode. An empty value selects Short.
func Parse(s string) (Mode, error) {
	if s == "" {
		return Short, nil
	}
	m := Mode(s)
	if !m.IsValid() {
		return "", fmt.Errorf("invalid answer mode: %q", s)
	}
	return m, nil
}
