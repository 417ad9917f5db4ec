package filacolia

import "github.com/kailas-cloud/filacolia/internal/domain"

// Sentinel errors re-exported from the domain layer.
// Use errors.Is() to check.
var (
	ErrInvalidRequest = domain.ErrInvalidRequest
	ErrNoMessages     = domain.ErrNoMessages
	ErrInvalidMode    = domain.ErrInvalidMode
)
