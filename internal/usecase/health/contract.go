package health

import "context"

// CachePinger checks answer cache availability.
type CachePinger interface {
	Ping(ctx context.Context) error
}

// LLMChecker checks the local language-model runtime.
type LLMChecker interface {
	HealthCheck(ctx context.Context) error
}
