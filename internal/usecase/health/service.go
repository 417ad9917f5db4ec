package health

import "context"

// Status represents the aggregated health status.
type Status string

const (
	// Healthy indicates all configured components are operational.
	Healthy Status = "ok"
	// Degraded indicates at least one component failed. Chat keeps working.
	Degraded Status = "degraded"
)

// CheckResult represents an individual component health check outcome.
type CheckResult string

const (
	// CheckOK indicates a passing health check.
	CheckOK CheckResult = "ok"
	// CheckError indicates a failing health check.
	CheckError CheckResult = "error"
)

// Check names.
const (
	CheckCache = "cache"
	CheckLLM   = "llm"
)

// Report aggregates health check results.
type Report struct {
	Status Status
	Checks map[string]CheckResult
}

// Service coordinates health checks.
type Service struct {
	cache CachePinger
	llm   LLMChecker
}

// New creates a Service. Both dependencies are optional; a nil one is
// left out of the report.
func New(cache CachePinger, llm LLMChecker) *Service {
	return &Service{cache: cache, llm: llm}
}

// Check runs health checks against all configured components.
func (s *Service) Check(ctx context.Context) Report {
	checks := make(map[string]CheckResult)

	if s.cache != nil {
		checks[CheckCache] = result(s.cache.Ping(ctx))
	}
	if s.llm != nil {
		checks[CheckLLM] = result(s.llm.HealthCheck(ctx))
	}

	status := Healthy
	for _, v := range checks {
		if v == CheckError {
			status = Degraded
			break
		}
	}

	return Report{Status: status, Checks: checks}
}

func result(err error) CheckResult {
	if err != nil {
		return CheckError
	}
	return CheckOK
}
