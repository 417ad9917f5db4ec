package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "filacolia"

// Chat Prometheus metrics.
var (
	ChatRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "chat_requests_total",
			Help:      "Total number of chat questions answered",
		},
		[]string{"mode", "outcome"}, // outcome: "found" / "not_found" / "invalid" / "error"
	)

	ChatRankedDocuments = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "chat_ranked_documents",
			Help:      "Number of documents ranked relevant per question",
			Buckets:   []float64{0, 1, 2, 3, 4, 5},
		},
	)

	AnswerCacheTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "answer_cache_total",
			Help:      "Answer cache hits and misses",
		},
		[]string{"result"}, // "hit" / "miss"
	)
)

var registerOnce sync.Once

// Register registers all Prometheus collectors of the service with the
// default registry. Safe to call more than once.
func Register() {
	registerOnce.Do(func() {
		prometheus.MustRegister(
			httpRequestDuration,
			httpRequestsTotal,
			httpInFlight,
			ChatRequestsTotal,
			ChatRankedDocuments,
			AnswerCacheTotal,
		)
	})
}
