package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	apiClientRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "m3terscan",
		Subsystem: "api_client",
		Name:      "operations_total",
		Help:      "Count of outgoing API calls.",
	}, []string{"service", "operation", "status"})
	apiClientRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "m3terscan",
		Subsystem: "api_client",
		Name:      "operation_duration_seconds",
		Help:      "Duration of outgoing API calls.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"service", "operation", "status"})
)

// APIClient tracks calls made to an upstream service.
type APIClient struct {
	service string
}

// NewAPIClient constructs a metrics collector for calls to service.
func NewAPIClient(service string) *APIClient {
	return &APIClient{service: orUnknown(service)}
}

// Observe records a single call outcome and duration.
func (m APIClient) Observe(operation string, err error, started time.Time) {
	s := status(err)
	apiClientRequestsTotal.WithLabelValues(m.service, operation, s).Inc()
	apiClientRequestDuration.WithLabelValues(m.service, operation, s).Observe(time.Since(started).Seconds())
}
