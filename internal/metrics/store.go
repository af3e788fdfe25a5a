package metrics

import (
	"time"

	"github.com/m3terscan/m3terscan-backend/internal/store"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	storeFetchTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "m3terscan",
		Subsystem: "store",
		Name:      "fetch_total",
		Help:      "Count of store fetches by resource and source.",
	}, []string{"resource", "source", "status"})
	storeFetchDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "m3terscan",
		Subsystem: "store",
		Name:      "fetch_duration_seconds",
		Help:      "Duration of store fetches.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"resource", "source", "status"})
	storeStaleTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "m3terscan",
		Subsystem: "store",
		Name:      "stale_results_total",
		Help:      "Count of fetch results dropped because a newer fetch was issued.",
	}, []string{"resource", "source"})
)

// Store tracks fetches made by the meter data store.
type Store struct{}

func NewStore() *Store {
	return &Store{}
}

// ObserveFetch records a fetch outcome and duration.
func (m Store) ObserveFetch(resource store.Resource, source string, err error, started time.Time) {
	s := status(err)
	source = orUnknown(source)
	storeFetchTotal.WithLabelValues(string(resource), source, s).Inc()
	storeFetchDuration.WithLabelValues(string(resource), source, s).Observe(time.Since(started).Seconds())
}

// ObserveStale records a dropped result.
func (m Store) ObserveStale(resource store.Resource, source string) {
	storeStaleTotal.WithLabelValues(string(resource), orUnknown(source)).Inc()
}
