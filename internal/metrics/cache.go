package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var cacheLookupsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
	Namespace: "m3terscan",
	Subsystem: "cache",
	Name:      "lookups_total",
	Help:      "Count of response cache lookups by result.",
}, []string{"cache", "result"})

// Cache tracks lookups against a response cache.
type Cache struct {
	name string
}

func NewCache(name string) *Cache {
	return &Cache{name: orUnknown(name)}
}

// ObserveLookup records a hit, a miss, or a failed lookup.
func (m Cache) ObserveLookup(hit bool, err error) {
	result := "miss"
	switch {
	case err != nil:
		result = "error"
	case hit:
		result = "hit"
	}
	cacheLookupsTotal.WithLabelValues(m.name, result).Inc()
}
