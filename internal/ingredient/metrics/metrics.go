package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics provides observability for the ingredient module, centered on the
// search hot path.
type Metrics struct {
	IngredientsCreated prometheus.Counter
	SearchesTotal      *prometheus.CounterVec
	SearchCacheHits    prometheus.Counter
	SearchCacheMisses  prometheus.Counter
	SearchDuration     prometheus.Histogram
}

// New creates a Metrics instance with all ingredient module metrics registered.
func New() *Metrics {
	return &Metrics{
		IngredientsCreated: promauto.NewCounter(prometheus.CounterOpts{
			Name: "larder_ingredients_created_total",
			Help: "Total number of ingredients created",
		}),
		SearchesTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "larder_ingredient_searches_total",
			Help: "Ingredient searches by the tier that answered them",
		}, []string{"tier"}),
		SearchCacheHits: promauto.NewCounter(prometheus.CounterOpts{
			Name: "larder_ingredient_search_cache_hits_total",
			Help: "Searches answered from the result cache",
		}),
		SearchCacheMisses: promauto.NewCounter(prometheus.CounterOpts{
			Name: "larder_ingredient_search_cache_misses_total",
			Help: "Searches that had to run the tier queries",
		}),
		SearchDuration: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "larder_ingredient_search_duration_seconds",
			Help:    "Duration of uncached tiered searches",
			Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1},
		}),
	}
}

// ObserveSearch records an uncached search with the tier that produced its
// results ("exact", "all_tokens", "any_token", or "none").
func (m *Metrics) ObserveSearch(tier string, start time.Time) {
	m.SearchesTotal.WithLabelValues(tier).Inc()
	m.SearchDuration.Observe(time.Since(start).Seconds())
}
