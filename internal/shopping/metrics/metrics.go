package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics provides observability for the shopping module.
type Metrics struct {
	ListsCreated prometheus.Counter
	ItemsAdded   prometheus.Counter
	ItemsChecked prometheus.Counter
}

// New creates a Metrics instance with all shopping module metrics registered.
func New() *Metrics {
	return &Metrics{
		ListsCreated: promauto.NewCounter(prometheus.CounterOpts{
			Name: "larder_shopping_lists_created_total",
			Help: "Total number of shopping lists created",
		}),
		ItemsAdded: promauto.NewCounter(prometheus.CounterOpts{
			Name: "larder_shopping_items_added_total",
			Help: "Total number of items added to shopping lists",
		}),
		ItemsChecked: promauto.NewCounter(prometheus.CounterOpts{
			Name: "larder_shopping_items_checked_total",
			Help: "Total number of shopping list items checked off",
		}),
	}
}
