package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics provides observability for the recipe module.
type Metrics struct {
	RecipesCreated   prometheus.Counter
	IngredientsAdded prometheus.Counter
	StepsAdded       prometheus.Counter
}

// New creates a Metrics instance with all recipe module metrics registered.
func New() *Metrics {
	return &Metrics{
		RecipesCreated: promauto.NewCounter(prometheus.CounterOpts{
			Name: "larder_recipes_created_total",
			Help: "Total number of recipes created",
		}),
		IngredientsAdded: promauto.NewCounter(prometheus.CounterOpts{
			Name: "larder_recipe_ingredients_added_total",
			Help: "Total number of ingredients added to recipes",
		}),
		StepsAdded: promauto.NewCounter(prometheus.CounterOpts{
			Name: "larder_recipe_steps_added_total",
			Help: "Total number of steps added to recipes",
		}),
	}
}
