package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics provides observability for the kitchen module: lifecycle counters
// and the permission-check hot path.
type Metrics struct {
	KitchensCreated         prometheus.Counter
	InvitesSent             prometheus.Counter
	InvitesAccepted         prometheus.Counter
	MembersRemoved          prometheus.Counter
	PermissionCheckDuration prometheus.Histogram
}

// New creates a Metrics instance with all kitchen module metrics registered.
func New() *Metrics {
	return &Metrics{
		KitchensCreated: promauto.NewCounter(prometheus.CounterOpts{
			Name: "larder_kitchens_created_total",
			Help: "Total number of kitchens created",
		}),
		InvitesSent: promauto.NewCounter(prometheus.CounterOpts{
			Name: "larder_invites_sent_total",
			Help: "Total number of membership invitations sent",
		}),
		InvitesAccepted: promauto.NewCounter(prometheus.CounterOpts{
			Name: "larder_invites_accepted_total",
			Help: "Total number of membership invitations accepted",
		}),
		MembersRemoved: promauto.NewCounter(prometheus.CounterOpts{
			Name: "larder_members_removed_total",
			Help: "Total number of memberships removed by owners",
		}),
		PermissionCheckDuration: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "larder_permission_check_duration_seconds",
			Help:    "Duration of membership/ownership checks (every write path)",
			Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1},
		}),
	}
}

// ObservePermissionCheck records the duration of a permission check.
// Call with time.Now() at the start of the check.
func (m *Metrics) ObservePermissionCheck(start time.Time) {
	m.PermissionCheckDuration.Observe(time.Since(start).Seconds())
}
