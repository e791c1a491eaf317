package analytics

import (
	"context"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// PrometheusSink counts events by action and category. Labels are not used
// as metric labels; they are free text.
type PrometheusSink struct {
	events *prometheus.CounterVec
}

// NewPrometheusSink registers almare_analytics_events_total with reg.
func NewPrometheusSink(reg prometheus.Registerer) *PrometheusSink {
	return &PrometheusSink{
		events: promauto.With(reg).NewCounterVec(prometheus.CounterOpts{
			Namespace: "almare",
			Name:      "analytics_events_total",
			Help:      "Analytics events recorded, by action and category.",
		}, []string{"action", "category"}),
	}
}

func (s *PrometheusSink) Track(_ context.Context, e Event) {
	s.events.WithLabelValues(e.Action, e.Category).Inc()
}

// Counter exposes the underlying vector, for tests and dashboards.
func (s *PrometheusSink) Counter() *prometheus.CounterVec {
	return s.events
}
