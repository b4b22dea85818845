package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics provides observability for the template module.
// Tracks mutations per kind and how long they take.
type Metrics struct {
	TemplatesCreated   *prometheus.CounterVec
	TemplatesUpdated   *prometheus.CounterVec
	TemplatesDeleted   *prometheus.CounterVec
	TemplatesPublished *prometheus.CounterVec
	MutationDuration   *prometheus.HistogramVec
}

// New creates a Metrics instance registered with reg. A nil reg uses the
// default registerer.
func New(reg prometheus.Registerer) *Metrics {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	factory := promauto.With(reg)
	return &Metrics{
		TemplatesCreated: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "verifydesk_templates_created_total",
			Help: "Total number of templates created",
		}, []string{"kind"}),
		TemplatesUpdated: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "verifydesk_templates_updated_total",
			Help: "Total number of template updates",
		}, []string{"kind"}),
		TemplatesDeleted: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "verifydesk_templates_deleted_total",
			Help: "Total number of templates deleted",
		}, []string{"kind"}),
		TemplatesPublished: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "verifydesk_templates_published_total",
			Help: "Total number of templates moved to active",
		}, []string{"kind"}),
		MutationDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "verifydesk_template_mutation_duration_seconds",
			Help:    "Duration of template create, update, and delete operations",
			Buckets: []float64{0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05, 0.1},
		}, []string{"kind", "op"}),
	}
}

func (m *Metrics) IncrementCreated(kind string) {
	if m != nil {
		m.TemplatesCreated.WithLabelValues(kind).Inc()
	}
}

func (m *Metrics) IncrementUpdated(kind string) {
	if m != nil {
		m.TemplatesUpdated.WithLabelValues(kind).Inc()
	}
}

func (m *Metrics) IncrementDeleted(kind string) {
	if m != nil {
		m.TemplatesDeleted.WithLabelValues(kind).Inc()
	}
}

func (m *Metrics) IncrementPublished(kind string) {
	if m != nil {
		m.TemplatesPublished.WithLabelValues(kind).Inc()
	}
}

// ObserveMutation records how long op took on kind.
// Call with time.Now() at the start of the operation.
func (m *Metrics) ObserveMutation(kind, op string, start time.Time) {
	if m != nil {
		m.MutationDuration.WithLabelValues(kind, op).Observe(time.Since(start).Seconds())
	}
}
