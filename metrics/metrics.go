package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Failure reasons recorded on EntityCreateFailures
const (
	ReasonExists     = "exists"
	ReasonInvalid    = "invalid"
	ReasonWrongValue = "wrong_value"
	ReasonUnexpected = "unexpected"
)

// Metrics tracks entity creation outcomes and storage retries.
// A nil *Metrics is valid and records nothing.
type Metrics struct {
	EntitiesCreated      *prometheus.CounterVec
	EntityCreateFailures *prometheus.CounterVec
	DBRetries            *prometheus.CounterVec
}

// New registers the registry metrics on reg
func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		EntitiesCreated: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "opex_entities_created_total",
			Help: "Total number of archive entities created",
		}, []string{"entity"}),
		EntityCreateFailures: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "opex_entity_create_failures_total",
			Help: "Total number of rejected archive entity creations by reason",
		}, []string{"entity", "reason"}),
		DBRetries: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "opex_db_retries_total",
			Help: "Total number of storage calls retried after a transient fault",
		}, []string{"operation"}),
	}
}

// IncrementCreated records a successful creation
func (m *Metrics) IncrementCreated(entity string) {
	if m == nil {
		return
	}
	m.EntitiesCreated.WithLabelValues(entity).Inc()
}

// IncrementFailure records a rejected creation
func (m *Metrics) IncrementFailure(entity, reason string) {
	if m == nil {
		return
	}
	m.EntityCreateFailures.WithLabelValues(entity, reason).Inc()
}

// IncrementRetry records one retry of a storage call. It matches
// database.RetryPolicy.OnRetry.
func (m *Metrics) IncrementRetry(operation string) {
	if m == nil {
		return
	}
	m.DBRetries.WithLabelValues(operation).Inc()
}
