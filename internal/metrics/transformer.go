package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var transformerUnresolvedTotal = promauto.NewCounterVec(prometheus.CounterOpts{
	Namespace: namespace,
	Subsystem: "transformer",
	Name:      "unresolved_fields_total",
	Help:      "Count of record fields left unset because neither outputs nor earlier items provided them.",
}, []string{"transaction_type"})

// Transformer tracks metrics of record reconstruction.
type Transformer struct{}

// NewTransformer creates a Transformer metrics collector.
func NewTransformer() *Transformer {
	return &Transformer{}
}

// ObserveUnresolved counts one record field that could not be reconstructed.
func (m Transformer) ObserveUnresolved(transactionType string) {
	transformerUnresolvedTotal.WithLabelValues(transactionType).Inc()
}
