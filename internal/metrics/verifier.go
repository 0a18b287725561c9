package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	verifierVerificationsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "verifier",
		Name:      "verifications_total",
		Help:      "Count of candidate verifications by result.",
	}, []string{"result"})

	verifierVerificationDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "verifier",
		Name:      "verification_duration_seconds",
		Help:      "Duration of candidate verification including transformation and notification.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"result"})
)

// Verifier tracks metrics of the integrity gate.
type Verifier struct{}

// NewVerifier creates a Verifier metrics collector.
func NewVerifier() *Verifier {
	return &Verifier{}
}

// ObserveVerify records one verification. result is "accepted" or the failure class.
func (m Verifier) ObserveVerify(result string, started time.Time) {
	verifierVerificationsTotal.WithLabelValues(result).Inc()
	verifierVerificationDuration.WithLabelValues(result).Observe(time.Since(started).Seconds())
}
