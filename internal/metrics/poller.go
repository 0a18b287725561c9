package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	pollerTicksTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "poller",
		Name:      "ticks_total",
		Help:      "Count of poll ticks by outcome.",
	}, []string{"outcome"})

	pollerTickDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "poller",
		Name:      "tick_duration_seconds",
		Help:      "Duration of poll ticks by outcome.",
		Buckets:   []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10},
	}, []string{"outcome"})

	pollerAttemptsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "poller",
		Name:      "attempts_total",
		Help:      "Count of per node pipeline attempts by stage reached and status.",
	}, []string{"node_id", "stage", "status"})

	pollerLastAcceptedIndex = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Subsystem: "poller",
		Name:      "last_accepted_index",
		Help:      "Index of the last accepted block.",
	})

	pollerArchiveTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "poller",
		Name:      "archive_total",
		Help:      "Count of raw block archival attempts.",
	}, []string{"status"})
)

// Poller tracks metrics of the peer race.
type Poller struct{}

// NewPoller creates a Poller metrics collector.
func NewPoller() *Poller {
	return &Poller{}
}

// ObserveTick records the outcome and duration of one tick.
func (m Poller) ObserveTick(outcome string, started time.Time) {
	pollerTicksTotal.WithLabelValues(outcome).Inc()
	pollerTickDuration.WithLabelValues(outcome).Observe(time.Since(started).Seconds())
}

// ObserveAttempt records how far a node pipeline got.
func (m Poller) ObserveAttempt(nodeID int64, stage string, err error) {
	pollerAttemptsTotal.WithLabelValues(strconv.FormatInt(nodeID, 10), stage, status(err)).Inc()
}

// SetLastAccepted publishes the index of the last accepted block.
func (m Poller) SetLastAccepted(index int64) {
	pollerLastAcceptedIndex.Set(float64(index))
}

// ObserveArchive records an archival attempt.
func (m Poller) ObserveArchive(err error) {
	pollerArchiveTotal.WithLabelValues(status(err)).Inc()
}
