package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	blockSourceFetchTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "block_source",
		Name:      "fetch_total",
		Help:      "Count of block file fetches per node.",
	}, []string{"node_id", "status"})

	blockSourceFetchDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "block_source",
		Name:      "fetch_duration_seconds",
		Help:      "Duration of block file fetches per node.",
		Buckets:   []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10},
	}, []string{"node_id", "status"})

	blockSourceFetchBytes = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "block_source",
		Name:      "fetch_bytes",
		Help:      "Size of fetched block files.",
		Buckets:   prometheus.ExponentialBuckets(1024, 4, 10),
	}, []string{"node_id"})
)

// BlockSource tracks metrics of block file downloads.
type BlockSource struct{}

// NewBlockSource creates a BlockSource metrics collector.
func NewBlockSource() *BlockSource {
	return &BlockSource{}
}

// ObserveFetch records a fetch outcome, duration and payload size.
func (m BlockSource) ObserveFetch(nodeID int64, err error, size int, started time.Time) {
	node := strconv.FormatInt(nodeID, 10)
	st := status(err)
	blockSourceFetchTotal.WithLabelValues(node, st).Inc()
	blockSourceFetchDuration.WithLabelValues(node, st).Observe(time.Since(started).Seconds())
	if err == nil {
		blockSourceFetchBytes.WithLabelValues(node).Observe(float64(size))
	}
}
