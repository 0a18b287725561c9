package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	recordWriterFlushTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "record_writer",
		Name:      "flush_total",
		Help:      "Count of record batch flushes.",
	}, []string{"status"})

	recordWriterFlushDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "record_writer",
		Name:      "flush_duration_seconds",
		Help:      "Duration of record batch flushes.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"status"})

	recordWriterFlushItems = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "record_writer",
		Name:      "flush_size",
		Help:      "Number of rows written per flush.",
		Buckets:   prometheus.ExponentialBuckets(1, 2, 14),
	}, []string{"kind"})
)

// RecordWriter tracks metrics of the storage sink.
type RecordWriter struct{}

// NewRecordWriter creates a RecordWriter metrics collector.
func NewRecordWriter() *RecordWriter {
	return &RecordWriter{}
}

// ObserveFlush records one flush of files and their item rows.
func (m RecordWriter) ObserveFlush(err error, files, items int, started time.Time) {
	st := status(err)
	recordWriterFlushTotal.WithLabelValues(st).Inc()
	recordWriterFlushDuration.WithLabelValues(st).Observe(time.Since(started).Seconds())
	recordWriterFlushItems.WithLabelValues("files").Observe(float64(files))
	recordWriterFlushItems.WithLabelValues("items").Observe(float64(items))
}
