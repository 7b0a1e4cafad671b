// Package metrics exposes the Prometheus instrumentation for the store,
// the fallback reader and the admin HTTP surface.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// HTTP Metrics
var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameHTTPRequestsTotal,
			Help: HelpTextHTTPRequestsTotal,
		},
		[]string{LabelMethod, LabelPath, LabelStatus},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    MetricNameHTTPRequestDuration,
			Help:    HelpTextHTTPRequestDuration,
			Buckets: HTTPLatencyBuckets,
		},
		[]string{LabelMethod, LabelPath},
	)
)

// Store Metrics
var (
	StoreOperationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameStoreOperationsTotal,
			Help: HelpTextStoreOperationsTotal,
		},
		[]string{LabelOperation, LabelStatus},
	)

	SnapshotSavesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameSnapshotSavesTotal,
			Help: HelpTextSnapshotSavesTotal,
		},
		[]string{LabelKind},
	)
)

// Fallback Metrics
var (
	FallbackScansTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameFallbackScansTotal,
			Help: HelpTextFallbackScansTotal,
		},
	)

	CorruptRecordsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameCorruptRecordsTotal,
			Help: HelpTextCorruptRecordsTotal,
		},
	)
)

// RecordStoreOperation counts one store operation with its outcome.
func RecordStoreOperation(op string, err error) {
	status := StatusOK
	if err != nil {
		status = StatusError
	}
	StoreOperationsTotal.WithLabelValues(op, status).Inc()
}
