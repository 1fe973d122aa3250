package core

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"
)

// PrometheusMetricsRecorder exports service outcomes as Prometheus collectors.
type PrometheusMetricsRecorder struct {
	registry  *prometheus.Registry
	total     *prometheus.CounterVec
	durations *prometheus.HistogramVec
}

// NewPrometheusMetricsRecorder registers the service collectors on registry.
// A nil registry gets a fresh one.
func NewPrometheusMetricsRecorder(registry *prometheus.Registry) (*PrometheusMetricsRecorder, error) {
	if registry == nil {
		registry = prometheus.NewRegistry()
	}
	total := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "cleancore",
		Name:      "operations_total",
		Help:      "Service operations by outcome.",
	}, []string{"operation", "status"})
	durations := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "cleancore",
		Name:      "operation_duration_seconds",
		Help:      "Service operation latency.",
		Buckets:   prometheus.ExponentialBuckets(0.00001, 4, 8),
	}, []string{"operation"})
	for _, c := range []prometheus.Collector{total, durations} {
		if err := registry.Register(c); err != nil {
			return nil, fmt.Errorf("register collector: %w", err)
		}
	}
	return &PrometheusMetricsRecorder{registry: registry, total: total, durations: durations}, nil
}

// Registry returns the registry holding the recorder's collectors.
func (r *PrometheusMetricsRecorder) Registry() *prometheus.Registry {
	return r.registry
}

// Observe implements MetricsRecorder.
func (r *PrometheusMetricsRecorder) Observe(_ context.Context, operation string, success bool, duration time.Duration) {
	if operation == "" {
		return
	}
	r.total.WithLabelValues(operation, statusLabel(success)).Inc()
	r.durations.WithLabelValues(operation).Observe(duration.Seconds())
}

// WriteTo renders every gathered family in the text exposition format.
func (r *PrometheusMetricsRecorder) WriteTo(w io.Writer) (int64, error) {
	families, err := r.registry.Gather()
	if err != nil {
		return 0, fmt.Errorf("gather metrics: %w", err)
	}
	var written int64
	for _, mf := range families {
		n, err := expfmt.MetricFamilyToText(w, mf)
		written += int64(n)
		if err != nil {
			return written, err
		}
	}
	return written, nil
}
