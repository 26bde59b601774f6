package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Recorder implements domain.repository.Metrics using Prometheus.
type Recorder struct {
	analysesTotal  *prometheus.CounterVec
	errorsTotal    *prometheus.CounterVec
	lastConfidence *prometheus.GaugeVec
	latency        *prometheus.HistogramVec
}

// New creates a new Prometheus metrics recorder.
func New() *Recorder {
	return &Recorder{
		analysesTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "biasscope_analyses_total",
				Help: "Total number of completed analyses",
			},
			[]string{"symbol", "bias"},
		),
		errorsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "biasscope_errors_total",
				Help: "Total number of errors encountered",
			},
			[]string{"type"},
		),
		lastConfidence: promauto.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "biasscope_last_confidence",
				Help: "Confidence percentage of the last analysis per symbol",
			},
			[]string{"symbol"},
		),
		latency: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "biasscope_operation_duration_seconds",
				Help:    "Duration of operations in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"operation"},
		),
	}
}

// RecordAnalysis records a completed analysis by symbol and bias label.
func (r *Recorder) RecordAnalysis(symbol, biasLabel string) {
	r.analysesTotal.WithLabelValues(symbol, biasLabel).Inc()
}

// RecordError records an error occurrence.
func (r *Recorder) RecordError(kind string) {
	r.errorsTotal.WithLabelValues(kind).Inc()
}

// RecordConfidence records the confidence of the latest analysis for a symbol.
func (r *Recorder) RecordConfidence(symbol string, confidence float64) {
	r.lastConfidence.WithLabelValues(symbol).Set(confidence)
}

// RecordLatency records operation latency in seconds.
func (r *Recorder) RecordLatency(op string, seconds float64) {
	r.latency.WithLabelValues(op).Observe(seconds)
}
