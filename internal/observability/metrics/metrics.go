// Package metrics provides Prometheus metrics for observability.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "transcript_sentiment"

// Metrics holds all Prometheus metrics for the service.
type Metrics struct {
	// Run metrics
	RunsTotal   prometheus.Counter
	RunsFailed  prometheus.Counter
	RunDuration prometheus.Histogram

	// Line metrics (per attribution pass)
	LinesIngested prometheus.Counter
	LinesDropped  *prometheus.CounterVec

	// Utterance metrics
	UtterancesProduced prometheus.Counter
	UtterancesSkipped  *prometheus.CounterVec

	// Scoring metrics
	ScoreLatency *prometheus.HistogramVec
	ScoreErrors  *prometheus.CounterVec

	// Kafka publish metrics
	KafkaPublishTotal   *prometheus.CounterVec
	KafkaPublishErrors  *prometheus.CounterVec
	KafkaPublishLatency *prometheus.HistogramVec
}

// DefaultMetrics is the global metrics instance.
var DefaultMetrics = NewMetrics()

// NewMetrics creates and registers all Prometheus metrics.
func NewMetrics() *Metrics {
	return &Metrics{
		RunsTotal: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "runs_total",
			Help:      "Total number of transcript scoring runs started",
		}),
		RunsFailed: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "runs_failed_total",
			Help:      "Total number of runs that ended in error",
		}),
		RunDuration: promauto.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "run_duration_seconds",
			Help:      "End-to-end duration of a scoring run in seconds",
			Buckets:   []float64{0.01, 0.05, 0.1, 0.5, 1, 2, 5, 10, 30, 60},
		}),

		LinesIngested: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "lines_ingested_total",
			Help:      "Total raw transcript lines consumed",
		}),
		LinesDropped: promauto.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "lines_dropped_total",
			Help:      "Total lines dropped during attribution",
		}, []string{"reason"}),

		UtterancesProduced: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "utterances_produced_total",
			Help:      "Total utterances produced by attribution",
		}),
		UtterancesSkipped: promauto.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "utterances_skipped_total",
			Help:      "Total utterances skipped after attribution",
		}, []string{"reason"}),

		ScoreLatency: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "score_latency_seconds",
			Help:      "Latency of scoring one utterance",
			Buckets:   []float64{0.0001, 0.001, 0.01, 0.05, 0.1, 0.5, 1, 5},
		}, []string{"provider"}),
		ScoreErrors: promauto.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "score_errors_total",
			Help:      "Total scoring failures",
		}, []string{"provider"}),

		KafkaPublishTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "kafka_publish_total",
			Help:      "Total Kafka publish attempts",
		}, []string{"topic", "event_type"}),
		KafkaPublishErrors: promauto.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "kafka_publish_errors_total",
			Help:      "Total Kafka publish failures",
		}, []string{"topic", "event_type"}),
		KafkaPublishLatency: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "kafka_publish_latency_seconds",
			Help:      "Latency of Kafka publishes",
			Buckets:   []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1, 5},
		}, []string{"topic", "event_type"}),
	}
}

// RecordRun records a completed run.
func (m *Metrics) RecordRun(success bool, seconds float64) {
	m.RunsTotal.Inc()
	if !success {
		m.RunsFailed.Inc()
	}
	m.RunDuration.Observe(seconds)
}

// RecordAttribution records the line accounting of one attribution pass.
func (m *Metrics) RecordAttribution(lines, noise, labels, preamble, other, utterances int) {
	m.LinesIngested.Add(float64(lines))
	m.LinesDropped.WithLabelValues("noise").Add(float64(noise))
	m.LinesDropped.WithLabelValues("label").Add(float64(labels))
	m.LinesDropped.WithLabelValues("preamble").Add(float64(preamble))
	m.LinesDropped.WithLabelValues("other_speaker").Add(float64(other))
	m.UtterancesProduced.Add(float64(utterances))
}

// RecordScore records one scoring attempt.
func (m *Metrics) RecordScore(provider string, err error, seconds float64) {
	if err != nil {
		m.ScoreErrors.WithLabelValues(provider).Inc()
		m.UtterancesSkipped.WithLabelValues("score_error").Inc()
		return
	}
	m.ScoreLatency.WithLabelValues(provider).Observe(seconds)
}

// RecordKafkaPublish records one publish attempt.
func (m *Metrics) RecordKafkaPublish(topic, eventType string, err error, seconds float64) {
	m.KafkaPublishTotal.WithLabelValues(topic, eventType).Inc()
	if err != nil {
		m.KafkaPublishErrors.WithLabelValues(topic, eventType).Inc()
		return
	}
	m.KafkaPublishLatency.WithLabelValues(topic, eventType).Observe(seconds)
}
