// Package metrics exposes Prometheus collectors for content analysis.
//
// Collectors live on a private registry so that several engines can run in
// one process, and so the CLI can dump them to a node_exporter textfile.
package metrics

import (
	"errors"
	"time"

	"github.com/nao1215/scamscan/internal/model"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Outcome labels of AnalysesTotal.
const (
	OutcomeScam       = "scam"
	OutcomeLegitimate = "legitimate"
	OutcomeFailed     = "failed"
)

// Status labels of RetrainsTotal.
const (
	StatusSuccess = "success"
	StatusFailure = "failure"
)

// Metrics holds the collectors of one engine. A nil *Metrics is valid and
// records nothing.
type Metrics struct {
	registry *prometheus.Registry

	AnalysesTotal         *prometheus.CounterVec
	AnalysisConfidence    *prometheus.HistogramVec
	AnalysisDuration      *prometheus.HistogramVec
	ClassifierUnavailable prometheus.Counter
	RetrainsTotal         *prometheus.CounterVec
	ModelVersion          prometheus.Gauge
	TrainingExamples      prometheus.Gauge
}

// New registers the collectors on a fresh registry.
func New() *Metrics {
	reg := prometheus.NewRegistry()
	factory := promauto.With(reg)

	return &Metrics{
		registry: reg,
		AnalysesTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "scamscan_analyses_total",
				Help: "Total number of analyzed content units",
			},
			[]string{"origin", "outcome"},
		),
		AnalysisConfidence: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "scamscan_analysis_confidence",
				Help:    "Fused scam confidence of successful analyses",
				Buckets: prometheus.LinearBuckets(0.1, 0.1, 10),
			},
			[]string{"origin"},
		),
		AnalysisDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "scamscan_analysis_duration_seconds",
				Help:    "Duration of a single analysis in seconds",
				Buckets: prometheus.ExponentialBuckets(0.0001, 4, 8),
			},
			[]string{"origin"},
		),
		ClassifierUnavailable: factory.NewCounter(
			prometheus.CounterOpts{
				Name: "scamscan_classifier_unavailable_total",
				Help: "Analyses that continued without the classifier",
			},
		),
		RetrainsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "scamscan_retrains_total",
				Help: "Total number of retrain attempts",
			},
			[]string{"status"},
		),
		ModelVersion: factory.NewGauge(
			prometheus.GaugeOpts{
				Name: "scamscan_model_version",
				Help: "Version number of the active classifier model",
			},
		),
		TrainingExamples: factory.NewGauge(
			prometheus.GaugeOpts{
				Name: "scamscan_training_examples",
				Help: "Size of the training corpus behind the active model",
			},
		),
	}
}

// Registry returns the registry holding the collectors.
func (m *Metrics) Registry() *prometheus.Registry {
	if m == nil {
		return nil
	}
	return m.registry
}

// ObserveResult records one finished analysis.
func (m *Metrics) ObserveResult(r *model.AnalysisResult, elapsed time.Duration) {
	if m == nil || r == nil {
		return
	}
	origin := string(r.Origin)
	if origin == "" {
		origin = "unknown"
	}
	m.AnalysisDuration.WithLabelValues(origin).Observe(elapsed.Seconds())

	switch {
	case r.Degraded:
		m.AnalysesTotal.WithLabelValues(origin, OutcomeFailed).Inc()
		return
	case r.IsFlagged:
		m.AnalysesTotal.WithLabelValues(origin, OutcomeScam).Inc()
	default:
		m.AnalysesTotal.WithLabelValues(origin, OutcomeLegitimate).Inc()
	}
	m.AnalysisConfidence.WithLabelValues(origin).Observe(r.Confidence)
}

// ObserveClassifierUnavailable records an analysis that ran without the
// classifier.
func (m *Metrics) ObserveClassifierUnavailable() {
	if m == nil {
		return
	}
	m.ClassifierUnavailable.Inc()
}

// ObserveRetrain records a retrain attempt and, on success, the installed
// model.
func (m *Metrics) ObserveRetrain(err error, version, examples int) {
	if m == nil {
		return
	}
	if err != nil {
		m.RetrainsTotal.WithLabelValues(StatusFailure).Inc()
		return
	}
	m.RetrainsTotal.WithLabelValues(StatusSuccess).Inc()
	m.SetModel(version, examples)
}

// SetModel records the active model without counting a retrain.
func (m *Metrics) SetModel(version, examples int) {
	if m == nil {
		return
	}
	m.ModelVersion.Set(float64(version))
	m.TrainingExamples.Set(float64(examples))
}

// ErrNoTextfile is returned when WriteTextfile gets an empty path.
var ErrNoTextfile = errors.New("metrics textfile path is empty")

// WriteTextfile writes all collectors in the text exposition format,
// suitable for the node_exporter textfile collector.
func (m *Metrics) WriteTextfile(path string) error {
	if path == "" {
		return ErrNoTextfile
	}
	if m == nil {
		return nil
	}
	return prometheus.WriteToTextfile(path, m.registry)
}

