package metrics

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/nao1215/scamscan/internal/model"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestObserveResult(t *testing.T) {
	t.Parallel()

	m := New()
	m.ObserveResult(&model.AnalysisResult{Origin: model.OriginJobPosting, Confidence: 0.9, IsFlagged: true}, time.Millisecond)
	m.ObserveResult(&model.AnalysisResult{Origin: model.OriginJobPosting, Confidence: 0.1}, time.Millisecond)
	m.ObserveResult(&model.AnalysisResult{Origin: model.OriginSocialPost, Degraded: true}, time.Millisecond)
	m.ObserveResult(nil, time.Millisecond)

	tests := []struct {
		origin, outcome string
		want            float64
	}{
		{"job_posting", OutcomeScam, 1},
		{"job_posting", OutcomeLegitimate, 1},
		{"social_post", OutcomeFailed, 1},
		{"social_post", OutcomeScam, 0},
	}
	for _, tt := range tests {
		if got := testutil.ToFloat64(m.AnalysesTotal.WithLabelValues(tt.origin, tt.outcome)); got != tt.want {
			t.Errorf("analyses{%s,%s} = %v, want %v", tt.origin, tt.outcome, got, tt.want)
		}
	}
	// degraded results are not part of the confidence distribution
	if got := testutil.CollectAndCount(m.AnalysisConfidence); got != 1 {
		t.Errorf("confidence series = %d, want 1", got)
	}
}

func TestObserveRetrain(t *testing.T) {
	t.Parallel()

	m := New()
	m.ObserveRetrain(nil, 3, 12)
	m.ObserveRetrain(errors.New("bad example"), 0, 0)

	if got := testutil.ToFloat64(m.RetrainsTotal.WithLabelValues(StatusSuccess)); got != 1 {
		t.Errorf("successful retrains = %v, want 1", got)
	}
	if got := testutil.ToFloat64(m.RetrainsTotal.WithLabelValues(StatusFailure)); got != 1 {
		t.Errorf("failed retrains = %v, want 1", got)
	}
	if got := testutil.ToFloat64(m.ModelVersion); got != 3 {
		t.Errorf("model version = %v, want 3 (failure must not reset it)", got)
	}
	if got := testutil.ToFloat64(m.TrainingExamples); got != 12 {
		t.Errorf("training examples = %v, want 12", got)
	}
}

func TestNilMetrics(t *testing.T) {
	t.Parallel()

	var m *Metrics
	m.ObserveResult(&model.AnalysisResult{}, time.Second)
	m.ObserveClassifierUnavailable()
	m.ObserveRetrain(nil, 1, 1)
	if m.Registry() != nil {
		t.Error("nil metrics should have no registry")
	}
	if err := m.WriteTextfile(filepath.Join(t.TempDir(), "x.prom")); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestWriteTextfile(t *testing.T) {
	t.Parallel()

	m := New()
	m.ObserveClassifierUnavailable()
	path := filepath.Join(t.TempDir(), "scamscan.prom")

	if err := m.WriteTextfile(path); err != nil {
		t.Fatalf("WriteTextfile failed: %v", err)
	}
	data, err := os.ReadFile(path) //nolint:gosec // test file in temp dir
	if err != nil {
		t.Fatalf("read textfile: %v", err)
	}
	if !strings.Contains(string(data), "scamscan_classifier_unavailable_total 1") {
		t.Errorf("textfile missing counter:\n%s", data)
	}

	if err := m.WriteTextfile(""); !errors.Is(err, ErrNoTextfile) {
		t.Errorf("expected ErrNoTextfile, got %v", err)
	}
}
