package report

import (
	"io"

	"github.com/nao1215/scamscan/internal/model"
)

// Writer defines the interface for report output.
// Implementations write analysis results in various formats.
type Writer interface {
	// WriteBatch outputs the results of one analysis run.
	// Returns the number of bytes written and any error encountered.
	WriteBatch(report *model.BatchReport) (int, error)

	// WriteTrends outputs the trends and alerts of one time window.
	WriteTrends(report *model.TrendReport) (int, error)
}

// MultiWriter writes to multiple Writers simultaneously.
// This is useful for outputting to both terminal and file.
type MultiWriter struct {
	writers []Writer
}

// NewMultiWriter creates a Writer that writes to all provided Writers.
func NewMultiWriter(writers ...Writer) *MultiWriter {
	return &MultiWriter{writers: writers}
}

// WriteBatch outputs the report to all configured Writers.
// Returns the total bytes written across all writers.
// Stops on first error encountered.
func (m *MultiWriter) WriteBatch(report *model.BatchReport) (int, error) {
	var total int
	for _, w := range m.writers {
		n, err := w.WriteBatch(report)
		total += n
		if err != nil {
			return total, err
		}
	}
	return total, nil
}

// WriteTrends outputs the trend report to all configured Writers.
func (m *MultiWriter) WriteTrends(report *model.TrendReport) (int, error) {
	var total int
	for _, w := range m.writers {
		n, err := w.WriteTrends(report)
		total += n
		if err != nil {
			return total, err
		}
	}
	return total, nil
}

// baseWriter provides common functionality for report writers.
type baseWriter struct {
	output io.Writer
}

// newBaseWriter creates a baseWriter with the given output destination.
func newBaseWriter(output io.Writer) baseWriter {
	return baseWriter{output: output}
}

// verdict is the one-word outcome of a result.
func verdict(r *model.AnalysisResult) string {
	switch {
	case r.Degraded:
		return "FAILED"
	case r.Origin == model.OriginSocialPost && r.RiskLevel != model.RiskLevelNone:
		if r.IsFlagged {
			return "FLAGGED (" + r.RiskLevel.String() + ")"
		}
		return "OK (" + r.RiskLevel.String() + ")"
	case r.IsFlagged:
		return "SCAM"
	default:
		return "OK"
	}
}

// unitLabel names the unit a result belongs to.
func unitLabel(r *model.AnalysisResult) string {
	if r.UnitID != "" {
		return r.UnitID
	}
	return r.ID
}
