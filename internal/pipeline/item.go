package pipeline

import (
	"errors"
	"strings"
	"time"

	"github.com/nao1215/scamscan/internal/model"
	"github.com/nao1215/scamscan/internal/risk"
)

// Item is the working state of one analysis.
type Item struct {
	// Unit is the input. It is never modified.
	Unit model.ContentUnit

	// Signals accumulate as steps run.
	Signals risk.Signals

	// Result is the result under construction.
	Result *model.AnalysisResult

	// Err is the error that stopped the analysis, if any.
	Err error

	// Warnings are non-fatal failures, such as an unavailable classifier.
	Warnings []error

	// Performed lists the names of the steps that completed.
	Performed []string
}

// NewItem creates the working state for unit.
func NewItem(unit model.ContentUnit, at time.Time) *Item {
	return &Item{
		Unit:   unit,
		Result: model.NewAnalysisResult(unit, at),
	}
}

// Warn records a non-fatal failure.
func (it *Item) Warn(err error) {
	it.Warnings = append(it.Warnings, err)
}

// HasWarning reports whether any warning matches target.
func (it *Item) HasWarning(target error) bool {
	for _, w := range it.Warnings {
		if errors.Is(w, target) {
			return true
		}
	}
	return false
}

// Final returns the finished result. A failed analysis yields a degraded
// result with zero confidence; warnings are recorded in Result.Error.
func (it *Item) Final() *model.AnalysisResult {
	if it.Err != nil {
		degraded := model.NewDegradedResult(it.Unit, it.Err, it.Result.AnalyzedAt)
		degraded.ID = it.Result.ID
		return degraded
	}
	if len(it.Warnings) > 0 {
		msgs := make([]string, len(it.Warnings))
		for i, w := range it.Warnings {
			msgs[i] = w.Error()
		}
		it.Result.Error = strings.Join(msgs, "; ")
	}
	return it.Result
}
