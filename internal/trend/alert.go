package trend

import (
	"cmp"
	"slices"

	"github.com/nao1215/scamscan/internal/model"
)

// Alerts returns the results that pass filter, ordered by confidence
// descending and then by most recent analysis. Degraded and nil results
// never alert.
//
// An empty filter.Levels accepts every level, including job posting
// results, which carry no risk level.
func Alerts(results []*model.AnalysisResult, filter model.AlertFilter) []*model.AnalysisResult {
	alerts := make([]*model.AnalysisResult, 0)
	for _, r := range results {
		if Matches(r, filter) {
			alerts = append(alerts, r)
		}
	}

	slices.SortStableFunc(alerts, func(a, b *model.AnalysisResult) int {
		if c := cmp.Compare(b.Confidence, a.Confidence); c != 0 {
			return c
		}
		return b.AnalyzedAt.Compare(a.AnalyzedAt)
	})
	return alerts
}

// Matches reports whether a single result passes filter.
func Matches(r *model.AnalysisResult, filter model.AlertFilter) bool {
	if r == nil || r.Degraded {
		return false
	}
	if r.Confidence < filter.MinConfidence {
		return false
	}
	if len(filter.Levels) > 0 && !slices.Contains(filter.Levels, r.RiskLevel) {
		return false
	}
	if !filter.Since.IsZero() && r.AnalyzedAt.Before(filter.Since) {
		return false
	}
	return true
}
