package model

import (
	"time"
)

// BatchReport is the outcome of one analysis run over a set of units.
// It is the unit of output for the report writers.
type BatchReport struct {
	// GeneratedAt is when the report was assembled.
	GeneratedAt time.Time `json:"generated_at"`

	// ModelVersion identifies the classifier model used for the run.
	ModelVersion string `json:"model_version"`

	// LexiconVersion identifies the vocabulary resource used for the run.
	LexiconVersion string `json:"lexicon_version"`

	// Summary counts flagged, clean and failed units.
	Summary BatchSummary `json:"summary"`

	// Levels counts social post results per risk level.
	Levels RiskBreakdown `json:"levels"`

	// Results holds one result per unit in input order. Failed units have
	// degraded results.
	Results []*AnalysisResult `json:"results"`
}

// NewBatchReport assembles a report from batch items.
func NewBatchReport(items []BatchItem, modelVersion, lexiconVersion string, at time.Time) *BatchReport {
	results := Results(items)
	return &BatchReport{
		GeneratedAt:    at,
		ModelVersion:   modelVersion,
		LexiconVersion: lexiconVersion,
		Summary:        Summarize(items),
		Levels:         CountRiskLevels(results),
		Results:        results,
	}
}

// Flagged returns the flagged results of the report.
func (r *BatchReport) Flagged() []*AnalysisResult {
	flagged := make([]*AnalysisResult, 0)
	for _, res := range r.Results {
		if res.IsFlagged && !res.Degraded {
			flagged = append(flagged, res)
		}
	}
	return flagged
}

// Failed returns the degraded results of the report.
func (r *BatchReport) Failed() []*AnalysisResult {
	failed := make([]*AnalysisResult, 0)
	for _, res := range r.Results {
		if res.Degraded {
			failed = append(failed, res)
		}
	}
	return failed
}

// TrendReport combines the trends and alerts of one time window.
type TrendReport struct {
	GeneratedAt time.Time `json:"generated_at"`

	// Since is the start of the window. The window ends at GeneratedAt.
	Since time.Time `json:"since"`

	Trends Trends `json:"trends"`

	// Filter is the filter the alerts were selected with.
	Filter AlertFilter `json:"filter"`

	Alerts []*AnalysisResult `json:"alerts"`

	// Levels counts the window's social post results per risk level.
	Levels RiskBreakdown `json:"levels"`
}

// RiskBreakdown counts results per risk level.
type RiskBreakdown struct {
	Critical int `json:"critical"`
	High     int `json:"high"`
	Medium   int `json:"medium"`
	Low      int `json:"low"`
}

// Total returns the number of counted results.
func (b RiskBreakdown) Total() int {
	return b.Critical + b.High + b.Medium + b.Low
}

// Count returns the count for level.
func (b RiskBreakdown) Count(level RiskLevel) int {
	switch level {
	case RiskLevelCritical:
		return b.Critical
	case RiskLevelHigh:
		return b.High
	case RiskLevelMedium:
		return b.Medium
	case RiskLevelLow:
		return b.Low
	default:
		return 0
	}
}

// CountRiskLevels counts non-degraded results per risk level. Results
// without a risk level, such as job postings, are not counted.
func CountRiskLevels(results []*AnalysisResult) RiskBreakdown {
	var b RiskBreakdown
	for _, r := range results {
		if r == nil || r.Degraded {
			continue
		}
		switch r.RiskLevel {
		case RiskLevelCritical:
			b.Critical++
		case RiskLevelHigh:
			b.High++
		case RiskLevelMedium:
			b.Medium++
		case RiskLevelLow:
			b.Low++
		}
	}
	return b
}
