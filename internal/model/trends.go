package model

import "time"

// TermCount is a term and the number of results it appeared in.
type TermCount struct {
	Term  string `json:"term"`
	Count int    `json:"count"`
}

// Trends summarizes the most frequent signals over a window of results.
type Trends struct {
	TopKeywords  []TermCount `json:"top_keywords"`
	TopScamTypes []TermCount `json:"top_scam_types"`
	Analyzed     int         `json:"analyzed"`
	Flagged      int         `json:"flagged"`
}

// AlertFilter selects results worth surfacing as alerts.
type AlertFilter struct {
	// MinConfidence is the inclusive lower bound on confidence.
	MinConfidence float64 `json:"min_confidence"`

	// Levels restricts alerts to these risk levels. Empty means any level.
	Levels []RiskLevel `json:"levels,omitempty"`

	// Since excludes results analyzed before it. The zero time disables
	// the cutoff.
	Since time.Time `json:"since,omitempty"`
}
