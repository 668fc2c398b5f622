package model

import (
	"time"

	"github.com/google/uuid"
)

// Sentiment is the lexical polarity of a text.
type Sentiment struct {
	// Score is the sum of the polarity weights of all matched tokens.
	Score int `json:"score"`

	// Comparative is Score divided by the number of tokens, or zero when
	// the text has no tokens.
	Comparative float64 `json:"comparative"`

	// Positive lists the tokens that contributed positively, in text order.
	Positive []string `json:"positive,omitempty"`

	// Negative lists the tokens that contributed negatively, in text order.
	Negative []string `json:"negative,omitempty"`
}

// Classification is one label/probability pair produced by the classifier.
type Classification struct {
	Label       Label   `json:"label"`
	Probability float64 `json:"probability"`
}

// AnalysisResult is the risk assessment of one content unit.
// A result is never mutated after it is returned by the engine.
type AnalysisResult struct {
	// ID uniquely identifies this result.
	ID string `json:"id"`

	// UnitID is the caller-supplied identifier of the analyzed unit.
	UnitID string `json:"unit_id,omitempty"`

	// Origin is the origin of the analyzed unit.
	Origin Origin `json:"origin"`

	// Platform is the social platform, for social posts.
	Platform SocialPlatform `json:"platform,omitempty"`

	// Confidence is the fused risk in [0, 1].
	Confidence float64 `json:"confidence"`

	// IsFlagged reports whether Confidence crossed the policy threshold.
	IsFlagged bool `json:"is_flagged"`

	// IsScam mirrors IsFlagged for job postings and is always false for
	// social posts.
	IsScam bool `json:"is_scam"`

	// RiskLevel is set for social posts only.
	RiskLevel RiskLevel `json:"risk_level,omitempty"`

	// ScamTypes is the de-duplicated, ordered list of attributed scam types.
	ScamTypes []ScamType `json:"scam_types,omitempty"`

	// RedFlags lists the structural rules that fired.
	RedFlags []RedFlag `json:"red_flags,omitempty"`

	// FlaggedKeywords lists vocabulary entries found, in vocabulary order.
	FlaggedKeywords []string `json:"flagged_keywords,omitempty"`

	// FlaggedPatterns lists distinct regex matches.
	FlaggedPatterns []string `json:"flagged_patterns,omitempty"`

	// Sentiment is the lexical polarity of the text.
	Sentiment Sentiment `json:"sentiment"`

	// ScamProbability is the classifier's scam probability when the
	// classifier contributed.
	ScamProbability float64 `json:"scam_probability,omitempty"`

	// ClassifierUsed reports whether the classifier signal was fused.
	ClassifierUsed bool `json:"classifier_used"`

	// Recommendations are human-readable advice strings.
	Recommendations []string `json:"recommendations,omitempty"`

	// ModelVersion identifies the classifier model used for this result.
	ModelVersion string `json:"model_version,omitempty"`

	// AnalyzedAt is when the analysis completed.
	AnalyzedAt time.Time `json:"analyzed_at"`

	// Error is set on degraded results and on results where a
	// non-fatal step failed (for example an unavailable classifier).
	Error string `json:"error,omitempty"`

	// Degraded marks a result produced for a unit that could not be
	// analyzed at all.
	Degraded bool `json:"degraded,omitempty"`
}

// NewAnalysisResult creates an empty result for the given unit.
func NewAnalysisResult(unit ContentUnit, at time.Time) *AnalysisResult {
	return &AnalysisResult{
		ID:         uuid.New().String(),
		UnitID:     unit.ID,
		Origin:     unit.Origin,
		Platform:   unit.Platform,
		AnalyzedAt: at,
	}
}

// NewDegradedResult creates the zero-confidence result returned for a
// unit whose analysis failed.
func NewDegradedResult(unit ContentUnit, err error, at time.Time) *AnalysisResult {
	r := NewAnalysisResult(unit, at)
	r.Degraded = true
	if err != nil {
		r.Error = err.Error()
	}
	return r
}

// HasScamType reports whether the result is attributed to the scam type.
func (r *AnalysisResult) HasScamType(t ScamType) bool {
	for _, st := range r.ScamTypes {
		if st == t {
			return true
		}
	}
	return false
}

// ProbabilityOf returns the probability assigned to label, or zero if the
// label is absent from the classification.
func ProbabilityOf(cls []Classification, label Label) float64 {
	for _, c := range cls {
		if c.Label == label {
			return c.Probability
		}
	}
	return 0
}
