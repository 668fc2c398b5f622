package risk

import (
	"fmt"
	"math"

	"github.com/nao1215/scamscan/internal/model"
)

// Signals are the per-unit inputs to a policy.
type Signals struct {
	// Text is the normalized text the signals were extracted from.
	Text string

	// Keywords are the flagged vocabulary entries in vocabulary order.
	Keywords []string

	// Patterns are the distinct regex matches.
	Patterns []string

	// Sentiment is the lexical polarity of Text.
	Sentiment model.Sentiment

	// Classification is the classifier output. Nil or empty means the
	// classifier had no model or was unavailable.
	Classification []model.Classification

	// Engagement is the social engagement, if any.
	Engagement *model.Engagement
}

// Assessment is the outcome of a policy.
type Assessment struct {
	Confidence      float64
	Flagged         bool
	Level           model.RiskLevel
	ScamTypes       []model.ScamType
	RedFlags        []model.RedFlag
	Recommendations []string
	ScamProbability float64
	ClassifierUsed  bool
}

// Policy scores signals for one content origin.
type Policy interface {
	// Name returns the policy name for logging.
	Name() string

	// Assess fuses the signals. It never fails.
	Assess(s Signals) Assessment
}

// ForOrigin returns the policy for origin.
func ForOrigin(origin model.Origin) (Policy, error) {
	switch origin {
	case model.OriginJobPosting:
		return JobPolicy{}, nil
	case model.OriginSocialPost:
		return SocialPolicy{}, nil
	default:
		return nil, fmt.Errorf("%w: %q", model.ErrUnknownOrigin, origin)
	}
}

// Apply copies an assessment and its signals onto a result.
func Apply(r *model.AnalysisResult, s Signals, a Assessment) {
	r.Confidence = a.Confidence
	r.IsFlagged = a.Flagged
	r.RiskLevel = a.Level
	r.ScamTypes = a.ScamTypes
	r.RedFlags = a.RedFlags
	r.Recommendations = a.Recommendations
	r.ScamProbability = a.ScamProbability
	r.ClassifierUsed = a.ClassifierUsed
	r.FlaggedKeywords = s.Keywords
	r.FlaggedPatterns = s.Patterns
	r.Sentiment = s.Sentiment
	if r.Origin == model.OriginJobPosting {
		r.IsScam = a.Flagged
	}
}

// LevelFor bands a confidence into a risk level.
func LevelFor(confidence float64) model.RiskLevel {
	switch {
	case confidence < 0.3:
		return model.RiskLevelLow
	case confidence < 0.6:
		return model.RiskLevelMedium
	case confidence < 0.8:
		return model.RiskLevelHigh
	default:
		return model.RiskLevelCritical
	}
}

func clamp01(v float64) float64 {
	return math.Max(0, math.Min(1, v))
}

// termSet is a small set of vocabulary terms.
type termSet map[string]bool

func newTermSet(terms ...string) termSet {
	s := make(termSet, len(terms))
	for _, t := range terms {
		s[t] = true
	}
	return s
}

// anyIn reports whether any of keywords is in the set.
func (s termSet) anyIn(keywords []string) bool {
	for _, k := range keywords {
		if s[k] {
			return true
		}
	}
	return false
}

// appendScamType appends t unless already present.
func appendScamType(types []model.ScamType, t model.ScamType) []model.ScamType {
	for _, existing := range types {
		if existing == t {
			return types
		}
	}
	return append(types, t)
}
