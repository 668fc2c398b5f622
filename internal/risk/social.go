package risk

import (
	"math"

	"github.com/nao1215/scamscan/internal/model"
)

// Social policy weights.
const (
	// SocialKeywordWeight is added per keyword, capped at SocialKeywordCap.
	SocialKeywordWeight = 0.1
	SocialKeywordCap    = 0.5

	// SocialPatternWeight is added per pattern match, capped at SocialPatternCap.
	SocialPatternWeight = 0.15
	SocialPatternCap    = 0.5

	// SocialEngagementRatio is the likes/followers ratio above which
	// SocialEngagementWeight is added.
	SocialEngagementRatio  = 0.5
	SocialEngagementWeight = 0.2

	// SocialPositiveToneThreshold is the comparative sentiment above which
	// SocialPositiveToneWeight is added.
	SocialPositiveToneThreshold = 0.8
	SocialPositiveToneWeight    = 0.15

	// SocialFlagThreshold is the exclusive confidence above which a post
	// is flagged.
	SocialFlagThreshold = 0.4
)

var (
	workFromHomeTerms = newTermSet("work from home", "earn money online", "make money from home")
	investmentTerms   = newTermSet("investment", "guaranteed returns", "high profit", "no risk")
	pyramidTerms      = newTermSet("pyramid scheme", "multi-level marketing", "referral program")
)

// SocialPolicy scores social posts.
type SocialPolicy struct{}

// Name returns the policy name.
func (SocialPolicy) Name() string {
	return "social"
}

// Assess applies the social fusion rules:
//
//	risk = min(0.1*keywords, 0.5) + min(0.15*patterns, 0.5)
//	     + 0.2 if likes/followers > 0.5 + 0.15 if comparative > 0.8
//	confidence = clamp(risk, 0, 1); flagged when confidence > 0.4
//
// The classifier is not consulted for social posts.
func (SocialPolicy) Assess(s Signals) Assessment {
	risk := math.Min(float64(len(s.Keywords))*SocialKeywordWeight, SocialKeywordCap)
	risk += math.Min(float64(len(s.Patterns))*SocialPatternWeight, SocialPatternCap)

	flags := make([]model.RedFlag, 0)
	if ratio, ok := s.Engagement.LikesPerFollower(); ok && ratio > SocialEngagementRatio {
		risk += SocialEngagementWeight
		flags = append(flags, model.RedFlagEngagementAnomaly)
	}
	if s.Sentiment.Comparative > SocialPositiveToneThreshold {
		risk += SocialPositiveToneWeight
	}

	a := Assessment{RedFlags: flags}
	a.Confidence = clamp01(risk)
	a.Flagged = a.Confidence > SocialFlagThreshold
	a.Level = LevelFor(a.Confidence)
	a.ScamTypes = socialScamTypes(s.Keywords)
	a.Recommendations = socialRecommendations(a)
	return a
}

func socialScamTypes(keywords []string) []model.ScamType {
	types := make([]model.ScamType, 0)
	if workFromHomeTerms.anyIn(keywords) {
		types = append(types, model.ScamTypeWorkFromHome)
	}
	if investmentTerms.anyIn(keywords) {
		types = append(types, model.ScamTypeInvestmentFraud)
	}
	if pyramidTerms.anyIn(keywords) {
		types = append(types, model.ScamTypePyramidScheme)
	}
	return types
}

var scamTypeAdvice = map[model.ScamType]string{
	model.ScamTypeWorkFromHome:    "Be cautious of work-from-home offers that promise easy income.",
	model.ScamTypeInvestmentFraud: "Promises of guaranteed or unusually high returns are a hallmark of investment fraud.",
	model.ScamTypePyramidScheme:   "Income that depends on recruiting others indicates a pyramid scheme.",
}

func socialRecommendations(a Assessment) []string {
	recs := make([]string, 0, len(a.ScamTypes)+3)
	if a.Flagged {
		recs = append(recs, "This post shows signs of a possible scam. Do not send money or personal details.")
	} else {
		recs = append(recs, "No significant scam indicators detected.")
	}
	if a.Level == model.RiskLevelHigh || a.Level == model.RiskLevelCritical {
		recs = append(recs, "Consider reporting this post to the platform.")
	}
	for _, t := range a.ScamTypes {
		recs = append(recs, scamTypeAdvice[t])
	}
	for _, f := range a.RedFlags {
		recs = append(recs, model.GetRedFlagInfo(f).Recommendation)
	}
	return recs
}
