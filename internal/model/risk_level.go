package model

import (
	"fmt"
	"strings"
)

// RiskLevel is the discrete band a social post's confidence falls into.
// Job postings are not banded and carry RiskLevelNone.
type RiskLevel int

const (
	// RiskLevelNone means the result is not banded (job postings and
	// degraded results).
	RiskLevelNone RiskLevel = iota

	// RiskLevelLow covers confidence below 0.3.
	RiskLevelLow

	// RiskLevelMedium covers confidence in [0.3, 0.6).
	RiskLevelMedium

	// RiskLevelHigh covers confidence in [0.6, 0.8).
	RiskLevelHigh

	// RiskLevelCritical covers confidence of 0.8 and above.
	RiskLevelCritical
)

// String returns the lowercase name used in reports and storage.
func (l RiskLevel) String() string {
	switch l {
	case RiskLevelLow:
		return "low"
	case RiskLevelMedium:
		return "medium"
	case RiskLevelHigh:
		return "high"
	case RiskLevelCritical:
		return "critical"
	default:
		return ""
	}
}

// MarshalText implements encoding.TextMarshaler.
func (l RiskLevel) MarshalText() ([]byte, error) {
	return []byte(l.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (l *RiskLevel) UnmarshalText(text []byte) error {
	parsed, err := ParseRiskLevel(string(text))
	if err != nil {
		return err
	}
	*l = parsed
	return nil
}

// ParseRiskLevel converts a level name to a RiskLevel. The empty string
// maps to RiskLevelNone.
func ParseRiskLevel(s string) (RiskLevel, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "":
		return RiskLevelNone, nil
	case "low":
		return RiskLevelLow, nil
	case "medium":
		return RiskLevelMedium, nil
	case "high":
		return RiskLevelHigh, nil
	case "critical":
		return RiskLevelCritical, nil
	default:
		return RiskLevelNone, fmt.Errorf("unknown risk level %q", s)
	}
}

// ScamType names a category of fraud a result is attributed to.
type ScamType string

// Scam type constants.
const (
	ScamTypeAdvanceFeeFraud  ScamType = "advance_fee_fraud"
	ScamTypeWorkFromHome     ScamType = "work_from_home_scam"
	ScamTypeRecruitmentFraud ScamType = "recruitment_fraud"
	ScamTypeInvestmentFraud  ScamType = "investment_fraud"
	ScamTypePyramidScheme    ScamType = "pyramid_scheme"
)

// RedFlag names a structural rule that fired during job scoring, or an
// engagement anomaly during social scoring.
type RedFlag string

// Red flag constants.
const (
	RedFlagPaymentRequired     RedFlag = "payment_required"
	RedFlagWorkFromHomePayment RedFlag = "work_from_home_payment"
	RedFlagInternationalFee    RedFlag = "international_fee"
	RedFlagHighPressure        RedFlag = "high_pressure"
	RedFlagVagueDescription    RedFlag = "vague_description"
	RedFlagEngagementAnomaly   RedFlag = "engagement_anomaly"
)

// RedFlagInfo describes what a red flag means for the reader of a report.
type RedFlagInfo struct {
	Impact         string
	Recommendation string
}

// redFlagInfoMapping is the single catalogue of red flag explanations.
var redFlagInfoMapping = map[RedFlag]RedFlagInfo{
	RedFlagPaymentRequired: {
		Impact:         "The posting asks the applicant for money.",
		Recommendation: "Never pay upfront fees to obtain a job.",
	},
	RedFlagWorkFromHomePayment: {
		Impact:         "A remote position is combined with a payment request.",
		Recommendation: "Legitimate remote employers do not charge for starter kits or training.",
	},
	RedFlagInternationalFee: {
		Impact:         "Overseas placement is combined with visa or travel charges.",
		Recommendation: "Verify overseas recruiters with the embassy and never pay visa or travel fees upfront.",
	},
	RedFlagHighPressure: {
		Impact:         "The posting pushes for an immediate decision.",
		Recommendation: "Take time to research the employer; genuine offers do not expire in hours.",
	},
	RedFlagVagueDescription: {
		Impact:         "The role is described only in generic terms.",
		Recommendation: "Ask for a written job description and the name of your manager before proceeding.",
	},
	RedFlagEngagementAnomaly: {
		Impact:         "Likes are unusually high relative to the author's followers.",
		Recommendation: "Treat the popularity of this post with suspicion; engagement may be purchased.",
	},
}

// GetRedFlagInfo returns the explanation for a red flag. Unknown flags get
// a generic entry.
func GetRedFlagInfo(flag RedFlag) RedFlagInfo {
	if info, ok := redFlagInfoMapping[flag]; ok {
		return info
	}
	return RedFlagInfo{
		Impact:         "Unclassified warning sign.",
		Recommendation: "Review the content manually.",
	}
}
