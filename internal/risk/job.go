package risk

import (
	"math"
	"strings"

	"github.com/nao1215/scamscan/internal/model"
)

// Job policy weights.
const (
	// JobKeywordDivisor turns a keyword count into keyword risk; ten or
	// more keywords saturate at 1.0.
	JobKeywordDivisor = 10.0

	// JobRedFlagWeight is added per red flag.
	JobRedFlagWeight = 0.15

	// JobPositiveToneThreshold is the comparative sentiment above which
	// JobPositiveToneWeight is added.
	JobPositiveToneThreshold = 0.5

	// JobPositiveToneWeight is added for overly positive language.
	JobPositiveToneWeight = 0.1

	// JobScamThreshold is the exclusive confidence above which a job
	// posting is a scam.
	JobScamThreshold = 0.5

	// maxKeywordsInRecommendation bounds the keyword list quoted back.
	maxKeywordsInRecommendation = 5
)

var (
	paymentTerms       = newTermSet("fee", "payment", "deposit", "investment")
	chargeTerms        = newTermSet("fee", "payment", "deposit")
	remoteTerms        = newTermSet("work from home")
	internationalTerms = newTermSet("international", "abroad", "overseas", "visa", "flight")
	pressureTerms      = newTermSet("urgent", "immediate", "act now", "limited time", "hurry")
	vagueTerms         = newTermSet("various duties", "miscellaneous tasks", "data entry", "customer service")
	roleTerms          = []string{"engineer", "developer", "analyst", "manager", "specialist"}
)

// JobPolicy scores job postings.
type JobPolicy struct{}

// Name returns the policy name.
func (JobPolicy) Name() string {
	return "job"
}

// Assess applies the job fusion rules:
//
//	risk = min(keywords/10, 1) + 0.15 * redFlags (+0.1 if comparative > 0.5)
//	risk = (risk + p(scam)) / 2 when the classifier returned anything
//	confidence = clamp(risk, 0, 1); scam when confidence > 0.5
//
// Red flags come from the keywords, except for the role-word check
// described on JobRedFlags.
func (JobPolicy) Assess(s Signals) Assessment {
	flags := JobRedFlags(s.Keywords, s.Text)

	risk := math.Min(float64(len(s.Keywords))/JobKeywordDivisor, 1.0)
	risk += float64(len(flags)) * JobRedFlagWeight
	if s.Sentiment.Comparative > JobPositiveToneThreshold {
		risk += JobPositiveToneWeight
	}

	a := Assessment{RedFlags: flags}
	if len(s.Classification) > 0 {
		a.ClassifierUsed = true
		a.ScamProbability = model.ProbabilityOf(s.Classification, model.LabelScam)
		risk = (risk + a.ScamProbability) / 2
	}

	a.Confidence = clamp01(risk)
	a.Flagged = a.Confidence > JobScamThreshold
	a.ScamTypes = jobScamTypes(flags)
	a.Recommendations = jobRecommendations(a, s.Keywords)
	return a
}

// JobRedFlags evaluates the structural rules against the flagged keywords.
// vague_description is the one rule that also reads the text: the role
// words that excuse a vague description (engineer, developer, analyst,
// manager, specialist) are not vocabulary entries, so adding them would
// raise keyword risk on ordinary postings. They are looked up in the
// keywords first and then as substrings of the normalized text.
func JobRedFlags(keywords []string, text string) []model.RedFlag {
	flags := make([]model.RedFlag, 0)
	if paymentTerms.anyIn(keywords) {
		flags = append(flags, model.RedFlagPaymentRequired)
	}
	if remoteTerms.anyIn(keywords) && chargeTerms.anyIn(keywords) {
		flags = append(flags, model.RedFlagWorkFromHomePayment)
	}
	if internationalTerms.anyIn(keywords) && chargeTerms.anyIn(keywords) {
		flags = append(flags, model.RedFlagInternationalFee)
	}
	if pressureTerms.anyIn(keywords) {
		flags = append(flags, model.RedFlagHighPressure)
	}
	if vagueTerms.anyIn(keywords) && !mentionsRole(keywords, text) {
		flags = append(flags, model.RedFlagVagueDescription)
	}
	return flags
}

func mentionsRole(keywords []string, text string) bool {
	if newTermSet(roleTerms...).anyIn(keywords) {
		return true
	}
	for _, role := range roleTerms {
		if strings.Contains(text, role) {
			return true
		}
	}
	return false
}

func jobScamTypes(flags []model.RedFlag) []model.ScamType {
	types := make([]model.ScamType, 0)
	for _, f := range flags {
		switch f {
		case model.RedFlagPaymentRequired:
			types = appendScamType(types, model.ScamTypeAdvanceFeeFraud)
		case model.RedFlagWorkFromHomePayment:
			types = appendScamType(types, model.ScamTypeWorkFromHome)
		case model.RedFlagInternationalFee:
			types = appendScamType(types, model.ScamTypeRecruitmentFraud)
		}
	}
	return types
}

func jobRecommendations(a Assessment, keywords []string) []string {
	recs := make([]string, 0, len(a.RedFlags)+2)
	if a.Flagged {
		recs = append(recs, "This job posting shows strong signs of fraud. Do not share personal or financial information.")
	} else {
		recs = append(recs, "No strong fraud indicators found. Verify the employer through official channels before applying.")
	}
	if len(keywords) > 0 {
		quoted := keywords
		if len(quoted) > maxKeywordsInRecommendation {
			quoted = quoted[:maxKeywordsInRecommendation]
		}
		recs = append(recs, "Suspicious keywords detected: "+strings.Join(quoted, ", "))
	}
	for _, f := range a.RedFlags {
		recs = append(recs, model.GetRedFlagInfo(f).Recommendation)
	}
	return recs
}
