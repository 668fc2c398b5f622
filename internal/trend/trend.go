package trend

import (
	"slices"
	"strings"

	"github.com/nao1215/scamscan/internal/model"
)

// DefaultTopN is the number of entries kept per ranking.
const DefaultTopN = 10

// Trends counts flagged keywords and scam types across results. Each term
// is counted once per result. Degraded and nil results contribute nothing.
// A non-positive topN selects DefaultTopN.
func Trends(results []*model.AnalysisResult, topN int) model.Trends {
	if topN <= 0 {
		topN = DefaultTopN
	}

	keywords := make(map[string]int)
	scamTypes := make(map[string]int)
	t := model.Trends{}

	for _, r := range results {
		if r == nil || r.Degraded {
			continue
		}
		t.Analyzed++
		if r.IsFlagged {
			t.Flagged++
		}
		countOnce(keywords, r.FlaggedKeywords)
		for _, st := range uniqueScamTypes(r.ScamTypes) {
			scamTypes[string(st)]++
		}
	}

	t.TopKeywords = rank(keywords, topN)
	t.TopScamTypes = rank(scamTypes, topN)
	return t
}

func countOnce(counts map[string]int, terms []string) {
	seen := make(map[string]bool, len(terms))
	for _, term := range terms {
		if seen[term] {
			continue
		}
		seen[term] = true
		counts[term]++
	}
}

func uniqueScamTypes(types []model.ScamType) []model.ScamType {
	out := make([]model.ScamType, 0, len(types))
	for _, st := range types {
		if !slices.Contains(out, st) {
			out = append(out, st)
		}
	}
	return out
}

// rank orders counts by count descending, then term ascending.
func rank(counts map[string]int, topN int) []model.TermCount {
	ranked := make([]model.TermCount, 0, len(counts))
	for term, n := range counts {
		ranked = append(ranked, model.TermCount{Term: term, Count: n})
	}
	slices.SortFunc(ranked, func(a, b model.TermCount) int {
		if a.Count != b.Count {
			return b.Count - a.Count
		}
		return strings.Compare(a.Term, b.Term)
	})
	if len(ranked) > topN {
		ranked = ranked[:topN]
	}
	return ranked
}
