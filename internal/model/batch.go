package model

// BatchItem is the outcome of analyzing one unit of a batch. Index is the
// position of the unit in the input slice; Err is set when the unit could
// not be analyzed and Result is then a degraded result.
type BatchItem struct {
	Index  int             `json:"index"`
	Result *AnalysisResult `json:"result"`
	Err    error           `json:"-"`
}

// Failed reports whether the item could not be analyzed.
func (b BatchItem) Failed() bool {
	return b.Err != nil || b.Result == nil || b.Result.Degraded
}

// BatchSummary aggregates the outcome of a batch. Failed items are counted
// separately and never as scam or legitimate.
type BatchSummary struct {
	Total      int `json:"total"`
	Scam       int `json:"scam"`
	Legitimate int `json:"legitimate"`
	Failed     int `json:"failed"`
}

// Summarize counts flagged, clean and failed items.
func Summarize(items []BatchItem) BatchSummary {
	s := BatchSummary{Total: len(items)}
	for _, item := range items {
		switch {
		case item.Failed():
			s.Failed++
		case item.Result.IsFlagged:
			s.Scam++
		default:
			s.Legitimate++
		}
	}
	return s
}

// Results returns the non-nil results of a batch in input order,
// including degraded ones.
func Results(items []BatchItem) []*AnalysisResult {
	out := make([]*AnalysisResult, 0, len(items))
	for _, item := range items {
		if item.Result != nil {
			out = append(out, item.Result)
		}
	}
	return out
}
