package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/nao1215/scamscan/internal/model"
)

const ruleWidth = 70

// SimpleWriter outputs human-readable text reports for terminal display.
type SimpleWriter struct {
	baseWriter

	// showEmpty controls whether sections with no entries are shown.
	showEmpty bool

	// verbose adds sentiment, patterns and recommendations per result.
	verbose bool
}

// SimpleWriterOption configures a SimpleWriter.
type SimpleWriterOption func(*SimpleWriter)

// WithShowEmpty configures the writer to show empty sections.
func WithShowEmpty(show bool) SimpleWriterOption {
	return func(w *SimpleWriter) {
		w.showEmpty = show
	}
}

// WithVerbose enables verbose output with additional details.
func WithVerbose(verbose bool) SimpleWriterOption {
	return func(w *SimpleWriter) {
		w.verbose = verbose
	}
}

// NewSimpleWriter creates a SimpleWriter that outputs to the given writer.
func NewSimpleWriter(output io.Writer, opts ...SimpleWriterOption) *SimpleWriter {
	w := &SimpleWriter{
		baseWriter: newBaseWriter(output),
	}

	for _, opt := range opts {
		opt(w)
	}

	return w
}

// WriteBatch outputs the batch report in human-readable format.
func (w *SimpleWriter) WriteBatch(report *model.BatchReport) (int, error) {
	var sb strings.Builder

	writeBanner(&sb, "SCAMSCAN REPORT")
	fmt.Fprintf(&sb, "Generated:      %s\n", report.GeneratedAt.Format("2006-01-02 15:04:05 MST"))
	fmt.Fprintf(&sb, "Model:          %s\n", report.ModelVersion)
	fmt.Fprintf(&sb, "Lexicon:        %s\n", report.LexiconVersion)
	sb.WriteString("\n")

	writeSection(&sb, "SUMMARY")
	fmt.Fprintf(&sb, "  ANALYZED:   %d\n", report.Summary.Total)
	fmt.Fprintf(&sb, "  FLAGGED:    %d\n", report.Summary.Scam)
	fmt.Fprintf(&sb, "  CLEAN:      %d\n", report.Summary.Legitimate)
	fmt.Fprintf(&sb, "  FAILED:     %d\n", report.Summary.Failed)
	sb.WriteString("\n")

	w.writeLevels(&sb, report.Levels)
	w.writeResults(&sb, report.Results)

	writeFooter(&sb)
	return w.output.Write([]byte(sb.String()))
}

// WriteTrends outputs the trend report in human-readable format.
func (w *SimpleWriter) WriteTrends(report *model.TrendReport) (int, error) {
	var sb strings.Builder

	writeBanner(&sb, "SCAMSCAN TRENDS")
	fmt.Fprintf(&sb, "Window:         %s - %s\n",
		report.Since.Format("2006-01-02 15:04"), report.GeneratedAt.Format("2006-01-02 15:04 MST"))
	fmt.Fprintf(&sb, "Analyzed:       %d\n", report.Trends.Analyzed)
	fmt.Fprintf(&sb, "Flagged:        %d\n", report.Trends.Flagged)
	sb.WriteString("\n")

	w.writeTermCounts(&sb, "TOP KEYWORDS", report.Trends.TopKeywords)
	w.writeTermCounts(&sb, "TOP SCAM TYPES", report.Trends.TopScamTypes)
	w.writeLevels(&sb, report.Levels)

	if len(report.Alerts) > 0 || w.showEmpty {
		writeSection(&sb, fmt.Sprintf("ALERTS (confidence >= %.2f)", report.Filter.MinConfidence))
		if len(report.Alerts) == 0 {
			sb.WriteString("  No alerts\n")
		}
		for _, r := range report.Alerts {
			fmt.Fprintf(&sb, "  [%s] %s  %.2f  %s\n",
				r.AnalyzedAt.Format("2006-01-02 15:04"), unitLabel(r), r.Confidence, verdict(r))
			if len(r.ScamTypes) > 0 {
				fmt.Fprintf(&sb, "    Scam types: %s\n", joinScamTypes(r.ScamTypes))
			}
		}
		sb.WriteString("\n")
	}

	writeFooter(&sb)
	return w.output.Write([]byte(sb.String()))
}

func (w *SimpleWriter) writeLevels(sb *strings.Builder, levels model.RiskBreakdown) {
	if levels.Total() == 0 && !w.showEmpty {
		return
	}
	writeSection(sb, "RISK LEVELS")
	fmt.Fprintf(sb, "  CRITICAL: %d\n", levels.Critical)
	fmt.Fprintf(sb, "  HIGH:     %d\n", levels.High)
	fmt.Fprintf(sb, "  MEDIUM:   %d\n", levels.Medium)
	fmt.Fprintf(sb, "  LOW:      %d\n", levels.Low)
	sb.WriteString("\n")
}

func (w *SimpleWriter) writeTermCounts(sb *strings.Builder, title string, counts []model.TermCount) {
	if len(counts) == 0 && !w.showEmpty {
		return
	}
	writeSection(sb, title)
	if len(counts) == 0 {
		sb.WriteString("  None\n")
	}
	for i, c := range counts {
		fmt.Fprintf(sb, "  %2d. %-32s %d\n", i+1, c.Term, c.Count)
	}
	sb.WriteString("\n")
}

func (w *SimpleWriter) writeResults(sb *strings.Builder, results []*model.AnalysisResult) {
	if len(results) == 0 && !w.showEmpty {
		return
	}
	writeSection(sb, "RESULTS")
	if len(results) == 0 {
		sb.WriteString("  No results\n\n")
		return
	}

	for _, r := range results {
		fmt.Fprintf(sb, "[%s] %s  confidence %.2f\n", verdict(r), unitLabel(r), r.Confidence)
		if r.Error != "" {
			fmt.Fprintf(sb, "    Error: %s\n", r.Error)
		}
		if len(r.FlaggedKeywords) > 0 {
			fmt.Fprintf(sb, "    Keywords: %s\n", strings.Join(r.FlaggedKeywords, ", "))
		}
		if len(r.RedFlags) > 0 {
			fmt.Fprintf(sb, "    Red flags: %s\n", joinRedFlags(r.RedFlags))
		}
		if len(r.ScamTypes) > 0 {
			fmt.Fprintf(sb, "    Scam types: %s\n", joinScamTypes(r.ScamTypes))
		}
		if w.verbose {
			if len(r.FlaggedPatterns) > 0 {
				fmt.Fprintf(sb, "    Patterns: %s\n", strings.Join(r.FlaggedPatterns, ", "))
			}
			fmt.Fprintf(sb, "    Sentiment: %d (comparative %.3f)\n", r.Sentiment.Score, r.Sentiment.Comparative)
			if r.ClassifierUsed {
				fmt.Fprintf(sb, "    Classifier: p(scam)=%.3f model %s\n", r.ScamProbability, r.ModelVersion)
			}
			for _, rec := range r.Recommendations {
				fmt.Fprintf(sb, "    - %s\n", rec)
			}
		}
	}
	sb.WriteString("\n")
}

func writeBanner(sb *strings.Builder, title string) {
	sb.WriteString("\n")
	sb.WriteString(strings.Repeat("=", ruleWidth))
	sb.WriteString("\n")
	pad := max((ruleWidth-len(title))/2, 0)
	sb.WriteString(strings.Repeat(" ", pad))
	sb.WriteString(title)
	sb.WriteString("\n")
	sb.WriteString(strings.Repeat("=", ruleWidth))
	sb.WriteString("\n\n")
}

func writeSection(sb *strings.Builder, title string) {
	sb.WriteString(strings.Repeat("-", ruleWidth))
	sb.WriteString("\n")
	sb.WriteString(title)
	sb.WriteString("\n")
	sb.WriteString(strings.Repeat("-", ruleWidth))
	sb.WriteString("\n\n")
}

func writeFooter(sb *strings.Builder) {
	sb.WriteString(strings.Repeat("=", ruleWidth))
	sb.WriteString("\n")
	sb.WriteString("Report generated by scamscan\n")
	sb.WriteString("https://github.com/nao1215/scamscan\n")
	sb.WriteString(strings.Repeat("=", ruleWidth))
	sb.WriteString("\n")
}

func joinRedFlags(flags []model.RedFlag) string {
	parts := make([]string, len(flags))
	for i, f := range flags {
		parts[i] = string(f)
	}
	return strings.Join(parts, ", ")
}

func joinScamTypes(types []model.ScamType) string {
	parts := make([]string, len(types))
	for i, t := range types {
		parts[i] = string(t)
	}
	return strings.Join(parts, ", ")
}
