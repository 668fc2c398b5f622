package report

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/nao1215/markdown"
	"github.com/nao1215/markdown/mermaid/piechart"
	"github.com/nao1215/scamscan/internal/model"
)

// MarkdownWriter outputs reports in Markdown format.
// This format is designed for documentation and sharing.
type MarkdownWriter struct {
	baseWriter
}

// NewMarkdownWriter creates a MarkdownWriter that outputs to the given writer.
func NewMarkdownWriter(output io.Writer) *MarkdownWriter {
	return &MarkdownWriter{
		baseWriter: newBaseWriter(output),
	}
}

// WriteBatch outputs the batch report in Markdown format.
func (w *MarkdownWriter) WriteBatch(report *model.BatchReport) (int, error) {
	md := markdown.NewMarkdown(w.output)

	md.H1("scamscan Report")
	md.PlainText("")
	md.Table(markdown.TableSet{
		Header: []string{"Property", "Value"},
		Rows: [][]string{
			{"Generated", report.GeneratedAt.Format("2006-01-02 15:04:05 MST")},
			{"Model", "`" + report.ModelVersion + "`"},
			{"Lexicon", report.LexiconVersion},
		},
	})
	md.PlainText("")

	md.H2("Summary")
	md.PlainText("")
	md.Table(markdown.TableSet{
		Header: []string{"Outcome", "Count"},
		Rows: [][]string{
			{"🚩 Flagged", strconv.Itoa(report.Summary.Scam)},
			{"✅ Clean", strconv.Itoa(report.Summary.Legitimate)},
			{"❌ Failed", strconv.Itoa(report.Summary.Failed)},
			{"**Total**", "**" + strconv.Itoa(report.Summary.Total) + "**"},
		},
	})
	md.PlainText("")
	w.writeBatchAlert(md, report)

	w.writeLevels(md, report.Levels)
	w.writeFlagged(md, report.Flagged())
	w.writeFailed(md, report.Failed())

	w.writeFooter(md)
	return len(md.String()), md.Build()
}

// WriteTrends outputs the trend report in Markdown format.
func (w *MarkdownWriter) WriteTrends(report *model.TrendReport) (int, error) {
	md := markdown.NewMarkdown(w.output)

	md.H1("scamscan Trends")
	md.PlainText("")
	md.Table(markdown.TableSet{
		Header: []string{"Property", "Value"},
		Rows: [][]string{
			{"Window start", report.Since.Format("2006-01-02 15:04:05 MST")},
			{"Window end", report.GeneratedAt.Format("2006-01-02 15:04:05 MST")},
			{"Analyzed", strconv.Itoa(report.Trends.Analyzed)},
			{"Flagged", strconv.Itoa(report.Trends.Flagged)},
		},
	})
	md.PlainText("")

	w.writeTermTable(md, "Top Keywords", "Keyword", report.Trends.TopKeywords)
	w.writeTermTable(md, "Top Scam Types", "Scam type", report.Trends.TopScamTypes)
	w.writeLevels(md, report.Levels)

	md.H2("Alerts")
	md.PlainText("")
	if len(report.Alerts) == 0 {
		md.Tip("No results reached the alert threshold.")
		md.PlainText("")
	} else {
		md.Warningf("%d result(s) reached confidence %.2f or more.", len(report.Alerts), report.Filter.MinConfidence)
		md.PlainText("")
		w.writeResultTable(md, report.Alerts)
	}

	w.writeFooter(md)
	return len(md.String()), md.Build()
}

// writeBatchAlert writes an alert reflecting the worst outcome of the run.
func (w *MarkdownWriter) writeBatchAlert(md *markdown.Markdown, report *model.BatchReport) {
	switch {
	case report.Levels.Critical > 0:
		md.Cautionf("%d post(s) carry critical scam risk and should be reported.", report.Levels.Critical)
	case report.Summary.Scam > 0:
		md.Warningf("%d of %d item(s) show strong signs of fraud.", report.Summary.Scam, report.Summary.Total)
	case report.Summary.Failed > 0:
		md.Importantf("%d item(s) could not be analyzed.", report.Summary.Failed)
	default:
		md.Tip("No scam indicators detected.")
	}
	md.PlainText("")
}

// writeLevels writes the risk level table and a mermaid pie chart.
func (w *MarkdownWriter) writeLevels(md *markdown.Markdown, levels model.RiskBreakdown) {
	if levels.Total() == 0 {
		return
	}

	md.H2("Risk Levels")
	md.PlainText("")
	md.Table(markdown.TableSet{
		Header: []string{"Level", "Posts"},
		Rows: [][]string{
			{"🔴 Critical", strconv.Itoa(levels.Critical)},
			{"🟠 High", strconv.Itoa(levels.High)},
			{"🟡 Medium", strconv.Itoa(levels.Medium)},
			{"🔵 Low", strconv.Itoa(levels.Low)},
		},
	})
	md.PlainText("")

	chart := piechart.NewPieChart(
		io.Discard,
		piechart.WithTitle("Social Post Risk Distribution"),
		piechart.WithShowData(true),
	)
	for _, l := range []model.RiskLevel{model.RiskLevelCritical, model.RiskLevelHigh, model.RiskLevelMedium, model.RiskLevelLow} {
		if n := levels.Count(l); n > 0 {
			chart.LabelAndIntValue(capitalize(l.String()), uint64(n)) //nolint:gosec // counts are non-negative
		}
	}

	md.CodeBlocks(markdown.SyntaxHighlightMermaid, chart.String())
	md.PlainText("")
}

func (w *MarkdownWriter) writeTermTable(md *markdown.Markdown, title, column string, counts []model.TermCount) {
	md.H2(title)
	md.PlainText("")
	if len(counts) == 0 {
		md.PlainText("None in this window.")
		md.PlainText("")
		return
	}
	rows := make([][]string, len(counts))
	for i, c := range counts {
		rows[i] = []string{strconv.Itoa(i + 1), c.Term, strconv.Itoa(c.Count)}
	}
	md.Table(markdown.TableSet{
		Header: []string{"#", column, "Results"},
		Rows:   rows,
	})
	md.PlainText("")
}

func (w *MarkdownWriter) writeFlagged(md *markdown.Markdown, results []*model.AnalysisResult) {
	md.H2("Flagged Content")
	md.PlainText("")
	if len(results) == 0 {
		md.PlainText("No content was flagged.")
		md.PlainText("")
		return
	}
	w.writeResultTable(md, results)

	for _, r := range results {
		if len(r.Recommendations) > 0 {
			md.Details(unitLabel(r), "- "+strings.Join(r.Recommendations, "\n- "))
		}
	}
	md.PlainText("")
}

func (w *MarkdownWriter) writeFailed(md *markdown.Markdown, results []*model.AnalysisResult) {
	if len(results) == 0 {
		return
	}
	md.H2("Failed Items")
	md.PlainText("")
	items := make([]string, len(results))
	for i, r := range results {
		items[i] = fmt.Sprintf("`%s`: %s", unitLabel(r), r.Error)
	}
	md.BulletList(items...)
	md.PlainText("")
}

// writeResultTable writes one row per result.
func (w *MarkdownWriter) writeResultTable(md *markdown.Markdown, results []*model.AnalysisResult) {
	rows := make([][]string, len(results))
	for i, r := range results {
		rows[i] = []string{
			unitLabel(r),
			string(r.Origin),
			fmt.Sprintf("%.2f", r.Confidence),
			verdict(r),
			dash(joinRedFlags(r.RedFlags)),
			dash(truncateString(strings.Join(r.FlaggedKeywords, ", "), 50)),
		}
	}
	md.Table(markdown.TableSet{
		Header: []string{"Unit", "Origin", "Confidence", "Verdict", "Red flags", "Keywords"},
		Rows:   rows,
	})
	md.PlainText("")
}

// writeFooter writes the report footer.
func (w *MarkdownWriter) writeFooter(md *markdown.Markdown) {
	md.HorizontalRule()
	md.PlainText("")
	md.PlainTextf("*Report generated by [scamscan](https://github.com/nao1215/scamscan)*")
}

func dash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

// truncateString truncates a string to maxLen characters with ellipsis.
func truncateString(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	if maxLen <= 3 {
		return s[:maxLen]
	}
	return s[:maxLen-3] + "..."
}
