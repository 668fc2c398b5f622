package report

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/nao1215/scamscan/internal/model"
)

var testTime = time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

// createTestBatch creates a batch report with sample data for testing.
func createTestBatch() *model.BatchReport {
	job := &model.AnalysisResult{
		ID:              "r1",
		UnitID:          "job-1",
		Origin:          model.OriginJobPosting,
		Confidence:      0.82,
		IsFlagged:       true,
		IsScam:          true,
		FlaggedKeywords: []string{"fee", "work from home"},
		RedFlags:        []model.RedFlag{model.RedFlagWorkFromHomePayment},
		ScamTypes:       []model.ScamType{model.ScamTypeWorkFromHome},
		Recommendations: []string{"Do not pay to get hired."},
		ClassifierUsed:  true,
		ScamProbability: 0.9,
		ModelVersion:    "v1-abc",
	}
	post := &model.AnalysisResult{
		ID:              "r2",
		UnitID:          "post-1",
		Origin:          model.OriginSocialPost,
		Confidence:      0.85,
		IsFlagged:       true,
		RiskLevel:       model.RiskLevelCritical,
		FlaggedKeywords: []string{"crypto"},
		FlaggedPatterns: []string{"link in bio"},
	}
	clean := &model.AnalysisResult{ID: "r3", UnitID: "post-2", Origin: model.OriginSocialPost, RiskLevel: model.RiskLevelLow}
	failed := &model.AnalysisResult{ID: "r4", UnitID: "job-2", Origin: model.OriginJobPosting, Degraded: true, Error: "invalid input: text is absent"}

	items := []model.BatchItem{
		{Index: 0, Result: job},
		{Index: 1, Result: post},
		{Index: 2, Result: clean},
		{Index: 3, Result: failed, Err: model.ErrInvalidInput},
	}
	return model.NewBatchReport(items, "v1-abc", "2024.1", testTime)
}

func createTestTrends() *model.TrendReport {
	batch := createTestBatch()
	return &model.TrendReport{
		GeneratedAt: testTime,
		Since:       testTime.Add(-24 * time.Hour),
		Trends: model.Trends{
			TopKeywords:  []model.TermCount{{Term: "crypto", Count: 4}, {Term: "fee", Count: 2}},
			TopScamTypes: []model.TermCount{{Term: "investment_fraud", Count: 3}},
			Analyzed:     10,
			Flagged:      4,
		},
		Filter: model.AlertFilter{MinConfidence: 0.6},
		Alerts: batch.Flagged(),
		Levels: batch.Levels,
	}
}

func TestSimpleWriter(t *testing.T) {
	t.Parallel()

	t.Run("writes batch report", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		if _, err := NewSimpleWriter(&buf).WriteBatch(createTestBatch()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		output := buf.String()
		for _, want := range []string{
			"SCAMSCAN REPORT",
			"FLAGGED:    2",
			"FAILED:     1",
			"CRITICAL: 1",
			"[SCAM] job-1",
			"[FLAGGED (critical)] post-1",
			"[OK (low)] post-2",
			"[FAILED] job-2",
			"Error: invalid input: text is absent",
			"Red flags: work_from_home_payment",
		} {
			if !strings.Contains(output, want) {
				t.Errorf("expected output to contain %q", want)
			}
		}
		if strings.Contains(output, "Do not pay to get hired.") {
			t.Error("recommendations should only be shown in verbose mode")
		}
	})

	t.Run("verbose adds details", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		if _, err := NewSimpleWriter(&buf, WithVerbose(true)).WriteBatch(createTestBatch()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		output := buf.String()
		for _, want := range []string{"Do not pay to get hired.", "Patterns: link in bio", "p(scam)=0.900"} {
			if !strings.Contains(output, want) {
				t.Errorf("expected verbose output to contain %q", want)
			}
		}
	})

	t.Run("empty sections", func(t *testing.T) {
		t.Parallel()

		empty := model.NewBatchReport(nil, "v1", "2024.1", testTime)

		var hidden bytes.Buffer
		if _, err := NewSimpleWriter(&hidden).WriteBatch(empty); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if strings.Contains(hidden.String(), "RESULTS") {
			t.Error("empty results section should be hidden by default")
		}

		var shown bytes.Buffer
		if _, err := NewSimpleWriter(&shown, WithShowEmpty(true)).WriteBatch(empty); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !strings.Contains(shown.String(), "No results") {
			t.Error("expected empty results section with WithShowEmpty")
		}
	})

	t.Run("writes trends", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		if _, err := NewSimpleWriter(&buf).WriteTrends(createTestTrends()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		output := buf.String()
		for _, want := range []string{"SCAMSCAN TRENDS", "TOP KEYWORDS", "crypto", "ALERTS (confidence >= 0.60)", "post-1"} {
			if !strings.Contains(output, want) {
				t.Errorf("expected output to contain %q", want)
			}
		}
	})
}

func TestJSONWriter(t *testing.T) {
	t.Parallel()

	t.Run("compact batch", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		n, err := NewJSONWriter(&buf).WriteBatch(createTestBatch())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if n != buf.Len() {
			t.Errorf("reported %d bytes, wrote %d", n, buf.Len())
		}

		var decoded model.BatchReport
		if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
			t.Fatalf("output is not valid JSON: %v", err)
		}
		if decoded.Summary.Scam != 2 || len(decoded.Results) != 4 {
			t.Errorf("decoded = %+v", decoded.Summary)
		}
		if decoded.Results[1].RiskLevel != model.RiskLevelCritical {
			t.Errorf("risk level lost: %v", decoded.Results[1].RiskLevel)
		}
		if strings.Contains(buf.String(), "\n  ") {
			t.Error("compact output should not be indented")
		}
	})

	t.Run("pretty trends", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		if _, err := NewJSONWriter(&buf, WithPrettyPrint()).WriteTrends(createTestTrends()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !strings.Contains(buf.String(), "\n  \"trends\"") {
			t.Errorf("expected indented output:\n%s", buf.String())
		}
		if !strings.Contains(buf.String(), `"level": "critical"`) && !strings.Contains(buf.String(), `"risk_level": "critical"`) {
			t.Error("risk level should be rendered by name")
		}
	})

	t.Run("envelope", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		if _, err := NewFullJSONWriter(&buf, "1.2.3").WriteBatch(createTestBatch()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		var env struct {
			Version string            `json:"version"`
			Kind    string            `json:"kind"`
			Report  model.BatchReport `json:"report"`
		}
		if err := json.Unmarshal(buf.Bytes(), &env); err != nil {
			t.Fatalf("invalid JSON: %v", err)
		}
		if env.Version != "1.2.3" || env.Kind != "batch" || env.Report.ModelVersion != "v1-abc" {
			t.Errorf("envelope = %+v", env)
		}
	})
}

func TestMarkdownWriter(t *testing.T) {
	t.Parallel()

	t.Run("batch", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		if _, err := NewMarkdownWriter(&buf).WriteBatch(createTestBatch()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		output := buf.String()
		for _, want := range []string{
			"# scamscan Report",
			"## Risk Levels",
			"```mermaid",
			"pie",
			"[!CAUTION]",
			"## Flagged Content",
			"job-1",
			"## Failed Items",
			"text is absent",
		} {
			if !strings.Contains(output, want) {
				t.Errorf("expected markdown to contain %q", want)
			}
		}
	})

	t.Run("clean batch", func(t *testing.T) {
		t.Parallel()

		items := []model.BatchItem{{Result: &model.AnalysisResult{ID: "x", Origin: model.OriginJobPosting}}}
		var buf bytes.Buffer
		if _, err := NewMarkdownWriter(&buf).WriteBatch(model.NewBatchReport(items, "v1", "2024.1", testTime)); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		output := buf.String()
		if !strings.Contains(output, "[!TIP]") || strings.Contains(output, "```mermaid") {
			t.Errorf("unexpected markdown for clean batch:\n%s", output)
		}
	})

	t.Run("trends", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		if _, err := NewMarkdownWriter(&buf).WriteTrends(createTestTrends()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		output := buf.String()
		for _, want := range []string{"# scamscan Trends", "## Top Keywords", "crypto", "## Alerts", "[!WARNING]"} {
			if !strings.Contains(output, want) {
				t.Errorf("expected markdown to contain %q", want)
			}
		}
	})
}

// failingWriter fails every write.
type failingWriter struct{}

func (failingWriter) WriteBatch(*model.BatchReport) (int, error) { return 0, errors.New("disk full") }
func (failingWriter) WriteTrends(*model.TrendReport) (int, error) { return 0, errors.New("disk full") }

func TestMultiWriter(t *testing.T) {
	t.Parallel()

	var a, b bytes.Buffer
	mw := NewMultiWriter(NewSimpleWriter(&a), NewJSONWriter(&b))
	n, err := mw.WriteBatch(createTestBatch())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if n != a.Len()+b.Len() || a.Len() == 0 || b.Len() == 0 {
		t.Errorf("wrote %d bytes, buffers have %d and %d", n, a.Len(), b.Len())
	}

	var c bytes.Buffer
	mw = NewMultiWriter(failingWriter{}, NewSimpleWriter(&c))
	if _, err := mw.WriteTrends(createTestTrends()); err == nil {
		t.Error("expected error from failing writer")
	}
	if c.Len() != 0 {
		t.Error("writers after a failure should not run")
	}
}

func TestTruncateString(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		max  int
		want string
	}{
		{"short", 10, "short"},
		{"exactly10!", 10, "exactly10!"},
		{"this is too long", 10, "this is..."},
		{"abcdef", 3, "abc"},
	}
	for _, tt := range tests {
		if got := truncateString(tt.in, tt.max); got != tt.want {
			t.Errorf("truncateString(%q, %d) = %q, want %q", tt.in, tt.max, got, tt.want)
		}
	}
}
