package log

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"
)

func TestPIIHandler_RedactsKeys(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		key      string
		value    string
		wantMask bool
	}{
		{name: "text body", key: "text", value: "earn money online fast", wantMask: true},
		{name: "uppercase key", key: "Text", value: "earn money online fast", wantMask: true},
		{name: "contact email key", key: "contact_email", value: "hr at example", wantMask: true},
		{name: "author handle", key: "author", value: "@crypto_king", wantMask: true},
		{name: "phone key", key: "phone", value: "call me", wantMask: true},
		{name: "job description", key: "description", value: "data entry from home", wantMask: true},
		{name: "password", key: "password", value: "hunter2", wantMask: true},
		{name: "unit id kept", key: "unit", value: "job-17", wantMask: false},
		{name: "origin kept", key: "origin", value: "social_post", wantMask: false},
		{name: "model version kept", key: "model", value: "v3-5d41402abc4b2a76", wantMask: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var buf bytes.Buffer
			logger := NewLogger(&buf, true)
			logger.Info("analysis", tt.key, tt.value)

			output := buf.String()
			if tt.wantMask {
				if strings.Contains(output, tt.value) {
					t.Errorf("expected value to be masked: %s", output)
				}
				if !strings.Contains(output, MaskValue) {
					t.Errorf("expected %s in output: %s", MaskValue, output)
				}
				return
			}
			if !strings.Contains(output, tt.value) {
				t.Errorf("expected value to be kept: %s", output)
			}
		})
	}
}

func TestRedactString(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "email", in: "write to jobs@quick-hire.example.com today", want: "write to [email] today"},
		{name: "dashed phone", in: "call 555-123-4567 now", want: "call [phone] now"},
		{name: "international phone", in: "whatsapp +1 555 123 4567", want: "whatsapp [phone]"},
		{name: "parenthesized area code", in: "(555) 123-4567", want: "[phone]"},
		{name: "both", in: "a@b.io or 555.123.4567", want: "[email] or [phone]"},
		{name: "uuid untouched", in: "550e8400-e29b-41d4-a716-446655440000", want: "550e8400-e29b-41d4-a716-446655440000"},
		{name: "date untouched", in: "2024-05-01", want: "2024-05-01"},
		{name: "plain", in: "nothing here", want: "nothing here"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := RedactString(tt.in); got != tt.want {
				t.Errorf("RedactString(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestPIIHandler_RedactsValuesInPlace(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := NewLogger(&buf, true)
	logger.Warn("unit rejected", "reason", "mentions hr@example.com")

	output := buf.String()
	if strings.Contains(output, "hr@example.com") {
		t.Errorf("email leaked: %s", output)
	}
	if !strings.Contains(output, "[email]") {
		t.Errorf("expected in-place redaction: %s", output)
	}
}

func TestPIIHandler_LogLevels(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		verbose bool
		log     func(*slog.Logger)
		want    bool
	}{
		{name: "debug in verbose", verbose: true, log: func(l *slog.Logger) { l.Debug("msg") }, want: true},
		{name: "debug hidden", verbose: false, log: func(l *slog.Logger) { l.Debug("msg") }, want: false},
		{name: "info hidden", verbose: false, log: func(l *slog.Logger) { l.Info("msg") }, want: false},
		{name: "warn shown", verbose: false, log: func(l *slog.Logger) { l.Warn("msg") }, want: true},
		{name: "error shown", verbose: false, log: func(l *slog.Logger) { l.Error("msg") }, want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var buf bytes.Buffer
			tt.log(NewLogger(&buf, tt.verbose))
			if got := buf.Len() > 0; got != tt.want {
				t.Errorf("output written = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestPIIHandler_WithAttrsAndGroup(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := NewLogger(&buf, true).
		With("email", "boss@example.com").
		WithGroup("unit").
		With("id", "post-1")
	logger.Info("scored", slog.Group("post", slog.String("text", "dm me"), slog.String("platform", "instagram")))

	output := buf.String()
	for _, leaked := range []string{"boss@example.com", "dm me"} {
		if strings.Contains(output, leaked) {
			t.Errorf("%q leaked: %s", leaked, output)
		}
	}
	for _, kept := range []string{"unit.id=post-1", "unit.post.platform=instagram"} {
		if !strings.Contains(output, kept) {
			t.Errorf("expected %q in output: %s", kept, output)
		}
	}
}

func TestNewJSONLogger(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	NewJSONLogger(&buf, false).Warn("unit rejected", "unit", "job-2", "text", "pay the fee")

	var entry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("output is not JSON: %v", err)
	}
	if entry["text"] != MaskValue {
		t.Errorf("text = %v, want %s", entry["text"], MaskValue)
	}
	if entry["unit"] != "job-2" {
		t.Errorf("unit = %v", entry["unit"])
	}
}

func TestNewPIIHandler_NilHandler(t *testing.T) {
	t.Parallel()

	h := NewPIIHandler(nil)
	if h.handler == nil {
		t.Fatal("expected default handler")
	}
	slog.New(h).Debug("does not panic")
}
