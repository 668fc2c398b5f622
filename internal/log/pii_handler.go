package log

import (
	"context"
	"io"
	"log/slog"
	"regexp"
	"strings"
)

// MaskValue replaces attribute values that must never be logged.
const MaskValue = "***REDACTED***"

// piiKeys are attribute keys whose values are always masked.
var piiKeys = map[string]bool{
	// Content bodies
	"text":        true,
	"content":     true,
	"body":        true,
	"description": true,
	"title":       true,

	// Contact details
	"contact":      true,
	"contact_info": true,
	"email":        true,
	"phone":        true,
	"author":       true,
	"handle":       true,

	// Credentials
	"password": true,
	"token":    true,
	"secret":   true,
	"api_key":  true,
}

// piiKeywords mask any key containing them, e.g. "contact_email".
var piiKeywords = []string{"email", "phone", "password", "token", "secret", "contact"}

// piiPattern is a value pattern replaced in place within string values.
type piiPattern struct {
	re          *regexp.Regexp
	replacement string
}

var piiPatterns = []piiPattern{
	{
		re:          regexp.MustCompile(`[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}`),
		replacement: "[email]",
	},
	{
		re:          regexp.MustCompile(`(?:\+\d{1,3}[\s.-]?)?(?:\(\d{3}\)\s?|\b\d{3}[\s.-])\d{3}[\s.-]\d{4}\b`),
		replacement: "[phone]",
	},
}

// PIIHandler wraps an slog.Handler and redacts personal data from record
// attributes before passing them on.
type PIIHandler struct {
	handler slog.Handler
}

// NewPIIHandler wraps handler. A nil handler wraps slog.Default().Handler().
func NewPIIHandler(handler slog.Handler) *PIIHandler {
	if handler == nil {
		handler = slog.Default().Handler()
	}
	return &PIIHandler{handler: handler}
}

// Enabled delegates to the wrapped handler.
func (h *PIIHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.handler.Enabled(ctx, level)
}

// Handle redacts the record's attributes and passes it to the wrapped handler.
func (h *PIIHandler) Handle(ctx context.Context, r slog.Record) error {
	redacted := slog.NewRecord(r.Time, r.Level, r.Message, r.PC)
	r.Attrs(func(a slog.Attr) bool {
		redacted.AddAttrs(redactAttr(a))
		return true
	})
	return h.handler.Handle(ctx, redacted)
}

// WithAttrs returns a handler with the redacted attributes added.
func (h *PIIHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	redacted := make([]slog.Attr, len(attrs))
	for i, a := range attrs {
		redacted[i] = redactAttr(a)
	}
	return &PIIHandler{handler: h.handler.WithAttrs(redacted)}
}

// WithGroup returns a handler with the given group name.
func (h *PIIHandler) WithGroup(name string) slog.Handler {
	return &PIIHandler{handler: h.handler.WithGroup(name)}
}

// redactAttr redacts a single attribute, recursing into groups.
func redactAttr(a slog.Attr) slog.Attr {
	a.Value = a.Value.Resolve()

	if a.Value.Kind() == slog.KindGroup {
		attrs := a.Value.Group()
		redacted := make([]slog.Attr, len(attrs))
		for i, ga := range attrs {
			redacted[i] = redactAttr(ga)
		}
		return slog.Attr{Key: a.Key, Value: slog.GroupValue(redacted...)}
	}

	if isPIIKey(a.Key) {
		return slog.String(a.Key, MaskValue)
	}

	if a.Value.Kind() == slog.KindString {
		s := a.Value.String()
		if r := RedactString(s); r != s {
			return slog.String(a.Key, r)
		}
	}
	return a
}

func isPIIKey(key string) bool {
	key = strings.ToLower(key)
	if piiKeys[key] {
		return true
	}
	for _, kw := range piiKeywords {
		if strings.Contains(key, kw) {
			return true
		}
	}
	return false
}

// RedactString replaces e-mail addresses and phone numbers in s.
func RedactString(s string) string {
	for _, p := range piiPatterns {
		s = p.re.ReplaceAllString(s, p.replacement)
	}
	return s
}

func level(verbose bool) slog.Level {
	if verbose {
		return slog.LevelDebug
	}
	return slog.LevelWarn
}

// NewLogger returns a text logger that redacts personal data. verbose
// selects Debug level; otherwise only warnings and errors are written.
func NewLogger(w io.Writer, verbose bool) *slog.Logger {
	h := slog.NewTextHandler(w, &slog.HandlerOptions{Level: level(verbose)})
	return slog.New(NewPIIHandler(h))
}

// NewJSONLogger is NewLogger with JSON output, for log aggregation.
func NewJSONLogger(w io.Writer, verbose bool) *slog.Logger {
	h := slog.NewJSONHandler(w, &slog.HandlerOptions{Level: level(verbose)})
	return slog.New(NewPIIHandler(h))
}
