package report

import (
	"encoding/json"
	"io"

	"github.com/nao1215/scamscan/internal/model"
)

// JSONWriter outputs reports in JSON format.
// This format is designed for tool integration and programmatic processing.
type JSONWriter struct {
	baseWriter

	// indent enables pretty-printed JSON output.
	// When false, output is compact (no extra whitespace).
	indent bool

	// indentPrefix is the prefix for each line in indented output.
	indentPrefix string

	// indentString is the indentation string (typically "  " or "\t").
	indentString string
}

// JSONWriterOption configures a JSONWriter.
type JSONWriterOption func(*JSONWriter)

// WithIndent enables pretty-printed JSON output.
// The prefix is prepended to each line, and indent is used for each level.
func WithIndent(prefix, indent string) JSONWriterOption {
	return func(w *JSONWriter) {
		w.indent = true
		w.indentPrefix = prefix
		w.indentString = indent
	}
}

// WithPrettyPrint enables pretty-printed JSON with default indentation.
// This is a convenience wrapper for WithIndent("", "  ").
func WithPrettyPrint() JSONWriterOption {
	return WithIndent("", "  ")
}

// NewJSONWriter creates a JSONWriter that outputs to the given writer.
func NewJSONWriter(output io.Writer, opts ...JSONWriterOption) *JSONWriter {
	w := &JSONWriter{
		baseWriter: newBaseWriter(output),
	}

	for _, opt := range opts {
		opt(w)
	}

	return w
}

// WriteBatch outputs the batch report in JSON format.
func (w *JSONWriter) WriteBatch(report *model.BatchReport) (int, error) {
	return w.writeJSON(report)
}

// WriteTrends outputs the trend report in JSON format.
func (w *JSONWriter) WriteTrends(report *model.TrendReport) (int, error) {
	return w.writeJSON(report)
}

// writeJSON marshals the given value to JSON and writes it to the output.
func (w *JSONWriter) writeJSON(v any) (int, error) {
	var data []byte
	var err error

	if w.indent {
		data, err = json.MarshalIndent(v, w.indentPrefix, w.indentString)
	} else {
		data, err = json.Marshal(v)
	}

	if err != nil {
		return 0, err
	}

	// Add trailing newline for better terminal output
	data = append(data, '\n')

	return w.output.Write(data)
}

// Envelope wraps a report with the version of the tool that produced it.
type Envelope struct {
	// Version is the scamscan version that generated this report.
	Version string `json:"version"`

	// Kind is "batch" or "trends".
	Kind string `json:"kind"`

	// Report is the wrapped report.
	Report any `json:"report"`
}

// FullJSONWriter outputs reports inside a versioned Envelope.
type FullJSONWriter struct {
	*JSONWriter

	// version is the scamscan version string.
	version string
}

// NewFullJSONWriter creates a writer for reports with a metadata envelope.
func NewFullJSONWriter(output io.Writer, version string, opts ...JSONWriterOption) *FullJSONWriter {
	return &FullJSONWriter{
		JSONWriter: NewJSONWriter(output, opts...),
		version:    version,
	}
}

// WriteBatch outputs the batch report wrapped with metadata.
func (w *FullJSONWriter) WriteBatch(report *model.BatchReport) (int, error) {
	return w.writeJSON(Envelope{Version: w.version, Kind: "batch", Report: report})
}

// WriteTrends outputs the trend report wrapped with metadata.
func (w *FullJSONWriter) WriteTrends(report *model.TrendReport) (int, error) {
	return w.writeJSON(Envelope{Version: w.version, Kind: "trends", Report: report})
}
