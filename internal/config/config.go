package config

import (
	"path/filepath"
	"time"

	"github.com/adrg/xdg"
)

// Default configuration values.
const (
	// DefaultBatchSize is the number of content units analyzed concurrently
	// in a batch. Analysis is CPU bound, so modest values saturate a machine.
	DefaultBatchSize = 10

	// DefaultMaxTextLength bounds the analyzable body length in characters.
	// Longer input is rejected as invalid, which keeps per-item latency bounded.
	DefaultMaxTextLength = 10000

	// DefaultAlertMinConfidence is the inclusive confidence floor for alerts.
	DefaultAlertMinConfidence = 0.6

	// DefaultTrendWindow is how far back trends and alerts look by default.
	DefaultTrendWindow = 24 * time.Hour

	// DefaultTopN is how many entries trend reports list per category.
	DefaultTopN = 10

	// AppName is the application name used for XDG directory paths.
	AppName = "scamscan"
)

// Config holds all configuration options for scamscan.
// It is populated from defaults, the configuration file and CLI flags, in
// that order, and passed through the application explicitly.
type Config struct {
	// Verbose enables detailed log output using slog.LevelDebug.
	// When false, only warnings and errors are logged.
	Verbose bool

	// BatchSize is the number of concurrent analyses in a batch.
	BatchSize int

	// MaxTextLength is the maximum accepted normalized text length in bytes.
	MaxTextLength int

	// StripHTML removes markup from job descriptions before matching.
	StripHTML bool

	// ConfigFilePath is the path to the configuration file.
	// If empty, the tool searches for .scamscan in the current directory
	// and then in the user's home directory.
	ConfigFilePath string

	// LexiconPath points to a YAML lexicon overriding the embedded one.
	LexiconPath string

	// AlertMinConfidence is the default confidence floor for alerts.
	AlertMinConfidence float64

	// AlertLevels are the default risk levels alerts are restricted to.
	// Empty means any level.
	AlertLevels []string

	// TrendWindow is the default look-back window for trends and alerts.
	TrendWindow time.Duration

	// JSONReport enables JSON report output instead of human-readable format.
	// Mutually exclusive with MarkdownReport.
	JSONReport bool

	// MarkdownReport enables Markdown report output with tables, alerts and
	// a risk level pie chart. Mutually exclusive with JSONReport.
	MarkdownReport bool

	// ReportFile is the output file path for the report.
	// When set, the report is written to this file instead of stdout.
	ReportFile string

	// DBDir is the directory holding the SQLite database of results and
	// training examples. Defaults to the XDG data directory.
	DBDir string

	// SaveToDB indicates whether analysis results are persisted.
	SaveToDB bool

	// MetricsFile, when set, receives the Prometheus metrics in text
	// exposition format after the command completes.
	MetricsFile string
}

// NewConfig creates a new Config with default values.
func NewConfig() *Config {
	return &Config{
		BatchSize:          DefaultBatchSize,
		MaxTextLength:      DefaultMaxTextLength,
		AlertMinConfidence: DefaultAlertMinConfidence,
		TrendWindow:        DefaultTrendWindow,
		DBDir:              XDGDataDir(),
		SaveToDB:           true,
	}
}

// XDGDataDir returns the XDG data directory for scamscan.
// On Linux: ~/.local/share/scamscan
// On macOS: ~/Library/Application Support/scamscan
// On Windows: %LOCALAPPDATA%\scamscan
func XDGDataDir() string {
	return filepath.Join(xdg.DataHome, AppName)
}

// XDGConfigDir returns the XDG config directory for scamscan.
func XDGConfigDir() string {
	return filepath.Join(xdg.ConfigHome, AppName)
}

// Validate checks if the configuration is valid.
// It returns the first problem found as a sentinel error.
func (c *Config) Validate() error {
	if c.BatchSize <= 0 {
		return ErrInvalidBatchSize
	}

	if c.MaxTextLength <= 0 {
		return ErrInvalidMaxTextLength
	}

	if c.AlertMinConfidence < 0 || c.AlertMinConfidence > 1 {
		return ErrInvalidConfidence
	}

	if c.TrendWindow < 0 {
		return ErrInvalidWindow
	}

	if c.JSONReport && c.MarkdownReport {
		return ErrConflictingReportFormats
	}

	if c.SaveToDB && c.DBDir == "" {
		return ErrNoDatabaseDir
	}

	return nil
}
