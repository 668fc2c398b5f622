package config

import "errors"

// Configuration validation errors.
// These errors are returned by Config.Validate() and Lexicon.Validate() so
// callers can use errors.Is() while users still get a readable message.
var (
	// ErrInvalidBatchSize is returned when the batch size is not positive.
	ErrInvalidBatchSize = errors.New("invalid batch size: must be positive")

	// ErrInvalidMaxTextLength is returned when the maximum text length is not positive.
	ErrInvalidMaxTextLength = errors.New("invalid max text length: must be positive")

	// ErrInvalidConfidence is returned when a confidence threshold is outside [0, 1].
	ErrInvalidConfidence = errors.New("invalid confidence: must be between 0 and 1")

	// ErrInvalidWindow is returned when the trend window is negative.
	ErrInvalidWindow = errors.New("invalid window: must be non-negative")

	// ErrConflictingReportFormats is returned when both --json and --markdown
	// are specified. Only one output format can be used at a time.
	ErrConflictingReportFormats = errors.New("conflicting report formats: --json and --markdown cannot be used together")

	// ErrNoDatabaseDir is returned when persistence is enabled without a directory.
	ErrNoDatabaseDir = errors.New("no database directory: set --db-dir or disable saving")

	// ErrEmptyVocabulary is returned when a lexicon section has no keywords.
	ErrEmptyVocabulary = errors.New("lexicon vocabulary is empty")

	// ErrInvalidPattern is returned when a lexicon regex does not compile.
	ErrInvalidPattern = errors.New("lexicon pattern does not compile")

	// ErrInvalidSeed is returned when a lexicon seed example is malformed.
	ErrInvalidSeed = errors.New("lexicon seed example is invalid")
)
