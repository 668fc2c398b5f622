package model

import "errors"

var (
	// ErrInvalidInput is returned when a content unit cannot be analyzed:
	// the text is absent, exceeds the configured maximum length, or the
	// origin is unknown. Callers receive a degraded result rather than
	// a panic.
	ErrInvalidInput = errors.New("invalid input")

	// ErrClassifierUnavailable indicates that the statistical classifier
	// failed or returned malformed output. Analysis continues without the
	// classifier signal.
	ErrClassifierUnavailable = errors.New("classifier unavailable")

	// ErrRetrainFailure is returned when a retrain request contains an
	// invalid example. The previously active model stays in place.
	ErrRetrainFailure = errors.New("retrain failure")

	// ErrUnknownOrigin is returned when a content origin is neither a job
	// posting nor a social post.
	ErrUnknownOrigin = errors.New("unknown content origin")

	// ErrUnknownLabel is returned when a training label is neither scam
	// nor legitimate.
	ErrUnknownLabel = errors.New("unknown training label")

	// ErrEmptyText is returned when a training example has no text.
	ErrEmptyText = errors.New("empty text")
)
