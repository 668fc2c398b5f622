package pipeline

import (
	"context"
	"fmt"
	"log/slog"
	"math"

	"github.com/nao1215/scamscan/internal/match"
	"github.com/nao1215/scamscan/internal/model"
	"github.com/nao1215/scamscan/internal/normalize"
	"github.com/nao1215/scamscan/internal/risk"
	"github.com/nao1215/scamscan/internal/sentiment"
)

// ValidateStep rejects units that cannot be analyzed.
type ValidateStep struct {
	maxTextLength int
}

// NewValidateStep creates a validation step. maxTextLength bounds the
// analyzable body in characters; fields joined around a job description do
// not count. A non-positive maxTextLength disables the check.
func NewValidateStep(maxTextLength int) *ValidateStep {
	return &ValidateStep{maxTextLength: maxTextLength}
}

// Name returns the step name.
func (s *ValidateStep) Name() string {
	return "validate"
}

// Do checks origin, text presence and text length.
func (s *ValidateStep) Do(_ context.Context, item *Item) error {
	if !item.Unit.Origin.IsValid() {
		return fmt.Errorf("%w: %w: %q", model.ErrInvalidInput, model.ErrUnknownOrigin, item.Unit.Origin)
	}
	if item.Unit.Text == nil {
		return fmt.Errorf("%w: text is absent", model.ErrInvalidInput)
	}
	if n := item.Unit.BodyLen(); s.maxTextLength > 0 && n > s.maxTextLength {
		return fmt.Errorf("%w: text length %d exceeds limit %d characters",
			model.ErrInvalidInput, n, s.maxTextLength)
	}
	return nil
}

// NormalizeStep lowercases the unit text into the item signals.
// Lowercasing is idempotent, so units built by the normalize package pass
// through unchanged.
type NormalizeStep struct{}

// NewNormalizeStep creates a normalization step.
func NewNormalizeStep() *NormalizeStep {
	return &NormalizeStep{}
}

// Name returns the step name.
func (s *NormalizeStep) Name() string {
	return "normalize"
}

// Do stores the normalized text.
func (s *NormalizeStep) Do(_ context.Context, item *Item) error {
	item.Signals.Text = normalize.Lower(*item.Unit.Text)
	item.Signals.Engagement = item.Unit.Engagement
	return nil
}

// MatcherSet selects a matcher by content origin.
type MatcherSet map[model.Origin]match.Matcher

// KeywordStep finds vocabulary phrases.
type KeywordStep struct {
	matchers MatcherSet
}

// NewKeywordStep creates a keyword matching step.
func NewKeywordStep(matchers MatcherSet) *KeywordStep {
	return &KeywordStep{matchers: matchers}
}

// Name returns the step name.
func (s *KeywordStep) Name() string {
	return "keywords"
}

// Do records flagged keywords.
func (s *KeywordStep) Do(_ context.Context, item *Item) error {
	m, ok := s.matchers[item.Unit.Origin]
	if !ok {
		return fmt.Errorf("no keyword matcher for origin %q", item.Unit.Origin)
	}
	item.Signals.Keywords = m.Match(item.Signals.Text)
	return nil
}

// PatternStep finds regex signatures.
type PatternStep struct {
	matchers MatcherSet
}

// NewPatternStep creates a pattern matching step.
func NewPatternStep(matchers MatcherSet) *PatternStep {
	return &PatternStep{matchers: matchers}
}

// Name returns the step name.
func (s *PatternStep) Name() string {
	return "patterns"
}

// Do records flagged patterns.
func (s *PatternStep) Do(_ context.Context, item *Item) error {
	m, ok := s.matchers[item.Unit.Origin]
	if !ok {
		return fmt.Errorf("no pattern matcher for origin %q", item.Unit.Origin)
	}
	item.Signals.Patterns = m.Match(item.Signals.Text)
	return nil
}

// SentimentStep scores polarity.
type SentimentStep struct {
	scorer *sentiment.Scorer
}

// NewSentimentStep creates a sentiment step.
func NewSentimentStep(scorer *sentiment.Scorer) *SentimentStep {
	return &SentimentStep{scorer: scorer}
}

// Name returns the step name.
func (s *SentimentStep) Name() string {
	return "sentiment"
}

// Do records the sentiment.
func (s *SentimentStep) Do(_ context.Context, item *Item) error {
	item.Signals.Sentiment = s.scorer.Score(item.Signals.Text)
	return nil
}

// Model is a classifier model snapshot.
type Model interface {
	// Classify returns label probabilities for text.
	Classify(text string) []model.Classification

	// ID identifies the snapshot.
	ID() string
}

// ClassifyStep consults the statistical classifier. Classifier failure
// never fails the analysis: the step records ErrClassifierUnavailable as a
// warning and fusion proceeds without the classifier signal.
type ClassifyStep struct {
	snapshot func() Model
	origins  map[model.Origin]bool
	logger   *slog.Logger
}

// ClassifyStepOption configures a ClassifyStep.
type ClassifyStepOption func(*ClassifyStep)

// WithClassifyOrigins restricts classification to the given origins.
// By default only job postings are classified.
func WithClassifyOrigins(origins ...model.Origin) ClassifyStepOption {
	return func(s *ClassifyStep) {
		s.origins = make(map[model.Origin]bool, len(origins))
		for _, o := range origins {
			s.origins[o] = true
		}
	}
}

// WithClassifyLogger sets a custom logger for the classify step.
func WithClassifyLogger(logger *slog.Logger) ClassifyStepOption {
	return func(s *ClassifyStep) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// NewClassifyStep creates a classify step. snapshot is called once per
// item so that one analysis always uses one consistent model.
func NewClassifyStep(snapshot func() Model, opts ...ClassifyStepOption) *ClassifyStep {
	s := &ClassifyStep{
		snapshot: snapshot,
		origins:  map[model.Origin]bool{model.OriginJobPosting: true},
		logger:   slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Name returns the step name.
func (s *ClassifyStep) Name() string {
	return "classify"
}

// Do classifies the text and records the model identifier.
func (s *ClassifyStep) Do(_ context.Context, item *Item) error {
	if !s.origins[item.Unit.Origin] {
		return nil
	}

	m := s.snapshot()
	if m == nil {
		item.Warn(fmt.Errorf("%w: no model loaded", model.ErrClassifierUnavailable))
		return nil
	}

	cls, err := safeClassify(m, item.Signals.Text)
	if err != nil {
		s.logger.Warn("classifier unavailable, continuing without it",
			"unit", item.Unit.ID,
			"error", err,
		)
		item.Warn(err)
		return nil
	}

	item.Signals.Classification = cls
	item.Result.ModelVersion = m.ID()
	return nil
}

// safeClassify runs the model, converting panics and malformed output
// into ErrClassifierUnavailable.
func safeClassify(m Model, text string) (cls []model.Classification, err error) {
	defer func() {
		if r := recover(); r != nil {
			cls = nil
			err = fmt.Errorf("%w: %v", model.ErrClassifierUnavailable, r)
		}
	}()
	cls = m.Classify(text)
	if err := ValidateClassification(cls); err != nil {
		return nil, err
	}
	return cls, nil
}

// ValidateClassification checks that every label is known and every
// probability is a finite number in [0, 1].
func ValidateClassification(cls []model.Classification) error {
	for _, c := range cls {
		if !c.Label.IsValid() {
			return fmt.Errorf("%w: unknown label %q", model.ErrClassifierUnavailable, c.Label)
		}
		p := c.Probability
		if math.IsNaN(p) || math.IsInf(p, 0) || p < 0 || p > 1 {
			return fmt.Errorf("%w: probability %v out of range", model.ErrClassifierUnavailable, p)
		}
	}
	return nil
}

// FuseStep applies the risk policy of the unit origin.
type FuseStep struct{}

// NewFuseStep creates a fusion step.
func NewFuseStep() *FuseStep {
	return &FuseStep{}
}

// Name returns the step name.
func (s *FuseStep) Name() string {
	return "fuse"
}

// Do scores the accumulated signals and fills the result.
func (s *FuseStep) Do(_ context.Context, item *Item) error {
	policy, err := risk.ForOrigin(item.Unit.Origin)
	if err != nil {
		return fmt.Errorf("%w: %w", model.ErrInvalidInput, err)
	}
	risk.Apply(item.Result, item.Signals, policy.Assess(item.Signals))
	return nil
}
