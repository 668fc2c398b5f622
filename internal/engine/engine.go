package engine

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/nao1215/scamscan/internal/classifier"
	"github.com/nao1215/scamscan/internal/config"
	"github.com/nao1215/scamscan/internal/match"
	"github.com/nao1215/scamscan/internal/metrics"
	"github.com/nao1215/scamscan/internal/model"
	"github.com/nao1215/scamscan/internal/normalize"
	"github.com/nao1215/scamscan/internal/pipeline"
	"github.com/nao1215/scamscan/internal/sentiment"
	"github.com/nao1215/scamscan/internal/trend"
)

// Engine scores content units for scam risk.
type Engine struct {
	lexicon    *config.Lexicon
	normalizer *normalize.Normalizer
	keywords   pipeline.MatcherSet
	patterns   pipeline.MatcherSet
	scorer     *sentiment.Scorer
	classifier *classifier.Classifier
	metrics    *metrics.Metrics
	logger     *slog.Logger
	now        func() time.Time

	maxTextLength int
	concurrency   int
	stripHTML     bool
	corpus        []model.TrainingExample
}

// Option configures an Engine.
type Option func(*Engine)

// WithLogger sets the logger passed to every component.
func WithLogger(logger *slog.Logger) Option {
	return func(e *Engine) {
		if logger != nil {
			e.logger = logger
		}
	}
}

// WithMaxTextLength sets the longest accepted body in characters.
// Zero disables the limit.
func WithMaxTextLength(n int) Option {
	return func(e *Engine) {
		e.maxTextLength = n
	}
}

// WithConcurrency sets the number of concurrent analyses in a batch.
func WithConcurrency(n int) Option {
	return func(e *Engine) {
		e.concurrency = n
	}
}

// WithMetrics records analyses and retrains on m.
func WithMetrics(m *metrics.Metrics) Option {
	return func(e *Engine) {
		e.metrics = m
	}
}

// WithClock overrides the time source used to stamp results and models.
func WithClock(now func() time.Time) Option {
	return func(e *Engine) {
		if now != nil {
			e.now = now
		}
	}
}

// WithStripHTML makes the normalizer strip markup from job descriptions
// and social post bodies.
func WithStripHTML(strip bool) Option {
	return func(e *Engine) {
		e.stripHTML = strip
	}
}

// WithCorpus adds previously accumulated training examples to the seed
// corpus of the lexicon, so that earlier retrains survive a restart.
func WithCorpus(examples []model.TrainingExample) Option {
	return func(e *Engine) {
		e.corpus = append(e.corpus, examples...)
	}
}

// New creates an Engine from lex. A nil lex selects the built-in lexicon.
func New(lex *config.Lexicon, opts ...Option) (*Engine, error) {
	if lex == nil {
		var err error
		if lex, err = config.DefaultLexicon(); err != nil {
			return nil, err
		}
	}
	if err := lex.Validate(); err != nil {
		return nil, err
	}

	e := &Engine{
		lexicon:       lex,
		logger:        slog.Default(),
		now:           time.Now,
		maxTextLength: config.DefaultMaxTextLength,
		concurrency:   config.DefaultBatchSize,
	}
	for _, opt := range opts {
		opt(e)
	}

	e.normalizer = normalize.New(normalize.WithStripHTML(e.stripHTML))
	e.scorer = sentiment.New()
	e.keywords = pipeline.MatcherSet{}
	e.patterns = pipeline.MatcherSet{}
	for _, origin := range []model.Origin{model.OriginJobPosting, model.OriginSocialPost} {
		vocab := lex.Vocabulary(origin)
		e.keywords[origin] = match.NewKeywordMatcher(string(origin), vocab.Keywords)
		pm, err := match.NewPatternMatcher(string(origin), vocab.Patterns)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", config.ErrInvalidPattern, err)
		}
		e.patterns[origin] = pm
	}

	seed := make([]model.TrainingExample, 0, len(lex.Seed)+len(e.corpus))
	seed = append(seed, lex.Seed...)
	seed = append(seed, e.corpus...)
	cls, err := classifier.New(seed,
		classifier.WithLogger(e.logger),
		classifier.WithClock(e.now),
	)
	if err != nil {
		return nil, err
	}
	e.classifier = cls
	e.metrics.SetModel(int(cls.Model().Version()), cls.Model().Size())

	e.logger.Debug("engine ready",
		"lexicon", lex.Version,
		"model", cls.ModelID(),
		"max_text_length", e.maxTextLength,
	)
	return e, nil
}

// newPipeline assembles the per-unit analysis steps.
func (e *Engine) newPipeline() *pipeline.Pipeline {
	p := pipeline.New(pipeline.WithLogger(e.logger))
	p.AddSteps(
		pipeline.NewValidateStep(e.maxTextLength),
		pipeline.NewNormalizeStep(),
		pipeline.NewKeywordStep(e.keywords),
		pipeline.NewPatternStep(e.patterns),
		pipeline.NewSentimentStep(e.scorer),
		pipeline.NewClassifyStep(e.snapshot, pipeline.WithClassifyLogger(e.logger)),
		pipeline.NewFuseStep(),
	)
	return p
}

func (e *Engine) snapshot() pipeline.Model {
	m := e.classifier.Model()
	if m == nil {
		return nil
	}
	return m
}

func (e *Engine) observe(item *pipeline.Item, r *model.AnalysisResult, elapsed time.Duration) {
	if item.HasWarning(model.ErrClassifierUnavailable) {
		e.metrics.ObserveClassifierUnavailable()
	}
	e.metrics.ObserveResult(r, elapsed)
}

// AnalyzeContent scores one content unit. It never returns nil: a unit
// that cannot be analyzed yields a degraded result with zero confidence
// and the reason in Error.
func (e *Engine) AnalyzeContent(ctx context.Context, unit model.ContentUnit) *model.AnalysisResult {
	item := pipeline.NewItem(unit, e.now())
	start := time.Now()
	if err := e.newPipeline().Execute(ctx, item); err != nil {
		e.logger.Warn("analysis failed", "unit", unit.ID, "error", err)
	}
	r := item.Final()
	e.observe(item, r, time.Since(start))
	return r
}

// AnalyzeJobPosting normalizes and scores a job posting.
func (e *Engine) AnalyzeJobPosting(ctx context.Context, id string, job *model.JobPosting) *model.AnalysisResult {
	return e.AnalyzeContent(ctx, e.normalizer.FromJobPosting(id, job))
}

// AnalyzeSocialPost normalizes and scores a social post.
func (e *Engine) AnalyzeSocialPost(ctx context.Context, id string, post *model.SocialPost) *model.AnalysisResult {
	return e.AnalyzeContent(ctx, e.normalizer.FromSocialPost(id, post))
}

// BatchAnalyze scores units concurrently. Items come back in input order;
// a failing unit yields a degraded result without affecting the others.
// The error is non-nil only when ctx is cancelled.
func (e *Engine) BatchAnalyze(ctx context.Context, units []model.ContentUnit) ([]model.BatchItem, error) {
	bp := pipeline.NewBatchProcessor(e.newPipeline,
		pipeline.WithBatchLogger(e.logger),
		pipeline.WithConcurrency(e.concurrency),
		pipeline.WithBatchClock(e.now),
		pipeline.WithItemHook(func(item *pipeline.Item, elapsed time.Duration) {
			e.observe(item, item.Final(), elapsed)
		}),
	)
	return bp.ProcessBatch(ctx, units)
}

// Retrain adds examples to the training corpus and installs the retrained
// model. Retrains are serialized; analyses running meanwhile use either
// the old or the new model. On failure the active model is unchanged and
// the error wraps model.ErrRetrainFailure.
func (e *Engine) Retrain(examples []model.TrainingExample) error {
	err := e.classifier.Update(examples)
	m := e.classifier.Model()
	e.metrics.ObserveRetrain(err, int(m.Version()), m.Size())
	if err != nil {
		e.logger.Warn("retrain rejected", "examples", len(examples), "error", err)
		return err
	}
	return nil
}

// Trends ranks the keywords and scam types of results.
func (e *Engine) Trends(results []*model.AnalysisResult) model.Trends {
	return trend.Trends(results, trend.DefaultTopN)
}

// Alerts filters results worth surfacing.
func (e *Engine) Alerts(results []*model.AnalysisResult, filter model.AlertFilter) []*model.AnalysisResult {
	return trend.Alerts(results, filter)
}

// Model returns the active classifier model.
func (e *Engine) Model() *classifier.Model {
	return e.classifier.Model()
}

// ModelID identifies the active classifier model.
func (e *Engine) ModelID() string {
	return e.classifier.ModelID()
}

// Lexicon returns the lexicon the engine was built from.
func (e *Engine) Lexicon() *config.Lexicon {
	return e.lexicon
}

// Normalizer returns the normalizer used to build content units.
func (e *Engine) Normalizer() *normalize.Normalizer {
	return e.normalizer
}
