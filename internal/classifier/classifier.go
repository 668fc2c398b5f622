package classifier

import (
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/nao1215/scamscan/internal/model"
)

// ErrNoExamples is returned by Update when called without examples.
var ErrNoExamples = errors.New("no training examples")

// Classifier owns the active Model. Classify may be called from any number
// of goroutines while Train or Update run; retrains are serialized.
type Classifier struct {
	active atomic.Pointer[Model]

	// mu serializes retrains so two concurrent Updates cannot both start
	// from the same base corpus and lose each other's examples.
	mu sync.Mutex

	logger *slog.Logger
	now    func() time.Time
}

// Option configures a Classifier.
type Option func(*Classifier)

// WithLogger sets the logger used to report retrains.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Classifier) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// WithClock overrides the time source used to stamp models.
func WithClock(now func() time.Time) Option {
	return func(c *Classifier) {
		if now != nil {
			c.now = now
		}
	}
}

// New creates a Classifier trained on the seed corpus.
func New(seed []model.TrainingExample, opts ...Option) (*Classifier, error) {
	c := &Classifier{
		logger: slog.Default(),
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}
	if err := validate(seed); err != nil {
		return nil, err
	}
	c.active.Store(build(seed, 1, c.now()))
	return c, nil
}

// Model returns the active model snapshot.
func (c *Classifier) Model() *Model {
	return c.active.Load()
}

// Classify classifies text with the active model.
func (c *Classifier) Classify(text string) []model.Classification {
	return c.active.Load().Classify(text)
}

// ModelID returns the identifier of the active model.
func (c *Classifier) ModelID() string {
	return c.active.Load().ID()
}

// Train replaces the model with one trained from scratch on corpus.
// If any example is invalid the active model is left unchanged.
func (c *Classifier) Train(corpus []model.TrainingExample) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := validate(corpus); err != nil {
		return err
	}
	c.swap(corpus)
	return nil
}

// Update retrains on the active corpus plus examples. It is all or
// nothing: one invalid example rejects the whole request.
func (c *Classifier) Update(examples []model.TrainingExample) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if len(examples) == 0 {
		return fmt.Errorf("%w: %w", model.ErrRetrainFailure, ErrNoExamples)
	}
	if err := validate(examples); err != nil {
		return err
	}

	current := c.active.Load()
	corpus := make([]model.TrainingExample, 0, current.Size()+len(examples))
	corpus = append(corpus, current.examples...)
	corpus = append(corpus, examples...)
	c.swap(corpus)
	return nil
}

// swap builds and publishes the next model. Callers hold mu.
func (c *Classifier) swap(corpus []model.TrainingExample) {
	next := build(corpus, c.active.Load().Version()+1, c.now())
	c.active.Store(next)
	c.logger.Info("classifier retrained",
		"version", next.Version(),
		"examples", next.Size(),
		"fingerprint", next.Fingerprint()[:12],
	)
}

func validate(examples []model.TrainingExample) error {
	for i, ex := range examples {
		if err := ex.Validate(); err != nil {
			return fmt.Errorf("%w: example %d: %w", model.ErrRetrainFailure, i, err)
		}
	}
	return nil
}
