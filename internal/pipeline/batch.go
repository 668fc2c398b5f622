package pipeline

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/nao1215/scamscan/internal/model"
	"golang.org/x/sync/errgroup"
)

// DefaultConcurrency is the number of concurrent analyses when
// WithConcurrency is not given.
const DefaultConcurrency = 10

// BatchProcessor handles concurrent analysis of many content units.
// It uses errgroup to manage goroutines and respect concurrency limits.
type BatchProcessor struct {
	// pipelineFactory returns the pipeline used for each unit.
	pipelineFactory func() *Pipeline

	// concurrency is the maximum number of concurrent analyses.
	concurrency int

	// logger is used for batch-level logging.
	logger *slog.Logger

	// now stamps results.
	now func() time.Time

	// onItem is called once per finished unit, from the worker goroutine.
	onItem func(item *Item, elapsed time.Duration)
}

// BatchOption configures a BatchProcessor.
type BatchOption func(*BatchProcessor)

// WithBatchLogger sets a custom logger for batch processing.
func WithBatchLogger(logger *slog.Logger) BatchOption {
	return func(b *BatchProcessor) {
		b.logger = logger
	}
}

// WithConcurrency sets the maximum number of concurrent analyses.
// Non-positive values are ignored.
func WithConcurrency(n int) BatchOption {
	return func(b *BatchProcessor) {
		if n > 0 {
			b.concurrency = n
		}
	}
}

// WithBatchClock overrides the time source used to stamp results.
func WithBatchClock(now func() time.Time) BatchOption {
	return func(b *BatchProcessor) {
		if now != nil {
			b.now = now
		}
	}
}

// WithItemHook registers fn to be called after each unit finishes.
// fn runs concurrently and must be safe for concurrent use.
func WithItemHook(fn func(item *Item, elapsed time.Duration)) BatchOption {
	return func(b *BatchProcessor) {
		b.onItem = fn
	}
}

// NewBatchProcessor creates a new BatchProcessor.
func NewBatchProcessor(pipelineFactory func() *Pipeline, opts ...BatchOption) *BatchProcessor {
	bp := &BatchProcessor{
		pipelineFactory: pipelineFactory,
		concurrency:     DefaultConcurrency,
		now:             time.Now,
	}

	for _, opt := range opts {
		opt(bp)
	}

	if bp.logger == nil {
		bp.logger = slog.Default()
	}

	return bp
}

// ProcessBatch analyzes units concurrently and returns one BatchItem per
// unit in input order.
//
// A unit whose analysis fails yields a degraded result and the failure is
// recorded on its BatchItem; the other units are unaffected. The returned
// error is non-nil only when the context was cancelled, in which case the
// units that did not run carry the context error.
func (bp *BatchProcessor) ProcessBatch(ctx context.Context, units []model.ContentUnit) ([]model.BatchItem, error) {
	bp.logger.Info("starting batch processing",
		"total_units", len(units),
		"concurrency", bp.concurrency,
	)

	startTime := time.Now()

	// Pre-allocate results slice to maintain order
	results := make([]model.BatchItem, len(units))
	var mu sync.Mutex

	store := func(i int, item *Item, elapsed time.Duration) {
		mu.Lock()
		results[i] = model.BatchItem{Index: i, Result: item.Final(), Err: item.Err}
		mu.Unlock()
		if bp.onItem != nil {
			bp.onItem(item, elapsed)
		}
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(bp.concurrency)

	for i, unit := range units {
		g.Go(func() error {
			item := NewItem(unit, bp.now())

			select {
			case <-ctx.Done():
				item.Err = ctx.Err()
				store(i, item, 0)
				return ctx.Err()
			default:
			}

			start := time.Now()
			// The item keeps the error; other units continue
			if err := bp.pipelineFactory().Execute(ctx, item); err != nil {
				bp.logger.Warn("analysis failed",
					"unit", unit.ID,
					"index", i,
					"error", err,
				)
			}
			store(i, item, time.Since(start))
			return nil
		})
	}

	err := g.Wait()

	summary := model.Summarize(results)
	bp.logger.Info("batch processing complete",
		"total_units", summary.Total,
		"flagged", summary.Scam,
		"failed", summary.Failed,
		"elapsed", time.Since(startTime),
	)

	return results, err
}
