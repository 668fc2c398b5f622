// Package pipeline executes the analysis of one content unit as an ordered
// sequence of steps, and runs many such analyses concurrently.
//
// A single analysis flows through validation, normalization, keyword and
// pattern matching, sentiment scoring, classification and fusion. Each
// stage is a Step that reads and extends the shared Item. Steps hold only
// read-only state, so one Pipeline may serve many goroutines.
//
// BatchProcessor fans a batch out with errgroup under a concurrency limit.
// A unit that fails is turned into a degraded result; it never aborts the
// rest of the batch.
package pipeline
