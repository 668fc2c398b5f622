// Package engine wires the analysis components into the entry points used
// by the CLI: single and batch analysis, retraining, trends and alerts.
//
// An Engine is safe for concurrent use. Analyses never share mutable state
// except the classifier model, which Retrain replaces atomically.
package engine
