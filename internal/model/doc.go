// Package model defines the core data structures used throughout scamscan.
//
// This package contains the following main types:
//   - ContentUnit: A normalized piece of text to be scored, with its origin
//   - JobPosting, SocialPost: The caller-owned records a ContentUnit is built from
//   - AnalysisResult: The immutable risk assessment produced for one unit
//   - TrainingExample: A labeled text used to (re)train the classifier
//   - Trends, AlertFilter: Inputs and outputs of trend and alert aggregation
//
// Models live in their own package so that the matchers, the scoring
// policies, storage and reporting can share them without import cycles.
// Every type here serializes to JSON for reports and database storage.
package model
