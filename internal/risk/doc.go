// Package risk fuses the extracted signals of one content unit into a
// confidence, a flag decision and human-readable recommendations.
//
// Two policies exist, one per content origin. Their weights and thresholds
// are exported as named constants and must not drift: alert rules and
// stored results are compared against the exact numbers.
package risk
