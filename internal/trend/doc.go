// Package trend aggregates windows of analysis results into recurring
// keyword and scam-type counts, and filters them into alerts.
//
// The caller selects the window; both aggregations are pure and leave
// their inputs untouched.
package trend
