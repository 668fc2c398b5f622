// Package main provides the entry point for the scamscan CLI.
//
// scamscan scores job postings and social media posts for scam risk.
// It combines keyword and pattern matching, lexical sentiment and a naive
// Bayes classifier that can be retrained from labeled examples.
//
// Usage:
//
//	scamscan analyze "pay a $50 fee to start working from home"
//	scamscan analyze --file posts.json
//	scamscan retrain examples.yaml
//	scamscan trends --window 168h
//	scamscan alerts --min-confidence 0.8
//
// See --help for all available options.
package main

func main() {
	Execute()
}
