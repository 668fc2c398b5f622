// Package match finds scam indicators in normalized text.
//
// Two matchers are provided:
//   - KeywordMatcher reports which vocabulary phrases occur as substrings
//   - PatternMatcher reports the distinct substrings matched by a set of
//     regular expression signatures
//
// Both are pure and safe for concurrent use once constructed.
package match
