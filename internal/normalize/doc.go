// Package normalize turns caller-owned job postings and social posts into
// the single lowercase text a ContentUnit carries. It performs no
// tokenization; downstream matchers work on the joined string.
package normalize
