package match

import (
	"fmt"
	"regexp"
	"strings"
)

// PatternMatcher detects structural scam signatures such as fee amounts
// or payment rails with regular expressions.
type PatternMatcher struct {
	name     string
	patterns []*regexp.Regexp
}

// NewPatternMatcher compiles each signature case-insensitively.
func NewPatternMatcher(name string, signatures []string) (*PatternMatcher, error) {
	patterns := make([]*regexp.Regexp, 0, len(signatures))
	for _, sig := range signatures {
		if !strings.HasPrefix(sig, "(?i)") {
			sig = "(?i)" + sig
		}
		re, err := regexp.Compile(sig)
		if err != nil {
			return nil, fmt.Errorf("failed to compile pattern %q: %w", sig, err)
		}
		patterns = append(patterns, re)
	}
	return &PatternMatcher{name: name, patterns: patterns}, nil
}

// Name returns the matcher name.
func (m *PatternMatcher) Name() string {
	return m.name
}

// Len returns the number of signatures.
func (m *PatternMatcher) Len() int {
	return len(m.patterns)
}

// Match returns every distinct substring matched by any signature,
// ordered by signature and then by position in text.
func (m *PatternMatcher) Match(text string) []string {
	found := make([]string, 0)
	if text == "" {
		return found
	}
	seen := make(map[string]bool)
	for _, re := range m.patterns {
		for _, hit := range re.FindAllString(text, -1) {
			if hit == "" || seen[hit] {
				continue
			}
			seen[hit] = true
			found = append(found, hit)
		}
	}
	return found
}
