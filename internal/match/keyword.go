package match

import "strings"

// Matcher reports the indicators a text contains.
type Matcher interface {
	// Name returns the matcher name for logging.
	Name() string

	// Match returns the indicators found in text, without duplicates.
	Match(text string) []string
}

// KeywordMatcher detects vocabulary phrases by plain substring search.
// Matching is not word-bounded: "fee" also matches inside "coffee".
type KeywordMatcher struct {
	name       string
	vocabulary []string
}

// NewKeywordMatcher creates a KeywordMatcher. Empty and duplicate
// vocabulary entries are dropped; the first occurrence keeps its position.
func NewKeywordMatcher(name string, vocabulary []string) *KeywordMatcher {
	seen := make(map[string]bool, len(vocabulary))
	vocab := make([]string, 0, len(vocabulary))
	for _, v := range vocabulary {
		v = strings.ToLower(strings.TrimSpace(v))
		if v == "" || seen[v] {
			continue
		}
		seen[v] = true
		vocab = append(vocab, v)
	}
	return &KeywordMatcher{name: name, vocabulary: vocab}
}

// Name returns the matcher name.
func (m *KeywordMatcher) Name() string {
	return m.name
}

// Vocabulary returns a copy of the vocabulary in match order.
func (m *KeywordMatcher) Vocabulary() []string {
	return append([]string(nil), m.vocabulary...)
}

// Match returns the vocabulary entries occurring in text, in vocabulary
// order. Text is expected to be lowercased already.
func (m *KeywordMatcher) Match(text string) []string {
	found := make([]string, 0)
	if text == "" {
		return found
	}
	for _, term := range m.vocabulary {
		if strings.Contains(text, term) {
			found = append(found, term)
		}
	}
	return found
}
