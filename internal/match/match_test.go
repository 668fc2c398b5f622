package match

import (
	"reflect"
	"testing"
)

func TestKeywordMatcher(t *testing.T) {
	t.Parallel()

	m := NewKeywordMatcher("job", []string{"fee", "work from home", "urgent", "Fee", " ", "act now"})

	tests := []struct {
		name string
		text string
		want []string
	}{
		{"empty text", "", []string{}},
		{"no match", "senior engineer role", []string{}},
		{"vocabulary order", "act now! urgent fee, work from home", []string{"fee", "work from home", "urgent", "act now"}},
		{"substring semantics", "free coffee", []string{"fee"}},
		{"duplicates reported once", "fee fee fee", []string{"fee"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := m.Match(tt.text)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Match(%q) = %v, want %v", tt.text, got, tt.want)
			}
		})
	}

	if got := m.Vocabulary(); len(got) != 4 {
		t.Errorf("expected duplicate and blank entries dropped, got %v", got)
	}
	if m.Name() != "job" {
		t.Errorf("Name() = %q", m.Name())
	}
}

func TestKeywordMatcherSupersetMonotonic(t *testing.T) {
	t.Parallel()

	m := NewKeywordMatcher("job", []string{"fee", "deposit", "visa", "urgent"})
	base := "pay the fee"
	extended := base + " and the visa deposit"

	baseHits := m.Match(base)
	extHits := m.Match(extended)
	set := make(map[string]bool)
	for _, h := range extHits {
		set[h] = true
	}
	for _, h := range baseHits {
		if !set[h] {
			t.Errorf("keyword %q lost after extending text", h)
		}
	}
	if len(extHits) < len(baseHits) {
		t.Errorf("extended text matched fewer keywords: %v vs %v", extHits, baseHits)
	}
}

func TestPatternMatcher(t *testing.T) {
	t.Parallel()

	m, err := NewPatternMatcher("job", []string{
		`\$\d+\s*(?:fee|deposit)`,
		`western union|gift cards?`,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if m.Len() != 2 {
		t.Errorf("Len() = %d", m.Len())
	}

	tests := []struct {
		name string
		text string
		want []string
	}{
		{"empty", "", []string{}},
		{"case insensitive", "Send $50 FEE via Western Union", []string{"$50 FEE", "Western Union"}},
		{"distinct matches once", "$5 fee then $5 fee then $9 deposit", []string{"$5 fee", "$9 deposit"}},
		{"signature order", "gift card then $10 fee", []string{"$10 fee", "gift card"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := m.Match(tt.text)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Match(%q) = %v, want %v", tt.text, got, tt.want)
			}
		})
	}
}

func TestNewPatternMatcherInvalid(t *testing.T) {
	t.Parallel()

	if _, err := NewPatternMatcher("bad", []string{"(unclosed"}); err == nil {
		t.Error("expected compile error")
	}
}
