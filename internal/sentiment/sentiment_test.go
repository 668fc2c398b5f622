package sentiment

import (
	"reflect"
	"testing"
)

func TestTokenize(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input string
		want  []string
	}{
		{"", []string{}},
		{"Act NOW!!!", []string{"act", "now"}},
		{"don't stop, earn $500/day", []string{"don't", "stop", "earn", "500day"}},
		{"  spaced\tout\nlines ", []string{"spaced", "out", "lines"}},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			t.Parallel()
			got := Tokenize(tt.input)
			if len(got) == 0 && len(tt.want) == 0 {
				return
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Tokenize(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestScore(t *testing.T) {
	t.Parallel()

	s := New()

	t.Run("empty text scores zero", func(t *testing.T) {
		t.Parallel()
		got := s.Score("")
		if got.Score != 0 || got.Comparative != 0 {
			t.Errorf("Score(\"\") = %+v", got)
		}
	})

	t.Run("punctuation only scores zero", func(t *testing.T) {
		t.Parallel()
		if got := s.Score("!!! ???"); got.Comparative != 0 {
			t.Errorf("expected zero comparative, got %v", got.Comparative)
		}
	})

	t.Run("positive words", func(t *testing.T) {
		t.Parallel()
		got := s.Score("amazing opportunity")
		if got.Score != 6 {
			t.Errorf("expected score 6, got %d", got.Score)
		}
		if got.Comparative != 3 {
			t.Errorf("expected comparative 3, got %v", got.Comparative)
		}
		if !reflect.DeepEqual(got.Positive, []string{"amazing", "opportunity"}) {
			t.Errorf("unexpected positive list %v", got.Positive)
		}
	})

	t.Run("negation flips polarity", func(t *testing.T) {
		t.Parallel()
		got := s.Score("this is not good")
		if got.Score != -3 {
			t.Errorf("expected score -3, got %d", got.Score)
		}
		if len(got.Negative) != 1 || got.Negative[0] != "good" {
			t.Errorf("unexpected negative list %v", got.Negative)
		}
	})

	t.Run("mixed polarity", func(t *testing.T) {
		t.Parallel()
		got := s.Score("great pay but terrible hours")
		if got.Score != 0 {
			t.Errorf("expected score 0, got %d", got.Score)
		}
		if got.Comparative != 0 {
			t.Errorf("expected comparative 0, got %v", got.Comparative)
		}
	})

	t.Run("custom lexicon", func(t *testing.T) {
		t.Parallel()
		custom := New(WithLexicon(map[string]int{"stonks": 5}))
		if got := custom.Score("stonks stonks"); got.Score != 10 || got.Comparative != 5 {
			t.Errorf("unexpected custom score %+v", got)
		}
	})
}

func TestEmbeddedLexicon(t *testing.T) {
	t.Parallel()

	lex := parseLexicon(afinnData)
	if len(lex) < 100 {
		t.Errorf("embedded lexicon too small: %d entries", len(lex))
	}
	if lex["fraud"] != -4 {
		t.Errorf("fraud = %d, want -4", lex["fraud"])
	}
	if got := parseLexicon([]byte("broken line\nword\tNaN\nok\t2\n")); len(got) != 1 {
		t.Errorf("malformed lines should be skipped, got %v", got)
	}
}
