package sentiment

import (
	"bufio"
	"bytes"
	_ "embed"
	"strconv"
	"strings"
	"unicode"

	"github.com/nao1215/scamscan/internal/model"
)

//go:embed afinn.tsv
var afinnData []byte

// negators flip the polarity of the token that follows them.
var negators = map[string]bool{
	"not": true, "non": true, "never": true,
	"cant": true, "can't": true, "dont": true, "don't": true,
	"doesnt": true, "doesn't": true, "isnt": true, "isn't": true,
	"wont": true, "won't": true, "wasnt": true, "wasn't": true,
}

// Scorer computes sentiment from a word list. It is read-only after
// construction and safe for concurrent use.
type Scorer struct {
	lexicon map[string]int
}

// Option configures a Scorer.
type Option func(*Scorer)

// WithLexicon replaces the embedded word list.
func WithLexicon(lexicon map[string]int) Option {
	return func(s *Scorer) {
		s.lexicon = lexicon
	}
}

// New creates a Scorer using the embedded word list unless overridden.
func New(opts ...Option) *Scorer {
	s := &Scorer{}
	for _, opt := range opts {
		opt(s)
	}
	if s.lexicon == nil {
		s.lexicon = parseLexicon(afinnData)
	}
	return s
}

// Score returns the polarity of text. Comparative is the score divided by
// the token count, or zero when text has no tokens.
func (s *Scorer) Score(text string) model.Sentiment {
	result := model.Sentiment{
		Positive: make([]string, 0),
		Negative: make([]string, 0),
	}

	tokens := Tokenize(text)
	if len(tokens) == 0 {
		return result
	}

	for i, tok := range tokens {
		weight, ok := s.lexicon[tok]
		if !ok {
			continue
		}
		if i > 0 && negators[tokens[i-1]] {
			weight = -weight
		}
		switch {
		case weight > 0:
			result.Positive = append(result.Positive, tok)
		case weight < 0:
			result.Negative = append(result.Negative, tok)
		}
		result.Score += weight
	}

	result.Comparative = float64(result.Score) / float64(len(tokens))
	return result
}

// Tokenize lowercases text, drops punctuation other than apostrophes and
// hyphens, and splits on whitespace.
func Tokenize(text string) []string {
	cleaned := strings.Map(func(r rune) rune {
		switch {
		case unicode.IsLetter(r), unicode.IsDigit(r), r == '\'', r == '-':
			return unicode.ToLower(r)
		case unicode.IsSpace(r):
			return ' '
		default:
			return -1
		}
	}, text)
	return strings.Fields(cleaned)
}

// parseLexicon reads "word<TAB>weight" lines. Malformed lines are skipped.
func parseLexicon(data []byte) map[string]int {
	lexicon := make(map[string]int)
	scanner := bufio.NewScanner(bytes.NewReader(data))
	for scanner.Scan() {
		word, weight, ok := strings.Cut(scanner.Text(), "\t")
		if !ok {
			continue
		}
		n, err := strconv.Atoi(strings.TrimSpace(weight))
		if err != nil {
			continue
		}
		lexicon[strings.TrimSpace(word)] = n
	}
	return lexicon
}
