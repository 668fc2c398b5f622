package config

import (
	_ "embed"
	"fmt"
	"os"
	"regexp"

	"github.com/nao1215/scamscan/internal/model"
	"gopkg.in/yaml.v3"
)

//go:embed lexicon.yaml
var defaultLexicon []byte

// Vocabulary is the keyword list and regex signature set of one origin.
type Vocabulary struct {
	Keywords []string `yaml:"keywords"`
	Patterns []string `yaml:"patterns"`
}

// Lexicon is the versioned resource the engine loads once at start-up.
// It is read-only after loading.
type Lexicon struct {
	// Version identifies the lexicon revision.
	Version string `yaml:"version"`

	// Job is the vocabulary applied to job postings.
	Job Vocabulary `yaml:"job"`

	// Social is the vocabulary applied to social posts.
	Social Vocabulary `yaml:"social"`

	// Seed is the corpus the classifier is trained on at construction.
	Seed []model.TrainingExample `yaml:"seed"`
}

// DefaultLexicon returns the embedded lexicon.
func DefaultLexicon() (*Lexicon, error) {
	return ParseLexicon(defaultLexicon)
}

// LoadLexicon reads a lexicon from a YAML file. An empty path returns the
// embedded default.
func LoadLexicon(path string) (*Lexicon, error) {
	if path == "" {
		return DefaultLexicon()
	}
	data, err := os.ReadFile(path) //nolint:gosec // User-provided lexicon path is intentional
	if err != nil {
		return nil, fmt.Errorf("failed to read lexicon: %w", err)
	}
	return ParseLexicon(data)
}

// ParseLexicon decodes and validates a YAML lexicon.
func ParseLexicon(data []byte) (*Lexicon, error) {
	var lex Lexicon
	if err := yaml.Unmarshal(data, &lex); err != nil {
		return nil, fmt.Errorf("failed to parse lexicon: %w", err)
	}
	if err := lex.Validate(); err != nil {
		return nil, err
	}
	return &lex, nil
}

// Vocabulary returns the vocabulary for an origin.
func (l *Lexicon) Vocabulary(origin model.Origin) Vocabulary {
	if origin == model.OriginSocialPost {
		return l.Social
	}
	return l.Job
}

// Validate checks that both vocabularies are usable and the seed corpus
// is well formed.
func (l *Lexicon) Validate() error {
	for name, v := range map[string]Vocabulary{"job": l.Job, "social": l.Social} {
		if len(v.Keywords) == 0 {
			return fmt.Errorf("%w: %s", ErrEmptyVocabulary, name)
		}
		for _, p := range v.Patterns {
			if _, err := regexp.Compile(p); err != nil {
				return fmt.Errorf("%w: %s: %q: %w", ErrInvalidPattern, name, p, err)
			}
		}
	}
	for i, ex := range l.Seed {
		if err := ex.Validate(); err != nil {
			return fmt.Errorf("%w: seed %d: %w", ErrInvalidSeed, i, err)
		}
	}
	return nil
}
