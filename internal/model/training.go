package model

import (
	"fmt"
	"strings"
)

// Label is a training label.
type Label string

const (
	// LabelScam marks fraudulent content.
	LabelScam Label = "scam"
	// LabelLegitimate marks genuine content.
	LabelLegitimate Label = "legitimate"
)

// String returns the string representation of the Label.
func (l Label) String() string {
	return string(l)
}

// IsValid returns true if this is a known label.
func (l Label) IsValid() bool {
	return l == LabelScam || l == LabelLegitimate
}

// TrainingExample is a labeled text used to train the classifier.
type TrainingExample struct {
	Text  string `json:"text" yaml:"text"`
	Label Label  `json:"label" yaml:"label"`
}

// Validate checks that the example has text and a known label.
func (e TrainingExample) Validate() error {
	if strings.TrimSpace(e.Text) == "" {
		return ErrEmptyText
	}
	if !e.Label.IsValid() {
		return fmt.Errorf("%w: %q", ErrUnknownLabel, e.Label)
	}
	return nil
}
