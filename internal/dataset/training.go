package dataset

import (
	"github.com/nao1215/scamscan/internal/model"
)

// LoadTrainingExamples reads labelled examples from a JSON or YAML file.
func LoadTrainingExamples(path string) ([]model.TrainingExample, error) {
	data, format, err := readFile(path)
	if err != nil {
		return nil, err
	}
	return ParseTrainingExamples(data, format)
}

// ParseTrainingExamples validates and decodes labelled examples.
func ParseTrainingExamples(data []byte, format Format) ([]model.TrainingExample, error) {
	if err := validate("training.json", data, format); err != nil {
		return nil, err
	}
	var examples []model.TrainingExample
	if err := decode(data, format, &examples); err != nil {
		return nil, err
	}
	return examples, nil
}
