package classifier

import (
	"encoding/hex"
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/jbrukh/bayesian"
	"github.com/nao1215/scamscan/internal/model"
	"golang.org/x/crypto/sha3"
)

// labels fixes the iteration order so results are deterministic; classes
// mirrors it so LogScores indexes line up.
var (
	labels  = []model.Label{model.LabelScam, model.LabelLegitimate}
	classes = []bayesian.Class{bayesian.Class(model.LabelScam), bayesian.Class(model.LabelLegitimate)}
)

// Model is an immutable trained naive Bayes model. The underlying
// bayesian.Classifier is written only while the model is built and is
// read-only once published.
type Model struct {
	version     int64
	fingerprint string
	trainedAt   time.Time
	examples    []model.TrainingExample
	docs        map[model.Label]int
	vocabulary  map[string]struct{}
	nb          *bayesian.Classifier
}

// build trains a new Model from scratch. Examples must already be valid.
func build(examples []model.TrainingExample, version int64, at time.Time) *Model {
	m := &Model{
		version:    version,
		trainedAt:  at,
		examples:   append([]model.TrainingExample(nil), examples...),
		docs:       make(map[model.Label]int),
		vocabulary: make(map[string]struct{}),
		nb:         bayesian.NewClassifier(classes...),
	}

	h := sha3.New256()
	for _, ex := range m.examples {
		fmt.Fprintf(h, "%s\t%s\n", ex.Label, ex.Text)

		tokens := Tokenize(ex.Text)
		m.nb.Learn(tokens, bayesian.Class(ex.Label))
		m.docs[ex.Label]++
		for _, tok := range tokens {
			m.vocabulary[tok] = struct{}{}
		}
	}
	m.fingerprint = hex.EncodeToString(h.Sum(nil))
	return m
}

// Version returns the monotonically increasing model version.
func (m *Model) Version() int64 {
	return m.version
}

// Fingerprint returns the hex SHA3-256 digest of the training corpus.
func (m *Model) Fingerprint() string {
	return m.fingerprint
}

// ID returns a short identifier combining version and fingerprint, as
// recorded on analysis results.
func (m *Model) ID() string {
	return fmt.Sprintf("v%d-%s", m.version, m.fingerprint[:12])
}

// TrainedAt returns when the model was built.
func (m *Model) TrainedAt() time.Time {
	return m.trainedAt
}

// Size returns the number of training examples.
func (m *Model) Size() int {
	return len(m.examples)
}

// Examples returns a copy of the training corpus.
func (m *Model) Examples() []model.TrainingExample {
	return append([]model.TrainingExample(nil), m.examples...)
}

// Classify returns a probability for every label that has training
// documents, sorted by descending probability. The probabilities sum to
// one. Tokens outside the training vocabulary carry no evidence. The result
// is empty when the model has no examples, and also when a trained model
// knows none of the tokens: unseen text yields no classifier signal rather
// than the class priors.
func (m *Model) Classify(text string) []model.Classification {
	out := make([]model.Classification, 0, len(labels))
	if len(m.examples) == 0 {
		return out
	}

	tokens := m.known(Tokenize(text))
	if len(tokens) == 0 {
		return out
	}

	scores, _, _ := m.nb.LogScores(tokens)
	logProbs := make([]float64, 0, len(labels))
	present := make([]model.Label, 0, len(labels))
	maxLP := math.Inf(-1)
	for i, l := range labels {
		if m.docs[l] == 0 {
			continue
		}
		logProbs = append(logProbs, scores[i])
		present = append(present, l)
		maxLP = math.Max(maxLP, scores[i])
	}
	if math.IsInf(maxLP, -1) || math.IsNaN(maxLP) {
		return out
	}

	// log-sum-exp normalization
	sum := 0.0
	for _, lp := range logProbs {
		sum += math.Exp(lp - maxLP)
	}
	for i, lp := range logProbs {
		out = append(out, model.Classification{
			Label:       present[i],
			Probability: math.Exp(lp-maxLP) / sum,
		})
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Probability > out[j].Probability
	})
	return out
}

func (m *Model) known(tokens []string) []string {
	out := tokens[:0]
	for _, tok := range tokens {
		if _, ok := m.vocabulary[tok]; ok {
			out = append(out, tok)
		}
	}
	return out
}
