package classifier

import (
	"errors"
	"math"
	"sync"
	"testing"

	"github.com/nao1215/scamscan/internal/model"
)

func seedCorpus() []model.TrainingExample {
	return []model.TrainingExample{
		{Text: "pay a registration fee to start work from home", Label: model.LabelScam},
		{Text: "urgent hiring no experience send processing fee", Label: model.LabelScam},
		{Text: "visa fee and flight deposit upfront", Label: model.LabelScam},
		{Text: "senior software engineer distributed systems", Label: model.LabelLegitimate},
		{Text: "registered nurse clinical experience required", Label: model.LabelLegitimate},
		{Text: "financial analyst quarterly reports budgets", Label: model.LabelLegitimate},
	}
}

func TestTokenize(t *testing.T) {
	t.Parallel()

	got := Tokenize("Pay THE fee, a $500 deposit!")
	want := []string{"pay", "fee", "500", "deposit"}
	if len(got) != len(want) {
		t.Fatalf("Tokenize() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("token %d = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestClassify(t *testing.T) {
	t.Parallel()

	c, err := New(seedCorpus())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	t.Run("scam text leans scam", func(t *testing.T) {
		t.Parallel()
		cls := c.Classify("send the registration fee and deposit")
		if len(cls) != 2 {
			t.Fatalf("expected 2 labels, got %v", cls)
		}
		if cls[0].Label != model.LabelScam {
			t.Errorf("expected scam first, got %v", cls)
		}
	})

	t.Run("legitimate text leans legitimate", func(t *testing.T) {
		t.Parallel()
		cls := c.Classify("software engineer for distributed systems")
		if cls[0].Label != model.LabelLegitimate {
			t.Errorf("expected legitimate first, got %v", cls)
		}
	})

	t.Run("probabilities are normalized and sorted", func(t *testing.T) {
		t.Parallel()
		for _, text := range []string{"fee engineer", "visa deposit", "nurse"} {
			cls := c.Classify(text)
			sum := 0.0
			for i, cl := range cls {
				if cl.Probability < 0 || cl.Probability > 1 || math.IsNaN(cl.Probability) {
					t.Errorf("probability out of range: %v", cl)
				}
				if i > 0 && cls[i-1].Probability < cl.Probability {
					t.Errorf("not sorted: %v", cls)
				}
				sum += cl.Probability
			}
			if math.Abs(sum-1) > 1e-9 {
				t.Errorf("probabilities for %q sum to %v", text, sum)
			}
		}
	})

	t.Run("is deterministic", func(t *testing.T) {
		t.Parallel()
		a := c.Classify("visa fee")
		b := c.Classify("visa fee")
		if a[0] != b[0] || a[1] != b[1] {
			t.Errorf("classification differs between calls: %v vs %v", a, b)
		}
	})
}

func TestClassifyUnknownVocabulary(t *testing.T) {
	t.Parallel()

	c, err := New(seedCorpus())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, text := range []string{"", "zebra quartz", "!!!"} {
		if cls := c.Classify(text); len(cls) != 0 {
			t.Errorf("Classify(%q) = %v, want no evidence", text, cls)
		}
	}
}

func TestClassifyIgnoresUnknownTokens(t *testing.T) {
	t.Parallel()

	c, err := New(seedCorpus())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := c.Classify("registration fee")
	got := c.Classify("registration fee zyxwv qwerty")
	if len(want) != 2 || len(got) != len(want) {
		t.Fatalf("unexpected classifications: %v vs %v", want, got)
	}
	for i := range want {
		if got[i].Label != want[i].Label || math.Abs(got[i].Probability-want[i].Probability) > 1e-12 {
			t.Errorf("unknown tokens changed the result: %v vs %v", want, got)
		}
	}
}

func TestClassifyEmptyModel(t *testing.T) {
	t.Parallel()

	c, err := New(nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cls := c.Classify("pay the fee"); len(cls) != 0 {
		t.Errorf("expected empty classification, got %v", cls)
	}
}

func TestClassifySingleLabel(t *testing.T) {
	t.Parallel()

	c, err := New([]model.TrainingExample{{Text: "fee", Label: model.LabelScam}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	cls := c.Classify("fee")
	if len(cls) != 1 || cls[0].Probability != 1 {
		t.Errorf("expected single certain label, got %v", cls)
	}
	if model.ProbabilityOf(cls, model.LabelLegitimate) != 0 {
		t.Error("absent label should have zero probability")
	}
}

func TestNewRejectsInvalidSeed(t *testing.T) {
	t.Parallel()

	_, err := New([]model.TrainingExample{{Text: "x", Label: "maybe"}})
	if !errors.Is(err, model.ErrRetrainFailure) || !errors.Is(err, model.ErrUnknownLabel) {
		t.Errorf("expected retrain failure wrapping unknown label, got %v", err)
	}
}

func TestUpdate(t *testing.T) {
	t.Parallel()

	t.Run("valid examples swap the model", func(t *testing.T) {
		t.Parallel()
		c, _ := New(seedCorpus())
		before := c.Model()

		err := c.Update([]model.TrainingExample{{Text: "crypto mining bonus", Label: model.LabelScam}})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		after := c.Model()
		if after.Version() != before.Version()+1 {
			t.Errorf("expected version %d, got %d", before.Version()+1, after.Version())
		}
		if after.Size() != before.Size()+1 {
			t.Errorf("expected %d examples, got %d", before.Size()+1, after.Size())
		}
		if after.Fingerprint() == before.Fingerprint() {
			t.Error("fingerprint should change with the corpus")
		}
		if before.Size() != len(seedCorpus()) {
			t.Error("previous snapshot must not be mutated")
		}
	})

	t.Run("invalid example leaves model untouched", func(t *testing.T) {
		t.Parallel()
		c, _ := New(seedCorpus())
		before := c.Model()

		err := c.Update([]model.TrainingExample{
			{Text: "fine example", Label: model.LabelScam},
			{Text: "bad label", Label: "spam"},
		})
		if !errors.Is(err, model.ErrRetrainFailure) {
			t.Fatalf("expected ErrRetrainFailure, got %v", err)
		}
		if c.Model() != before {
			t.Error("active model changed after failed retrain")
		}
	})

	t.Run("empty request is rejected", func(t *testing.T) {
		t.Parallel()
		c, _ := New(seedCorpus())
		err := c.Update(nil)
		if !errors.Is(err, model.ErrRetrainFailure) || !errors.Is(err, ErrNoExamples) {
			t.Errorf("expected ErrNoExamples, got %v", err)
		}
	})

	t.Run("more scam evidence raises scam probability", func(t *testing.T) {
		t.Parallel()
		c, _ := New(seedCorpus())
		text := "telegram crypto signals group"
		before := model.ProbabilityOf(c.Classify(text), model.LabelScam)

		err := c.Update([]model.TrainingExample{
			{Text: "join telegram crypto signals group", Label: model.LabelScam},
			{Text: "crypto signals telegram profit", Label: model.LabelScam},
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		after := model.ProbabilityOf(c.Classify(text), model.LabelScam)
		if after <= before {
			t.Errorf("expected scam probability to rise, got %v -> %v", before, after)
		}
	})
}

func TestTrainReplacesCorpus(t *testing.T) {
	t.Parallel()

	c, _ := New(seedCorpus())
	if err := c.Train([]model.TrainingExample{{Text: "only one", Label: model.LabelLegitimate}}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if c.Model().Size() != 1 {
		t.Errorf("expected corpus of 1, got %d", c.Model().Size())
	}
	if len(c.Model().Examples()) != 1 {
		t.Error("Examples() should mirror the corpus")
	}
}

func TestFingerprintDeterministic(t *testing.T) {
	t.Parallel()

	a, _ := New(seedCorpus())
	b, _ := New(seedCorpus())
	if a.Model().Fingerprint() != b.Model().Fingerprint() {
		t.Error("same corpus should produce the same fingerprint")
	}
	if a.ModelID() != b.ModelID() {
		t.Errorf("model IDs differ: %s vs %s", a.ModelID(), b.ModelID())
	}
}

func TestConcurrentClassifyDuringRetrain(t *testing.T) {
	t.Parallel()

	c, _ := New(seedCorpus())

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 200; j++ {
				cls := c.Classify("pay the fee for the engineer role")
				sum := 0.0
				for _, cl := range cls {
					sum += cl.Probability
				}
				if math.Abs(sum-1) > 1e-9 {
					t.Errorf("inconsistent classification: %v", cls)
					return
				}
			}
		}()
	}
	for i := 0; i < 4; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 10; j++ {
				if err := c.Update([]model.TrainingExample{{Text: "bonus fee", Label: model.LabelScam}}); err != nil {
					t.Errorf("unexpected error: %v", err)
				}
			}
		}()
	}
	wg.Wait()

	if got, want := c.Model().Size(), len(seedCorpus())+40; got != want {
		t.Errorf("lost updates: expected %d examples, got %d", want, got)
	}
	if got := c.Model().Version(); got != 41 {
		t.Errorf("expected version 41, got %d", got)
	}
}
