package main

import (
	"fmt"

	"github.com/nao1215/scamscan/internal/dataset"
	"github.com/spf13/cobra"
)

// NewRetrainCmd creates the retrain command.
func NewRetrainCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "retrain <examples-file>",
		Short: "Add labeled examples to the classifier",
		Long: `Retrain adds labeled examples to the training corpus and retrains the
naive Bayes classifier.

The file is a JSON or YAML list of examples:

  - text: pay the registration fee to secure the position
    label: scam
  - text: full benefits package and paid time off
    label: legitimate

Every example is validated first; if any example is invalid nothing is
stored and the current model stays active. Accepted examples are appended
to the database so later runs train on them too.

Examples:
  scamscan retrain examples.yaml`,
		Args: cobra.ExactArgs(1),
		RunE: runRetrainCmd,
	}
}

// runRetrainCmd executes the retrain command.
func runRetrainCmd(cmd *cobra.Command, args []string) error {
	cfg, err := buildConfig(cmd)
	if err != nil {
		return err
	}

	examples, err := dataset.LoadTrainingExamples(args[0])
	if err != nil {
		return fmt.Errorf("failed to load training examples %s: %w", args[0], err)
	}

	a, err := newApp(cmd.Context(), cmd, cfg)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := a.Close(); cerr != nil {
			a.logger.Error("shutdown failed", "error", cerr)
		}
	}()

	before := a.engine.ModelID()
	if err := a.engine.Retrain(examples); err != nil {
		return err
	}
	if err := a.db.AppendTrainingExamples(cmd.Context(), examples); err != nil {
		return fmt.Errorf("model retrained but examples were not stored: %w", err)
	}

	info, err := a.db.TrainingCorpusInfo(cmd.Context())
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Added %d example(s)\n", len(examples))
	fmt.Fprintf(out, "Model:  %s -> %s\n", before, a.engine.ModelID())
	fmt.Fprintf(out, "Stored: %d example(s) (%d scam, %d legitimate)\n", info.Examples, info.Scam, info.Legitimate)
	return nil
}
