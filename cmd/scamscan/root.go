package main

import (
	"fmt"
	"os"

	"github.com/nao1215/scamscan/internal/config"
	"github.com/spf13/cobra"
)

// NewRootCmd creates the root command for scamscan.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "scamscan",
		Short: "Score job postings and social posts for scam risk",
		Long: `scamscan is a content risk-scoring engine for scam detection.

It analyzes job postings and social media posts with a scam vocabulary,
regex signatures, lexical sentiment and a naive Bayes classifier, and
reports a confidence, red flags and scam types for every item.

Results are stored in a local database (XDG data directory by default) so
that trends and alerts can be computed over time, and labeled examples
added with "retrain" survive restarts.`,
		Version:       getVersion(),
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Global flags that apply to all commands
	cmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose logging")
	cmd.PersistentFlags().StringP("config", "c", "",
		"Configuration file path (default: .scamscan in current or home directory)")
	cmd.PersistentFlags().String("lexicon", "",
		"YAML lexicon overriding the built-in vocabulary, patterns and seed corpus")
	cmd.PersistentFlags().String("db-dir", config.XDGDataDir(),
		"Directory of the result and training database")
	cmd.PersistentFlags().String("metrics-file", "",
		"Write Prometheus metrics in text format to this file on exit")

	cmd.AddCommand(NewAnalyzeCmd())
	cmd.AddCommand(NewRetrainCmd())
	cmd.AddCommand(NewTrendsCmd())
	cmd.AddCommand(NewAlertsCmd())
	cmd.AddCommand(NewInitCmd())
	cmd.AddCommand(NewVersionCmd())

	return cmd
}

// Execute runs the root command.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
