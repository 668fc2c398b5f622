package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/nao1215/scamscan/internal/config"
	"github.com/nao1215/scamscan/internal/database"
	"github.com/nao1215/scamscan/internal/engine"
	applog "github.com/nao1215/scamscan/internal/log"
	"github.com/nao1215/scamscan/internal/metrics"
	"github.com/nao1215/scamscan/internal/model"
	"github.com/nao1215/scamscan/internal/report"
	"github.com/spf13/cobra"
)

// app bundles what every analysis command needs.
type app struct {
	cfg     *config.Config
	logger  *slog.Logger
	db      *database.ResultDB
	metrics *metrics.Metrics
	engine  *engine.Engine
}

// getVerboseFlag retrieves the verbose flag from the command or its parent.
func getVerboseFlag(cmd *cobra.Command) bool {
	verbose, err := cmd.Flags().GetBool("verbose")
	if err != nil {
		verbose, err = cmd.Root().PersistentFlags().GetBool("verbose")
		if err != nil {
			return false
		}
	}
	return verbose
}

// stringFlag returns a local or inherited string flag and whether the user
// set it.
func stringFlag(cmd *cobra.Command, name string) (string, bool) {
	f := cmd.Flags().Lookup(name)
	if f == nil {
		f = cmd.Root().PersistentFlags().Lookup(name)
	}
	if f == nil {
		return "", false
	}
	return f.Value.String(), f.Changed
}

// buildConfig creates a Config from defaults, the configuration file and
// the global flags, in that order.
func buildConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.NewConfig()
	cfg.Verbose = getVerboseFlag(cmd)
	cfg.ConfigFilePath, _ = stringFlag(cmd, "config")

	// If the user explicitly specified a config file path, error if not found.
	// If no path was specified, silently keep the defaults.
	configPath := config.FindConfigFile(cfg.ConfigFilePath)
	switch {
	case configPath != "":
		cf, err := config.LoadConfigFile(configPath)
		if err != nil {
			return nil, fmt.Errorf("failed to load config file %s: %w", configPath, err)
		}
		if err := cf.Apply(cfg); err != nil {
			return nil, fmt.Errorf("invalid config file %s: %w", configPath, err)
		}
	case cfg.ConfigFilePath != "":
		return nil, fmt.Errorf("configuration file not found: %s", cfg.ConfigFilePath)
	}

	if lexicon, set := stringFlag(cmd, "lexicon"); set {
		cfg.LexiconPath = lexicon
	}
	if dbDir, set := stringFlag(cmd, "db-dir"); set {
		cfg.DBDir = dbDir
	}
	cfg.MetricsFile, _ = stringFlag(cmd, "metrics-file")

	return cfg, nil
}

// addReportFlags registers the output format flags shared by the
// reporting commands.
func addReportFlags(cmd *cobra.Command) {
	cmd.Flags().BoolP("json", "j", false,
		"Output JSON report (mutually exclusive with --markdown)")
	cmd.Flags().BoolP("markdown", "m", false,
		"Output Markdown report (mutually exclusive with --json)")
	cmd.Flags().StringP("output", "o", "",
		"Write report to specified file path (creates directories if needed)")
}

// readReportFlags copies the output format flags onto cfg.
func readReportFlags(cmd *cobra.Command, cfg *config.Config) error {
	var err error
	if cfg.JSONReport, err = cmd.Flags().GetBool("json"); err != nil {
		return err
	}
	if cfg.MarkdownReport, err = cmd.Flags().GetBool("markdown"); err != nil {
		return err
	}
	if cfg.ReportFile, err = cmd.Flags().GetString("output"); err != nil {
		return err
	}
	return nil
}

// newApp opens the database and builds an engine trained on the lexicon
// seed plus the stored training corpus.
func newApp(ctx context.Context, cmd *cobra.Command, cfg *config.Config) (*app, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration error: %w", err)
	}

	logger := applog.NewLogger(cmd.ErrOrStderr(), cfg.Verbose)
	slog.SetDefault(logger)

	var lex *config.Lexicon
	if cfg.LexiconPath != "" {
		var err error
		if lex, err = config.LoadLexicon(cfg.LexiconPath); err != nil {
			return nil, fmt.Errorf("failed to load lexicon %s: %w", cfg.LexiconPath, err)
		}
	}

	db, err := database.Open(cfg.DBDir, database.DefaultOptions())
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	logger.Debug("database opened", "path", db.Path())

	corpus, err := db.TrainingCorpus(ctx)
	if err != nil {
		_ = db.Close() //nolint:errcheck // Best effort cleanup
		return nil, err
	}

	m := metrics.New()
	eng, err := engine.New(lex,
		engine.WithLogger(logger),
		engine.WithMetrics(m),
		engine.WithConcurrency(cfg.BatchSize),
		engine.WithMaxTextLength(cfg.MaxTextLength),
		engine.WithStripHTML(cfg.StripHTML),
		engine.WithCorpus(corpus),
	)
	if err != nil {
		_ = db.Close() //nolint:errcheck // Best effort cleanup
		return nil, fmt.Errorf("failed to build engine: %w", err)
	}

	return &app{cfg: cfg, logger: logger, db: db, metrics: m, engine: eng}, nil
}

// Close writes the metrics file, if configured, and closes the database.
func (a *app) Close() error {
	var errs []error
	if a.cfg.MetricsFile != "" {
		if err := a.metrics.WriteTextfile(a.cfg.MetricsFile); err != nil {
			errs = append(errs, fmt.Errorf("failed to write metrics: %w", err))
		}
	}
	if err := a.db.Close(); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}

// alertFilter converts the configured alert defaults to a filter.
func alertFilter(cfg *config.Config) (model.AlertFilter, error) {
	filter := model.AlertFilter{MinConfidence: cfg.AlertMinConfidence}
	for _, s := range cfg.AlertLevels {
		level, err := model.ParseRiskLevel(s)
		if err != nil {
			return filter, err
		}
		if level != model.RiskLevelNone {
			filter.Levels = append(filter.Levels, level)
		}
	}
	return filter, nil
}

// openOutput returns the report destination: the file at path, or the
// command's standard output when path is empty.
func openOutput(cmd *cobra.Command, path string) (io.Writer, func() error, error) {
	if path == "" {
		return cmd.OutOrStdout(), func() error { return nil }, nil
	}

	dir := filepath.Dir(path)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0750); err != nil {
			return nil, nil, fmt.Errorf("failed to create output directory: %w", err)
		}
	}

	// Reports quote analyzed content, so only the owner may read them
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0600) //nolint:gosec // User-provided output path is intentional
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create output file: %w", err)
	}
	return f, f.Close, nil
}

// newReportWriter selects the writer for the configured format.
func newReportWriter(cfg *config.Config, output io.Writer) report.Writer {
	switch {
	case cfg.JSONReport:
		return report.NewFullJSONWriter(output, getVersion(), report.WithPrettyPrint())
	case cfg.MarkdownReport:
		return report.NewMarkdownWriter(output)
	default:
		return report.NewSimpleWriter(output, report.WithVerbose(cfg.Verbose))
	}
}
