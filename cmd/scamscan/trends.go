package main

import (
	"fmt"
	"time"

	"github.com/nao1215/scamscan/internal/config"
	"github.com/nao1215/scamscan/internal/model"
	"github.com/spf13/cobra"
)

// NewTrendsCmd creates the trends command.
func NewTrendsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "trends",
		Short: "Show the most frequent scam signals of recent results",
		Long: `Trends ranks the keywords and scam types found in stored results of a
time window, counts the results per risk level and lists the alerts of
the window.

Examples:
  # Last 24 hours (default)
  scamscan trends

  # Last week as Markdown
  scamscan trends --window 168h --markdown -o trends.md`,
		Args: cobra.NoArgs,
		RunE: runTrendsCmd,
	}

	cmd.Flags().DurationP("window", "w", config.DefaultTrendWindow,
		"Look-back window (0 means all stored results)")
	addReportFlags(cmd)

	return cmd
}

// NewAlertsCmd creates the alerts command.
func NewAlertsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "alerts",
		Short: "List stored results above a confidence threshold",
		Long: `Alerts lists the stored results of a time window whose confidence is
at least --min-confidence, highest first. --level restricts alerts to
social posts of the given risk levels.

Examples:
  scamscan alerts --min-confidence 0.8
  scamscan alerts --level high --level critical --window 72h --json`,
		Args: cobra.NoArgs,
		RunE: runAlertsCmd,
	}

	cmd.Flags().DurationP("window", "w", config.DefaultTrendWindow,
		"Look-back window (0 means all stored results)")
	cmd.Flags().Float64("min-confidence", config.DefaultAlertMinConfidence,
		"Inclusive confidence floor")
	cmd.Flags().StringSlice("level", nil,
		"Risk levels to include (low, medium, high, critical); repeatable")
	addReportFlags(cmd)

	return cmd
}

// runTrendsCmd executes the trends command.
func runTrendsCmd(cmd *cobra.Command, _ []string) error {
	cfg, err := windowConfig(cmd)
	if err != nil {
		return err
	}
	return runWindowReport(cmd, cfg, true)
}

// runAlertsCmd executes the alerts command.
func runAlertsCmd(cmd *cobra.Command, _ []string) error {
	cfg, err := windowConfig(cmd)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("min-confidence") {
		if cfg.AlertMinConfidence, err = cmd.Flags().GetFloat64("min-confidence"); err != nil {
			return err
		}
	}
	if cmd.Flags().Changed("level") {
		if cfg.AlertLevels, err = cmd.Flags().GetStringSlice("level"); err != nil {
			return err
		}
	}
	return runWindowReport(cmd, cfg, false)
}

// windowConfig builds the configuration shared by trends and alerts.
func windowConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := buildConfig(cmd)
	if err != nil {
		return nil, err
	}
	if err := readReportFlags(cmd, cfg); err != nil {
		return nil, err
	}
	if cmd.Flags().Changed("window") {
		if cfg.TrendWindow, err = cmd.Flags().GetDuration("window"); err != nil {
			return nil, err
		}
	}
	// Reading history never writes results
	cfg.SaveToDB = false
	return cfg, nil
}

// runWindowReport loads the results of the configured window and writes
// a trend report. Without withTrends only alerts are reported.
func runWindowReport(cmd *cobra.Command, cfg *config.Config, withTrends bool) error {
	filter, err := alertFilter(cfg)
	if err != nil {
		return err
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

	now := time.Now().UTC()
	var since time.Time
	if cfg.TrendWindow > 0 {
		since = now.Add(-cfg.TrendWindow)
	}
	results, err := a.db.ResultsSince(cmd.Context(), since)
	if err != nil {
		return err
	}
	filter.Since = since

	if stats, err := a.db.Stats(cmd.Context(), since); err == nil {
		a.logger.Info("window loaded",
			"since", since,
			"results", len(results),
			"degraded", stats.Degraded,
			"levels", stats.ByRiskLevel,
		)
	}

	tr := &model.TrendReport{
		GeneratedAt: now,
		Since:       since,
		Filter:      filter,
		Alerts:      a.engine.Alerts(results, filter),
	}
	if withTrends {
		tr.Trends = a.engine.Trends(results)
		tr.Levels = model.CountRiskLevels(results)
	}

	output, closeOutput, err := openOutput(cmd, cfg.ReportFile)
	if err != nil {
		return err
	}
	if _, err := newReportWriter(cfg, output).WriteTrends(tr); err != nil {
		_ = closeOutput() //nolint:errcheck // Write error takes precedence
		return fmt.Errorf("failed to write report: %w", err)
	}
	return closeOutput()
}
