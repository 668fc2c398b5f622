package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/nao1215/scamscan/internal/config"
	"github.com/nao1215/scamscan/internal/dataset"
	"github.com/nao1215/scamscan/internal/model"
	"github.com/spf13/cobra"
)

// NewAnalyzeCmd creates the analyze command.
func NewAnalyzeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "analyze [text...]",
		Short: "Score content for scam risk",
		Long: `Analyze scores job postings and social media posts for scam risk.

Content is given either inline as arguments (joined with spaces into one
item) or as a JSON or YAML dataset file with --file. Dataset records look
like:

  - id: job-1
    origin: job_posting
    job:
      title: Data entry clerk
      description: Work from home, pay the $50 registration fee to start
  - id: post-1
    origin: social_post
    platform: instagram
    text: Earn money online, link in bio
    engagement: {likes: 500, followers: 800}

Job postings get a scam verdict; social posts get a risk level (low,
medium, high, critical). Items that cannot be analyzed are reported as
failed without stopping the rest. Results are saved to the database for
the trends and alerts commands unless --no-save is given.

Examples:
  # Score a job posting text
  scamscan analyze "no experience needed, pay the training fee via gift card"

  # Score a social post with engagement counters
  scamscan analyze --origin social --platform x --likes 900 --followers 1000 "dm me to double your crypto"

  # Score a dataset and write a Markdown report
  scamscan analyze --file posts.yaml --markdown -o report.md`,
		Args: cobra.ArbitraryArgs,
		RunE: runAnalyzeCmd,
	}

	cmd.Flags().StringP("file", "f", "",
		"JSON or YAML dataset of content records")
	cmd.Flags().String("origin", string(model.OriginJobPosting),
		"Origin of inline text: job_posting (job) or social_post (social)")
	cmd.Flags().String("platform", "",
		"Social platform of inline text (twitter, instagram, telegram, ...)")
	cmd.Flags().Int("likes", 0, "Like count of an inline social post")
	cmd.Flags().Int("followers", 0, "Follower count of the author of an inline social post")
	cmd.Flags().Bool("strip-html", false, "Remove HTML markup before analysis")
	cmd.Flags().IntP("batch", "b", config.DefaultBatchSize, "Number of concurrent analyses")
	cmd.Flags().Bool("no-save", false, "Do not store results in the database")
	addReportFlags(cmd)

	return cmd
}

// runAnalyzeCmd executes the analyze command.
func runAnalyzeCmd(cmd *cobra.Command, args []string) error {
	cfg, err := buildConfig(cmd)
	if err != nil {
		return err
	}
	if err := readReportFlags(cmd, cfg); err != nil {
		return err
	}
	if cmd.Flags().Changed("batch") {
		if cfg.BatchSize, err = cmd.Flags().GetInt("batch"); err != nil {
			return err
		}
	}
	if cmd.Flags().Changed("strip-html") {
		if cfg.StripHTML, err = cmd.Flags().GetBool("strip-html"); err != nil {
			return err
		}
	}
	noSave, err := cmd.Flags().GetBool("no-save")
	if err != nil {
		return err
	}
	cfg.SaveToDB = !noSave

	file, err := cmd.Flags().GetString("file")
	if err != nil {
		return err
	}
	if file == "" && len(args) == 0 {
		return errors.New("no content provided (give text as arguments or a dataset with --file)")
	}
	if file != "" && len(args) > 0 {
		return errors.New("inline text and --file cannot be used together")
	}

	// Set up context with signal handling for graceful shutdown
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	a, err := newApp(ctx, cmd, cfg)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := a.Close(); cerr != nil {
			a.logger.Error("shutdown failed", "error", cerr)
		}
	}()

	var units []model.ContentUnit
	if file != "" {
		records, err := dataset.LoadRecords(file)
		if err != nil {
			return fmt.Errorf("failed to load dataset %s: %w", file, err)
		}
		units = dataset.Units(records, a.engine.Normalizer())
	} else {
		unit, err := inlineUnit(cmd, a, strings.Join(args, " "))
		if err != nil {
			return err
		}
		units = []model.ContentUnit{unit}
	}

	return runAnalyze(ctx, cmd, a, units)
}

// inlineUnit builds a content unit from command-line text and flags.
func inlineUnit(cmd *cobra.Command, a *app, text string) (model.ContentUnit, error) {
	originFlag, err := cmd.Flags().GetString("origin")
	if err != nil {
		return model.ContentUnit{}, err
	}
	origin, err := model.ParseOrigin(originFlag)
	if err != nil {
		return model.ContentUnit{}, err
	}

	n := a.engine.Normalizer()
	if origin == model.OriginJobPosting {
		return n.FromText("1", origin, text), nil
	}

	platform, err := cmd.Flags().GetString("platform")
	if err != nil {
		return model.ContentUnit{}, err
	}
	post := &model.SocialPost{
		Text:     &text,
		Platform: model.ParseSocialPlatform(platform),
	}

	// Counters the user did not give are missing, not zero
	var engagement model.Engagement
	for name, dst := range map[string]**int{"likes": &engagement.Likes, "followers": &engagement.Followers} {
		if !cmd.Flags().Changed(name) {
			continue
		}
		v, err := cmd.Flags().GetInt(name)
		if err != nil {
			return model.ContentUnit{}, err
		}
		if v < 0 {
			return model.ContentUnit{}, fmt.Errorf("--%s must not be negative", name)
		}
		*dst = &v
	}
	if engagement.Likes != nil || engagement.Followers != nil {
		post.Engagement = &engagement
	}

	return n.FromSocialPost("1", post), nil
}

// runAnalyze scores units, stores the results and writes the report.
func runAnalyze(ctx context.Context, cmd *cobra.Command, a *app, units []model.ContentUnit) error {
	a.logger.Info("starting analysis",
		"units", len(units),
		"batchSize", a.cfg.BatchSize,
		"model", a.engine.ModelID(),
	)

	start := time.Now()
	items, err := a.engine.BatchAnalyze(ctx, units)
	if err != nil {
		return fmt.Errorf("analysis interrupted: %w", err)
	}
	a.logger.Info("analysis complete", "units", len(units), "duration", time.Since(start))

	batch := model.NewBatchReport(items, a.engine.ModelID(), a.engine.Lexicon().Version, time.Now().UTC())

	if a.cfg.SaveToDB {
		if err := a.db.SaveResults(ctx, batch.Results); err != nil {
			a.logger.Error("failed to save results", "error", err)
		}
	}

	output, closeOutput, err := openOutput(cmd, a.cfg.ReportFile)
	if err != nil {
		return err
	}
	if _, err := newReportWriter(a.cfg, output).WriteBatch(batch); err != nil {
		_ = closeOutput() //nolint:errcheck // Write error takes precedence
		return fmt.Errorf("failed to write report: %w", err)
	}
	return closeOutput()
}
