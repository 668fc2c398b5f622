package main

import (
	"embed"
	"fmt"
	"os"
	"path/filepath"

	"github.com/nao1215/scamscan/internal/config"
	"github.com/spf13/cobra"
)

//go:embed templates/scamscan.yaml
var configTemplate embed.FS

// NewInitCmd creates the init command.
func NewInitCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Initialize a new scamscan configuration file",
		Long: `Initialize creates a new .scamscan configuration file in the current directory.

The generated file includes:
- Engine settings (lexicon, batch size, maximum text length, HTML stripping)
- Default alert threshold, risk levels and window
- Commented documentation for all available options

Examples:
  # Create .scamscan in current directory
  scamscan init

  # Create config file at a specific path
  scamscan init -o myconfig.yaml

  # Force overwrite existing file
  scamscan init -f`,
		RunE: runInitCmd,
	}

	cmd.Flags().StringP("output", "o", config.DefaultConfigFile,
		"Output file path for the configuration")
	cmd.Flags().BoolP("force", "f", false,
		"Overwrite existing configuration file")

	return cmd
}

// runInitCmd executes the init command.
func runInitCmd(cmd *cobra.Command, _ []string) error {
	outputPath, err := cmd.Flags().GetString("output")
	if err != nil {
		return err
	}

	force, err := cmd.Flags().GetBool("force")
	if err != nil {
		return err
	}

	if !force {
		if _, err := os.Stat(outputPath); err == nil {
			return fmt.Errorf("configuration file already exists: %s (use -f to overwrite)", outputPath)
		}
	}

	content, err := configTemplate.ReadFile("templates/scamscan.yaml")
	if err != nil {
		return fmt.Errorf("failed to read config template: %w", err)
	}

	dir := filepath.Dir(outputPath)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0750); err != nil {
			return fmt.Errorf("failed to create directory: %w", err)
		}
	}

	if err := os.WriteFile(outputPath, content, 0600); err != nil {
		return fmt.Errorf("failed to write configuration file: %w", err)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Created configuration file: %s\n", outputPath)
	fmt.Fprintln(out, "\nEdit this file to tune the analysis, for example:")
	fmt.Fprintln(out, "  - Point engine.lexicon at your own vocabulary")
	fmt.Fprintln(out, "  - Raise alerts.minConfidence to reduce noise")
	fmt.Fprintln(out, "  - Move the database with the database key")

	return nil
}
