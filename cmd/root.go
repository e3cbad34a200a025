package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/itsmostafa/mdtoc/internal/config"
	"github.com/itsmostafa/mdtoc/internal/version"
	"github.com/spf13/cobra"
)

// newRootCmd builds the command tree. Flag values live on the returned
// commands, so every invocation starts from the defaults.
func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "mdtoc",
		Short: "Generate a table of contents for a Markdown file",
		Long: `mdtoc reads a Markdown file, collects its headings and writes a nested list
of links to their GitHub-style anchors.

The first "# " heading is treated as the document title and left out, as is
any heading that names an existing table of contents.

With no arguments it reads README.md and writes TOC.md.`,
		Args:          cobra.NoArgs,
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}

			logger := newLogger(cmd.ErrOrStderr(), cfg.Verbose)
			_, err = runGenerate(cfg, cmd.OutOrStdout(), logger)
			return err
		},
	}

	defaults := config.DefaultConfig()

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./.mdtoc.yaml or ~/.mdtoc.yaml)")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable debug logging")
	rootCmd.PersistentFlags().StringP("input", "i", defaults.Input, "Markdown file to read")
	rootCmd.PersistentFlags().StringP("output", "o", defaults.Output, "File to write the table of contents to")
	rootCmd.PersistentFlags().String("format", defaults.Format, "Output format (markdown, html, json)")
	rootCmd.PersistentFlags().Int("base-level", defaults.BaseLevel, "Heading level rendered without indentation")
	rootCmd.PersistentFlags().StringSlice("skip-keywords", defaults.SkipKeywords, "Headings containing these words are left out")
	rootCmd.PersistentFlags().Bool("stdout", false, "Print the table of contents instead of writing a file")

	rootCmd.Version = version.Version
	rootCmd.SetVersionTemplate(fmt.Sprintf("%s\n", version.String()))

	rootCmd.AddCommand(newWatchCmd())
	return rootCmd
}

// loadConfig merges the config file, environment and flags of cmd.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfgFile, err := cmd.Flags().GetString("config")
	if err != nil {
		return nil, err
	}
	toStdout, err := cmd.Flags().GetBool("stdout")
	if err != nil {
		return nil, err
	}

	cfg, err := config.Load(cfgFile, cmd.Flags())
	if err != nil {
		return nil, err
	}
	if toStdout {
		cfg.Output = ""
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// Execute runs the root command
func Execute() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := newRootCmd().ExecuteContext(ctx)
	cancel()

	if err != nil {
		reportError(os.Stderr, err)
		os.Exit(1)
	}
}
