package cmd

import (
	"context"
	"errors"

	"github.com/itsmostafa/mdtoc/internal/output"
	"github.com/itsmostafa/mdtoc/internal/watch"
	"github.com/spf13/cobra"
)

func newWatchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "watch",
		Short: "Regenerate the table of contents whenever the input changes",
		Long: `Generate the table of contents once, then again every time the input file
is saved. Runs until interrupted.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}

			stdout := cmd.OutOrStdout()
			stderr := cmd.ErrOrStderr()
			logger := newLogger(stderr, cfg.Verbose)

			dest := cfg.Output
			if dest == "" {
				dest = "stdout"
			}
			output.FormatWatching(stdout, cfg.Input, dest)

			// A missing input is reported but not fatal; it may appear later.
			if _, err := runGenerate(cfg, stdout, logger); err != nil {
				reportError(stderr, err)
			}

			w, err := watch.New(cfg.Input, cfg.Debounce, func() {
				entries, err := runGenerate(cfg, stdout, logger)
				if err != nil {
					reportError(stderr, err)
					return
				}
				logger.Info("regenerated table of contents", "input", cfg.Input, "entries", entries)
			}, logger)
			if err != nil {
				return err
			}
			defer w.Close()

			if err := w.Run(cmd.Context()); err != nil && !errors.Is(err, context.Canceled) {
				return err
			}
			return nil
		},
	}
}
