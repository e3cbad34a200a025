package cmd

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/itsmostafa/mdtoc/internal/config"
	"github.com/itsmostafa/mdtoc/internal/output"
	"github.com/itsmostafa/mdtoc/internal/toc"
)

// runGenerate builds the table of contents for cfg.Input and writes it to
// cfg.Output, or to w when no output file is configured. Nothing is written
// when the input cannot be read. It returns the number of entries.
func runGenerate(cfg *config.Config, w io.Writer, logger *slog.Logger) (int, error) {
	opts := append(cfg.BuilderOptions(), toc.WithLogger(logger))
	builder := toc.NewBuilder(opts...)

	entries, err := builder.ReadFile(cfg.Input)
	if err != nil {
		return 0, err
	}

	content, err := render(cfg.Format, entries)
	if err != nil {
		return 0, err
	}

	if cfg.Output == "" {
		fmt.Fprintln(w, content)
		return len(entries), nil
	}

	if err := toc.WriteFile(cfg.Output, content); err != nil {
		return 0, err
	}
	logger.Debug("wrote table of contents", "path", cfg.Output, "entries", len(entries), "format", cfg.Format)
	output.FormatSaved(w, cfg.Output)
	return len(entries), nil
}

func render(format string, entries []toc.Entry) (string, error) {
	switch format {
	case config.FormatHTML:
		return toc.RenderHTML(entries)
	case config.FormatJSON:
		nodes := toc.Tree(entries)
		if nodes == nil {
			nodes = []*toc.Node{}
		}
		data, err := json.MarshalIndent(nodes, "", "  ")
		if err != nil {
			return "", fmt.Errorf("failed to encode json: %w", err)
		}
		return string(data), nil
	default:
		return toc.Render(entries), nil
	}
}

// reportError prints err in the form matching its kind.
func reportError(w io.Writer, err error) {
	var notFound *toc.SourceNotFoundError
	var writeErr *toc.OutputWriteError

	switch {
	case errors.As(err, &notFound):
		output.FormatSourceMissing(w, notFound)
	case errors.As(err, &writeErr):
		output.FormatWriteFailed(w, writeErr.Path, writeErr.Err)
	default:
		output.FormatError(w, err)
	}
}

func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: level,
	}))
}
