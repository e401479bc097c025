package cli

import (
	"context"
	"log/slog"
	"os"

	"github.com/aretw0/holdfast"
	"github.com/aretw0/holdfast/internal/logging"
	"github.com/aretw0/holdfast/internal/presentation/tui"
	"golang.org/x/term"
)

// RunOptions configures a CLI run.
type RunOptions struct {
	// Names selects a subset of scenarios; empty means the full catalog.
	Names []string
	// Plain disables the banner and markdown rendering.
	Plain bool
	// Verbose enables debug logging on stderr.
	Verbose bool
}

// Run executes scenarios with terminal presentation when stdout is
// interactive.
func Run(ctx context.Context, opts RunOptions) error {
	level := slog.LevelWarn
	if opts.Verbose {
		level = slog.LevelDebug
	}
	logger := logging.New(level)

	engineOpts := []holdfast.Option{
		holdfast.WithLogger(logger),
	}

	interactive := term.IsTerminal(int(os.Stdout.Fd()))
	if interactive && !opts.Plain {
		tui.PrintBanner()
		engineOpts = append(engineOpts, holdfast.WithRenderer(tui.NewRenderer()))
	}

	eng := holdfast.New(engineOpts...)
	return eng.Run(ctx, opts.Names...)
}
