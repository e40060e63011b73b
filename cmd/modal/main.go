// Package main is the entry point for the modal editor.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/dshills/modal/internal/app"
	"github.com/dshills/modal/internal/renderer/backend"
)

// Version information (set via ldflags during build).
var (
	version = "dev"
	commit  = "unknown"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run executes the command line and returns the process exit status.
// A quit from the editor and a termination signal both exit 0.
func run(args []string, stdout, stderr io.Writer) int {
	cmd := newRootCommand()
	cmd.SetArgs(args)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	err := cmd.ExecuteContext(context.Background())
	if err == nil || app.IsQuit(err) || errors.Is(err, context.Canceled) {
		return 0
	}
	fmt.Fprintf(stderr, "Error: %v\n", err)
	return 1
}

func newRootCommand() *cobra.Command {
	var (
		opts         app.Options
		pollInterval time.Duration
	)

	cmd := &cobra.Command{
		Use:   "modal",
		Short: "A minimal modal text editor for the terminal",
		Long: `modal edits an in-memory buffer in two modes.

Navigation: i enters Insertion, q quits, arrow keys move.
Insertion:  typed characters are inserted, Enter splits the line,
            Backspace deletes or joins lines, Esc returns to Navigation.

Nothing is read or written unless --config or --log-file is given.`,
		Version:       fmt.Sprintf("%s (commit %s)", version, commit),
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if cmd.Flags().Changed("poll-interval") {
				opts.PollInterval = &pollInterval
			}
			return runEditor(cmd.Context(), opts)
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&opts.ConfigPath, "config", "c", "", "path to a TOML configuration file")
	flags.StringVar(&opts.LogFile, "log-file", "", "write logs to this file")
	flags.StringVar(&opts.LogLevel, "log-level", "", "log level (debug, info, warn, error)")
	flags.DurationVar(&pollInterval, "poll-interval", 100*time.Millisecond, "longest wait for input between redraws")

	return cmd
}

func runEditor(ctx context.Context, opts app.Options) error {
	application, err := app.New(opts)
	if err != nil {
		return err
	}
	// Restores the terminal on every exit path, including errors from Run.
	defer application.Shutdown()

	term, err := backend.NewTerminal()
	if err != nil {
		return &app.InitError{Component: "terminal", Err: err}
	}
	if err := application.SetBackend(term); err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	return application.Run(ctx)
}
