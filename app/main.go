package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/jessevdk/go-flags"
	"github.com/lysyi3m/text-comb/app/cfg"
	"github.com/lysyi3m/text-comb/app/links"
	"github.com/lysyi3m/text-comb/app/menu"
	"github.com/lysyi3m/text-comb/app/ops"
	"github.com/lysyi3m/text-comb/app/report"
	"github.com/lysyi3m/text-comb/app/workspace"
)

const (
	exitFailure     = 1
	exitInterrupted = 130
)

// errOperationFailed marks failures already shown to the user.
var errOperationFailed = errors.New("operation failed")

func main() {
	appCfg, err := cfg.Load()
	if err != nil {
		// go-flags prints its own parse errors
		var flagsErr *flags.Error
		if !errors.As(err, &flagsErr) {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		os.Exit(exitFailure)
	}
	if appCfg == nil {
		// Help was shown
		return
	}

	setupLogging(appCfg.Debug)
	slog.Debug("Configuration loaded", "version", appCfg.Version, "dir", appCfg.WorkDir, "command", string(appCfg.Command))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Run in a goroutine so an interrupt is honoured while blocked on input
	errChan := make(chan error, 1)
	go func() {
		errChan <- run(ctx)
	}()

	select {
	case <-ctx.Done():
		interrupted()
	case err := <-errChan:
		if ctx.Err() != nil {
			interrupted()
		}
		if errors.Is(err, errOperationFailed) {
			os.Exit(exitFailure)
		}
		if err != nil {
			slog.Error("Unexpected failure", "error", err)
			fmt.Fprintf(os.Stderr, "\nAn unexpected error occurred: %v\n", err)
			os.Exit(exitFailure)
		}
	}
}

func interrupted() {
	fmt.Fprintln(os.Stderr, "\n\nProgram interrupted by user. Exiting...")
	os.Exit(exitInterrupted)
}

func setupLogging(debug bool) {
	level := slog.LevelWarn
	if debug {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
}

func run(ctx context.Context) error {
	appCfg := cfg.Get()
	ws := workspace.New(appCfg.WorkDir)
	reporter := newReporter(ws, appCfg.ReportPath)
	color := !appCfg.NoColor

	var (
		summary *ops.Summary
		err     error
	)
	switch appCfg.Command {
	case cfg.CommandExtract:
		summary, err = ops.Extract(ws, appCfg.File, links.NewFilter(appCfg.Include, appCfg.Exclude))
	case cfg.CommandDivide:
		summary, err = ops.Divide(ws, appCfg.File, appCfg.Parts, appCfg.OutputDir)
	case cfg.CommandJoin:
		summary, err = ops.Join(ws, appCfg.Files)
	default:
		return menu.New(os.Stdin, os.Stdout, ws, reporter, appCfg.OutputDir, color).Run(ctx)
	}

	if err := menu.NewPrinter(os.Stdout, color).Outcome(summary, err); err != nil {
		return fmt.Errorf("%w: %w", errOperationFailed, err)
	}
	if summary == nil {
		return nil
	}
	return reporter.Append(summary)
}

// newReporter resolves a relative report path against the working directory.
func newReporter(ws *workspace.Workspace, path string) *report.Writer {
	if path == "" {
		return report.NewWriter("")
	}
	return report.NewWriter(ws.Path(path))
}
