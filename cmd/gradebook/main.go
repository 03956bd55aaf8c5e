package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"runtime/debug"
	"syscall"

	"fyne.io/fyne/v2/app"
	"github.com/spf13/cobra"

	gradebook "github.com/shhac/gradebook/internal/app"
	apperrors "github.com/shhac/gradebook/internal/errors"
	"github.com/shhac/gradebook/internal/ui"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		printError(os.Stderr, err)
		os.Exit(1)
	}
}

// newRootCmd builds the gradebook command tree. With no subcommand it runs
// the desktop app, or only the document bridge when GRADEBOOK_HEADLESS is set.
func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "gradebook",
		Short: "Keep grade data in a local document",
		Long: `Gradebook stores its grade data in grade_data.json under the per-user
application data directory.

Run without a subcommand to open the window. The location, load, save and
describe subcommands talk to a running instance over its document bridge.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runApp()
		},
	}
	root.AddCommand(newClientCmds()...)
	return root
}

// runApp is the main application entry point with panic recovery.
func runApp() (err error) {
	// Bootstrap logger until the file logger is up
	tempLogger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))

	defer func() {
		if r := recover(); r != nil {
			tempLogger.Error("panic recovered",
				slog.Any("panic", r),
				slog.String("stack", string(debug.Stack())),
			)
			err = fmt.Errorf("panic: %v", r)
		}
	}()

	cfg := gradebook.ConfigFromEnv()
	tempLogger.Info("starting Gradebook", slog.Bool("headless", cfg.Headless))

	if cfg.Headless {
		return runHeadless(cfg)
	}

	fyneApp := app.NewWithID(gradebook.AppID)

	a, err := gradebook.New(fyneApp, cfg)
	if err != nil {
		return fmt.Errorf("failed to initialize application: %w", err)
	}

	mainWindow := ui.NewMainWindow(fyneApp, a)
	a.Run(mainWindow.Window())
	return nil
}

func runHeadless(cfg *gradebook.Config) error {
	a, err := gradebook.New(nil, cfg)
	if err != nil {
		return fmt.Errorf("failed to initialize application: %w", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	addr, _ := a.Status().BridgeAddress.Get()
	fmt.Fprintf(os.Stdout, "document bridge listening on %s\n", addr)

	a.Serve(ctx)
	return nil
}

// printError writes err the way the window would show it: title, message,
// suggested recovery steps and details.
func printError(w io.Writer, err error) {
	uiErr := apperrors.ClassifyGRPCError(err)
	if uiErr == nil {
		return
	}
	fmt.Fprintf(w, "%s\n\n%s\n", uiErr.Title, uiErr.Body())
}
