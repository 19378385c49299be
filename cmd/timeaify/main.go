package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/spf13/cobra"

	"timeaify/internal/bootstrap"
	"timeaify/internal/platform/config"
	"timeaify/internal/platform/notify"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var dataDir string

	root := &cobra.Command{
		Use:           "timeaify",
		Short:         "Focus sessions with an app and website block list",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&dataDir, "data-dir", defaultDataDir(), "directory for config.yaml, the database, logs, and exports")

	root.AddCommand(newTUICmd(&dataDir))
	root.AddCommand(newRunCmd(&dataDir))
	root.AddCommand(newBlockCmd(&dataDir))
	root.AddCommand(newOnboardingCmd(&dataDir))
	return root
}

func defaultDataDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".timeaify"
	}
	return filepath.Join(home, ".timeaify")
}

func loadApp(dataDir string, extra ...notify.Notifier) (*bootstrap.App, error) {
	cfg, err := config.New(dataDir)
	if err != nil {
		return nil, err
	}
	return bootstrap.New(cfg, extra...)
}

// printNotifier echoes notifications for commands that run without the TUI.
func printNotifier(w io.Writer) notify.Notifier {
	return notify.Func(func(_ notify.Kind, title, message string) {
		if message == "" {
			_, _ = fmt.Fprintf(w, "\n%s\n", title)
			return
		}
		_, _ = fmt.Fprintf(w, "\n%s: %s\n", title, message)
	})
}

func newTUICmd(dataDir *string) *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Run the timeaify terminal UI",
		RunE: func(_ *cobra.Command, _ []string) error {
			app, err := loadApp(*dataDir)
			if err != nil {
				return err
			}
			defer func() { _ = app.Close() }()

			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			app.ServeMetrics(ctx)
			return bootstrap.RunTUI(ctx, app)
		},
	}
}

func newRunCmd(dataDir *string) *cobra.Command {
	var duration string
	run := &cobra.Command{
		Use:   "run",
		Short: "Run one focus session in the foreground",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(*dataDir, printNotifier(cmd.OutOrStdout()))
			if err != nil {
				return err
			}
			defer func() { _ = app.Close() }()

			minutes := app.Config.Duration
			if strings.TrimSpace(duration) != "" {
				if err := app.FocusTUI.SetDurationText(duration); err != nil {
					return err
				}
				minutes = app.FocusTUI.Status().DurationMinutes
			}

			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			app.ServeMetrics(ctx)

			session, err := app.Runner(cmd.OutOrStdout()).Run(ctx, minutes)
			if err != nil {
				return err
			}
			state := "stopped early"
			if session.Completed {
				state = "completed"
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "session %s %s after %.1f minutes\n", session.ID, state, session.DurationMin)
			return nil
		},
	}
	run.Flags().StringVar(&duration, "duration", "", "session length in whole minutes (1-120); defaults to the configured duration")
	return run
}

func newBlockCmd(dataDir *string) *cobra.Command {
	block := &cobra.Command{Use: "block", Short: "Block list commands"}

	block.AddCommand(&cobra.Command{
		Use:   "classify <app or website>",
		Short: "Show which list an entry would be added to",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := loadApp(*dataDir)
			if err != nil {
				return err
			}
			defer func() { _ = app.Close() }()
			out, err := app.BlockListCLI.Classify(args[0])
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", out.Kind, out.Value)
			return nil
		},
	})

	block.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List the configured block list",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(*dataDir)
			if err != nil {
				return err
			}
			defer func() { _ = app.Close() }()
			lists, err := app.BlockListCLI.List(context.Background())
			if err != nil {
				return err
			}
			if len(lists.Apps) == 0 && len(lists.Websites) == 0 {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), "block list is empty")
				return nil
			}
			for _, a := range lists.Apps {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "app\t%s\n", a)
			}
			for _, w := range lists.Websites {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "website\t%s\n", w)
			}
			return nil
		},
	})
	return block
}

func newOnboardingCmd(dataDir *string) *cobra.Command {
	onboarding := &cobra.Command{Use: "onboarding", Short: "First-run walkthrough state"}

	onboarding.AddCommand(&cobra.Command{
		Use:   "status",
		Short: "Show whether the walkthrough was completed",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(*dataDir)
			if err != nil {
				return err
			}
			defer func() { _ = app.Close() }()
			status, err := app.OnboardingCLI.Status(context.Background())
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "complete: %t\n", status.Complete)
			for i, s := range status.Steps {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%d. %s\n", i+1, s.Title)
			}
			return nil
		},
	})

	onboarding.AddCommand(&cobra.Command{
		Use:   "reset",
		Short: "Show the walkthrough again on next launch",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(*dataDir)
			if err != nil {
				return err
			}
			defer func() { _ = app.Close() }()
			if err := app.OnboardingCLI.Reset(context.Background()); err != nil {
				return err
			}
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), "onboarding reset")
			return nil
		},
	})
	return onboarding
}
