package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/five82/glide/internal/app"
	"github.com/five82/glide/internal/config"
)

func main() {
	os.Exit(run())
}

func run() int {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "glide: %v\n", err)
		return 1
	}
	return 0
}

func newRootCmd() *cobra.Command {
	var opts app.Options

	cmd := &cobra.Command{
		Use:           "glide [deck]",
		Short:         "Page through a slide deck in the terminal",
		Long:          "glide shows a TOML, YAML or Markdown deck as a draggable carousel.\nThe deck may be a local path, reloaded on save, or an http(s) URL, polled.",
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 1 {
				opts.Deck = args[0]
			}
			return app.Run(cmd.Context(), opts)
		},
	}

	cmd.PersistentFlags().StringVar(&opts.ConfigPath, "config", "", "override config path (optional)")
	cmd.Flags().StringVar(&opts.PrefsPath, "prefs", "", "override prefs path (optional)")
	cmd.Flags().IntVar(&opts.PollEvery, "poll", 0, "refresh interval in seconds for remote decks (optional)")
	cmd.Flags().BoolVar(&opts.ShowWarnings, "warnings", false, "log slider configuration warnings")

	cmd.AddCommand(newValidateCmd(&opts.ConfigPath))
	return cmd
}

func newValidateCmd(configPath *string) *cobra.Command {
	var width float64

	cmd := &cobra.Command{
		Use:   "validate <deck>",
		Short: "Load a deck and report how it mounts without starting the UI",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(*configPath)
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}
			logger := slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: slog.LevelWarn}))

			sum, err := app.Inspect(cmd.Context(), config.ResolveDeck(args[0]), cfg.Slider, width, logger)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s: %d slides, %d dots, %d track positions\n", sum.Title, sum.Slides, sum.Dots, sum.Pages)
			bp := "none"
			if sum.Breakpoint >= 0 {
				bp = fmt.Sprint(sum.Breakpoint)
			}
			fmt.Fprintf(out, "width %.0f: slide width %.0f, breakpoint %s, infinite %t\n", width, sum.SlideWidth, bp, sum.Infinite)
			return nil
		},
	}
	cmd.Flags().Float64Var(&width, "width", 80, "viewport width in cells")
	return cmd
}
