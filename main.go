package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
)

const banner = `
 _           _     _
| | ___  ___| |_  | |__   ___  __ _  ___ ___  _ __  ___
| |/ _ \/ __| __| | '_ \ / _ \/ _' |/ __/ _ \| '_ \/ __|
| | (_) \__ \ |_  | |_) |  __/ (_| | (_| (_) | | | \__ \
|_|\___/|___/\__| |_.__/ \___|\__,_|\___\___/|_| |_|___/

Autonomous Skirmish Tactics`

type globalFlags struct {
	logLevel string
	tuning   string
	debug    bool
}

func main() {
	var g globalFlags

	root := &cobra.Command{
		Use:           "lost-beacons",
		Short:         "Headless skirmish runner for autonomous beacon-capturing units",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			var level slog.Level
			if err := level.UnmarshalText([]byte(g.logLevel)); err != nil {
				return fmt.Errorf("log level %q: %w", g.logLevel, err)
			}
			logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
				Level: level,
			}))
			slog.SetDefault(logger)
			fmt.Fprintln(cmd.ErrOrStderr(), banner)
			return nil
		},
	}
	root.PersistentFlags().StringVar(&g.logLevel, "log-level", "info", "debug, info, warn or error")
	root.PersistentFlags().StringVar(&g.tuning, "tuning", "", "YAML tuning file (defaults when empty)")
	root.PersistentFlags().BoolVar(&g.debug, "debug", false, "enable controller debug overlay")

	root.AddCommand(runCmd(&g), batchCmd(&g), replayCmd())

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := root.ExecuteContext(ctx); err != nil {
		slog.Error("command failed", "error", err)
		os.Exit(1)
	}
}
