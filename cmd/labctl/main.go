package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"lab-dashboard/internal/adapters/cli"
	"lab-dashboard/internal/adapters/repl"
	"lab-dashboard/internal/app"
	"lab-dashboard/internal/config"
	"lab-dashboard/internal/core"
	"lab-dashboard/internal/platform/logger"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "labctl:", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	// Logs go to stderr and only matter when debugging page lookups.
	log := logger.Nop()
	if os.Getenv("LABCTL_DEBUG") != "" {
		if log, err = logger.New(cfg.LogMode); err != nil {
			return err
		}
		defer log.Sync()
	}

	snap, err := core.LoadSnapshot(cfg.SeedFile)
	if err != nil {
		return fmt.Errorf("load seed: %w", err)
	}
	svc := app.NewAppService(snap, app.Options{Delay: cfg.LookupDelay, Timeout: cfg.LookupTimeout}, log)

	root := cli.NewRootCommand(svc)
	root.AddCommand(&cobra.Command{
		Use:   "repl",
		Short: "Open pages interactively; each entity keeps one live page machine",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return repl.Run(cmd.Context(), svc, cmd.InOrStdin(), cmd.OutOrStdout(), cli.StylesFor(cmd))
		},
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return root.ExecuteContext(ctx)
}
