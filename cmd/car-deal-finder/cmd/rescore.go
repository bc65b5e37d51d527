package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
)

var cleanupMaxAge time.Duration

var rescoreCmd = &cobra.Command{
	Use:   "rescore",
	Short: "Run one scoring pass over the database and exit",
	RunE:  runRescore,
}

var cleanupCmd = &cobra.Command{
	Use:   "cleanup",
	Short: "Delete stale listings, rescore the rest and exit",
	RunE:  runCleanup,
}

func init() {
	cleanupCmd.Flags().DurationVar(&cleanupMaxAge, "max-age", 0,
		"delete listings not fetched within this duration (default from config)")
	rootCmd.AddCommand(rescoreCmd, cleanupCmd)
}

func runRescore(cmd *cobra.Command, _ []string) error {
	cfg, log, err := loadConfig()
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	st, err := openStore(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer st.Close()

	eng, err := newEngine(cfg, st, log)
	if err != nil {
		return err
	}

	n, err := eng.RunRescore(ctx)
	if err != nil {
		return fmt.Errorf("scoring pass: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Scored %d listings.\n", n)
	return nil
}

func runCleanup(cmd *cobra.Command, _ []string) error {
	cfg, log, err := loadConfig()
	if err != nil {
		return err
	}

	maxAge := cleanupMaxAge
	if maxAge == 0 {
		maxAge = cfg.Schedule.CleanupMaxAge
	}
	if maxAge <= 0 {
		return fmt.Errorf("max age must be positive (got %s)", maxAge)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	st, err := openStore(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer st.Close()

	eng, err := newEngine(cfg, st, log)
	if err != nil {
		return err
	}

	res, err := eng.Cleanup(ctx, maxAge)
	if err != nil {
		return fmt.Errorf("cleanup: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Deleted %d stale listings, rescored %d.\n", res.Deleted, res.Scored)
	return nil
}
