package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/donaldgifford/car-deal-finder/internal/api"
	"github.com/donaldgifford/car-deal-finder/internal/engine"
	"github.com/donaldgifford/car-deal-finder/internal/telemetry"
	"github.com/donaldgifford/car-deal-finder/pkg/logger"
)

const shutdownTimeout = 10 * time.Second

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the API server and scheduler",
	RunE:  runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func runServe(_ *cobra.Command, _ []string) error {
	cfg, log, err := loadConfig()
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	tp, err := telemetry.Setup(ctx, cfg.Telemetry, log)
	if err != nil {
		return fmt.Errorf("setting up telemetry: %w", err)
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := tp.Shutdown(shutdownCtx); err != nil {
			log.Warn("telemetry shutdown", "error", err)
		}
	}()

	st, err := openStore(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer st.Close()

	eng, err := newEngine(cfg, st, log,
		engine.WithTracer(tp.Tracer()),
		engine.WithMeter(tp.Meter()),
	)
	if err != nil {
		return err
	}

	sched, err := engine.NewScheduler(eng,
		cfg.Schedule.RescoreInterval,
		cfg.Schedule.CleanupInterval,
		cfg.Schedule.CleanupMaxAge,
		logger.Component(log, "scheduler"),
	)
	if err != nil {
		return fmt.Errorf("creating scheduler: %w", err)
	}
	sched.Start()
	defer func() { <-sched.Stop().Done() }()

	// Scores may be stale from a previous deploy with different weights.
	go func() {
		if _, err := eng.RunRescore(ctx); err != nil && ctx.Err() == nil {
			log.Error("startup scoring pass failed", "error", err)
		}
	}()

	e := api.NewRouter(api.Deps{
		Store:      st,
		Engine:     eng,
		SearchTerm: cfg.Search.Term(),
		TopN:       cfg.Scoring.TopN,
		Version:    Version,
		Logger:     logger.Component(log, "http"),
		Tracer:     tp.Tracer(),
	})
	e.Server.ReadTimeout = cfg.Server.ReadTimeout
	e.Server.WriteTimeout = cfg.Server.WriteTimeout

	addr := cfg.Server.Addr()
	log.Info("starting server", "addr", addr, "version", Version)

	errCh := make(chan error, 1)
	go func() {
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("server error: %w", err)
		}
	case <-ctx.Done():
	}

	log.Info("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := e.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutting down server: %w", err)
	}

	log.Info("server stopped")
	return nil
}
