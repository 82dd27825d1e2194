package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/Sathvikar01/Event-Management-System/internal/app"
	"github.com/Sathvikar01/Event-Management-System/internal/audit"
	"github.com/Sathvikar01/Event-Management-System/internal/clock"
	"github.com/Sathvikar01/Event-Management-System/internal/config"
	"github.com/Sathvikar01/Event-Management-System/internal/mirror"
	"github.com/Sathvikar01/Event-Management-System/internal/storage/postgres"
	transporthttp "github.com/Sathvikar01/Event-Management-System/internal/transport/http"
	"github.com/Sathvikar01/Event-Management-System/migrations"
)

const shutdownTimeout = 10 * time.Second

func main() {
	var cfgPath string

	root := &cobra.Command{
		Use:   "ems-api",
		Short: "Event management API server",
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cfgPath)
		},
		SilenceUsage: true,
	}
	root.PersistentFlags().StringVarP(&cfgPath, "config", "c", "", "path to config file")

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(cfgPath string) error {
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return errors.Wrap(err, "load config")
	}

	logger := newLogger(cfg)

	startupCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	poolCfg, err := pgxpool.ParseConfig(cfg.Database.DSN)
	if err != nil {
		return errors.Wrap(err, "parse database dsn")
	}
	if cfg.Database.MaxConns > 0 {
		poolCfg.MaxConns = cfg.Database.MaxConns
	}

	pool, err := pgxpool.NewWithConfig(startupCtx, poolCfg)
	if err != nil {
		return errors.Wrap(err, "connect to db")
	}
	defer pool.Close()

	if err := pool.Ping(startupCtx); err != nil {
		return errors.Wrap(err, "db ping")
	}
	if err := migrations.Apply(startupCtx, pool, logger); err != nil {
		return errors.Wrap(err, "apply migrations")
	}

	clk := clock.NewSystem()
	gateway := postgres.NewGateway(pool, logger)
	snapshots := postgres.NewSnapshotRepository(gateway)
	mutations := postgres.NewMutationRepository(gateway)
	procedures := postgres.NewProcedureRepository(gateway)

	replica := mirror.New(snapshots, logger)
	if err := replica.Reload(startupCtx); err != nil {
		logger.Warn().Err(err).Msg("initial replica load incomplete")
	}

	auditLog := audit.NewLog(snapshots, clk, logger)
	if err := auditLog.Load(startupCtx); err != nil {
		logger.Warn().Err(err).Msg("audit log rehydration failed")
	}

	facade := app.NewFacade(procedures, replica, logger)
	payments := app.NewPaymentService(procedures, replica, replica, clk, logger)
	mutator := app.NewMutator(mutations, replica, facade, replica, auditLog, logger)
	portal := app.NewPortalService(mutations, replica, replica, logger)

	handler := transporthttp.NewRouter(transporthttp.Services{
		Mutator:  mutator,
		Lookups:  facade,
		Payments: payments,
		Portal:   portal,
		Mirror:   replica,
		Audit:    auditLog,
	}, logger, cfg.Server.AllowedOrigins)

	server := &http.Server{
		Addr:    cfg.Server.Address,
		Handler: handler,
	}

	logger.Info().Str("addr", cfg.Server.Address).Msg("api listening")

	srvErr := make(chan error, 1)
	go func() {
		srvErr <- server.ListenAndServe()
	}()

	stopCtx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	select {
	case err := <-srvErr:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error().Err(err).Msg("server error")
		}
	case <-stopCtx.Done():
		logger.Info().Msg("shutdown signal received, stopping server")
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer shutdownCancel()
	if err := server.Shutdown(shutdownCtx); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Error().Err(err).Msg("server shutdown error")
	}
	logger.Info().Msg("server stopped")
	return nil
}

func newLogger(cfg config.Config) zerolog.Logger {
	level, err := zerolog.ParseLevel(cfg.Log.Level)
	if err != nil {
		level = zerolog.InfoLevel
	}

	var logger zerolog.Logger
	if cfg.Log.Format == "console" || cfg.IsDevelopment() {
		logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})
	} else {
		logger = zerolog.New(os.Stderr)
	}
	return logger.Level(level).With().Timestamp().Logger()
}
