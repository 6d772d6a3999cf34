package main

import (
	"context"
	"errors"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/beaconlabs/beacon/internal/collector"
	"github.com/beaconlabs/beacon/pkg/config"
	"github.com/beaconlabs/beacon/pkg/logger"
)

func main() {
	configPath := flag.String("config", "", "optional YAML config file")
	flag.Parse()

	var cfg collector.Config
	if *configPath != "" {
		if err := config.LoadFile(*configPath, &cfg); err != nil {
			panic(err)
		}
	}
	config.MustLoad(&cfg)

	logOpt := logger.WithDevelopment("collector")
	if cfg.Environment == "production" {
		logOpt = logger.WithProduction("collector")
	}
	log := logger.New(logOpt)
	logger.SetAsDefault(log)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	var storage collector.Storage
	if cfg.DatabaseURL != "" {
		pg, err := collector.NewPostgresStorage(ctx, cfg.DatabaseURL, cfg.RetryAttempts, cfg.RetryInterval)
		if err != nil {
			log.ErrorContext(ctx, "database unavailable", logger.Error(err))
			os.Exit(1)
		}
		defer pg.Close()
		storage = pg
		log.InfoContext(ctx, "using postgres storage")
	} else {
		storage = collector.NewMemoryStorage()
		log.WarnContext(ctx, "no DATABASE_URL set, using in-memory storage")
	}

	srv := &http.Server{
		Addr:         cfg.Addr,
		Handler:      collector.NewServer(storage, log).Routes(),
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	go func() {
		log.InfoContext(ctx, "collector listening", "addr", cfg.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.ErrorContext(ctx, "listen failed", logger.Error(err))
			stop()
		}
	}()

	<-ctx.Done()
	log.InfoContext(context.Background(), "shutting down collector")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.ErrorContext(shutdownCtx, "shutdown incomplete", logger.Error(err))
	}
}
