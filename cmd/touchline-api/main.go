package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"touchline/internal/api"
	"touchline/internal/career"
	"touchline/internal/config"
	"touchline/internal/oracle"
	"touchline/internal/store"

	"github.com/joho/godotenv"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	_ = godotenv.Load()

	cfg, err := config.LoadAPIFromEnv()
	if err != nil {
		slog.Error("load config", "err", err)
		os.Exit(1)
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))

	snapshots, closeStore, err := store.Open(ctx, store.Options{
		Driver:        cfg.StoreDriver,
		DatabaseURL:   cfg.DatabaseURL,
		RedisAddr:     cfg.RedisAddr,
		RedisPassword: cfg.RedisPassword,
		RedisDB:       cfg.RedisDB,
		FilePath:      cfg.SaveFilePath,
	})
	if err != nil {
		logger.Error("open store failed", "driver", cfg.StoreDriver, "err", err)
		os.Exit(1)
	}
	defer closeStore()

	var matchOracle career.MatchOracle
	var market career.CandidateSource
	if cfg.OracleURL != "" {
		client := oracle.NewClient(cfg.OracleURL)
		matchOracle, market = client, client
		logger.Info("using remote oracle", "url", cfg.OracleURL)
	} else {
		sim := oracle.NewSimulator()
		matchOracle, market = sim, sim
		logger.Info("using built-in simulator")
	}

	engine := career.NewEngine(matchOracle, market, snapshots, logger,
		career.WithLineupRule(cfg.RequireFullLineup))
	engine.Restore(ctx)
	defer engine.Close()

	server := api.New(cfg, logger, engine)
	httpServer := &http.Server{
		Addr:              cfg.Addr,
		Handler:           server.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownGrace)
		defer cancel()
		_ = httpServer.Shutdown(shutdownCtx)
		if err := engine.Save(shutdownCtx); err != nil {
			logger.Error("final save failed", "err", err)
		}
	}()

	logger.Info("touchline api listening", "addr", cfg.Addr, "store", cfg.StoreDriver)
	if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Error("server failed", "err", err)
		os.Exit(1)
	}
}
