package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Vcvzgbzz/goodieBag/internal/config"
	"github.com/Vcvzgbzz/goodieBag/internal/cooldown"
	"github.com/Vcvzgbzz/goodieBag/internal/database"
	"github.com/Vcvzgbzz/goodieBag/internal/database/postgres"
	"github.com/Vcvzgbzz/goodieBag/internal/economy"
	"github.com/Vcvzgbzz/goodieBag/internal/handler"
	"github.com/Vcvzgbzz/goodieBag/internal/lootbox"
	"github.com/Vcvzgbzz/goodieBag/internal/server"
	"github.com/Vcvzgbzz/goodieBag/internal/slots"
)

const (
	dbMaxConns        = 10
	dbMaxConnIdleTime = 5 * time.Minute
	dbMaxConnLifetime = 30 * time.Minute

	shutdownTimeout = 10 * time.Second
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	initLogger(cfg)

	pool, err := database.NewPool(cfg.GetDBConnString(), dbMaxConns, dbMaxConnIdleTime, dbMaxConnLifetime)
	if err != nil {
		slog.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer pool.Close()

	store := postgres.NewStore(pool)
	guard := cooldown.NewGuard(cooldown.FreeBoxWindow, cfg.Admins)
	roller := lootbox.NewRoller()

	economyService := economy.NewService(store, guard, roller)
	slotsService := slots.NewService(store)

	h := handler.New(economyService, slotsService, guard)
	srv := server.NewServer(cfg.Port, cfg.TrustedProxies, pool, h)

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Start()
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		slog.Error("Server failed", "error", err)
		os.Exit(1)
	case sig := <-stop:
		slog.Info("Shutting down", "signal", sig.String())
	}

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Stop(ctx); err != nil {
		slog.Error("Graceful shutdown failed", "error", err)
		os.Exit(1)
	}
	slog.Info("Server stopped")
}
