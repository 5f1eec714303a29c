package main

import (
	"context"
	"errors"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/binhbb2204/Translation-Hub/internal/events"
	"github.com/binhbb2204/Translation-Hub/internal/rating"
	"github.com/binhbb2204/Translation-Hub/pkg/config"
	"github.com/binhbb2204/Translation-Hub/pkg/database"
	"github.com/binhbb2204/Translation-Hub/pkg/logger"
	"github.com/gin-gonic/gin"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logger.Error("invalid_configuration", "error", err.Error())
		os.Exit(1)
	}

	logger.Init(logger.LogLevel(cfg.LogLevel), cfg.JSONLogs(), os.Stdout)
	log := logger.GetLogger().WithContext("component", "api_server")
	log.Info("starting_api_server", "version", "1.0.0", "addr", cfg.Addr())

	if err := database.InitDatabase(cfg.DBPath); err != nil {
		log.Error("failed_to_initialize_database", "error", err.Error(), "path", cfg.DBPath)
		os.Exit(1)
	}
	defer database.Close()

	if !cfg.Debug {
		gin.SetMode(gin.ReleaseMode)
	}

	broker := events.NewBroker(30 * time.Second)
	window := time.Duration(cfg.StatsWindow) * 24 * time.Hour
	service := rating.NewService(rating.NewDBRepository(database.DB), window)

	// Open /events streams only end when their request context does.
	baseCtx, cancelStreams := context.WithCancel(context.Background())
	srv := &http.Server{
		Addr: cfg.Addr(),
		Handler: newRouter(routerDeps{
			ratings:        service,
			broker:         broker,
			allowedOrigins: cfg.AllowedOrigins(),
		}),
		ReadHeaderTimeout: 10 * time.Second,
		BaseContext:       func(net.Listener) context.Context { return baseCtx },
	}
	srv.RegisterOnShutdown(cancelStreams)

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("failed_to_start_api_server", "error", err.Error())
			os.Exit(1)
		}
	}()
	log.Info("api_server_listening", "addr", cfg.Addr(), "stats_window_days", cfg.StatsWindow)

	sig := <-stop
	log.Info("shutdown_signal_received", "signal", sig.String())

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Warn("shutdown_timeout_forcing_stop", "error", err.Error())
	} else {
		log.Info("graceful_shutdown_complete")
	}
}
