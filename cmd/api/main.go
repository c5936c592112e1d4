package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/iamasit07/align4/internal/config"
	"github.com/iamasit07/align4/internal/service/cleanup"
	"github.com/iamasit07/align4/internal/service/game"
	transportHttp "github.com/iamasit07/align4/internal/transport/http"
	"github.com/iamasit07/align4/internal/transport/websocket"
	"github.com/iamasit07/align4/pkg/auth"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

func main() {
	envErr := godotenv.Load()
	if envErr != nil {
		envErr = godotenv.Load("../.env")
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("invalid configuration")
	}
	if err := config.SetupLogging(cfg.LogLevel, cfg.LogPretty); err != nil {
		log.Fatal().Err(err).Msg("invalid logging configuration")
	}
	if envErr != nil {
		log.Info().Msg("no .env file found")
	}
	if cfg.TableTokenSecret == "your-secret-key-change-this-in-production" {
		log.Warn().Msg("TABLE_TOKEN_SECRET is the default value; set it outside local development")
	}
	gin.SetMode(gin.ReleaseMode)

	// 1. Services
	tables, err := game.NewManager(cfg.Board.Dimensions(), cfg.MaxTables)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to create table manager")
	}
	tokens := auth.NewTokenIssuer(cfg.TableTokenSecret, cfg.TableTokenTTL)

	// 2. Background workers
	ctx, stop := context.WithCancel(context.Background())
	defer stop()
	cleanupWorker := cleanup.NewWorker(tables, cfg.TableIdleTimeout, cfg.CleanupInterval)
	go cleanupWorker.Start(ctx)

	// 3. Router
	wsHandler := websocket.NewHandler(tables, cfg.AllowedOrigins)
	router := transportHttp.NewRouter(transportHttp.RouterDeps{
		Tables:         tables,
		Tokens:         tokens,
		AllowedOrigins: cfg.AllowedOrigins,
		WebSocket:      wsHandler.HandleWebSocket,
		StaticDir:      cfg.StaticDir,
	})

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		d := cfg.Board.Dimensions()
		log.Info().Str("port", cfg.Port).Int("columns", d.Columns).Int("rows", d.Rows).
			Int("win_length", d.WinLength).Msg("server starting")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server error")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit
	log.Info().Msg("server is shutting down")
	stop()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatal().Err(err).Msg("server forced to shutdown")
	}

	log.Info().Msg("server exited gracefully")
}
