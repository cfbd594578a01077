package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/MalithSamaradiwakara/frontend/internal/config"
	"github.com/MalithSamaradiwakara/frontend/internal/database"
	"github.com/MalithSamaradiwakara/frontend/internal/gateway"
	"github.com/MalithSamaradiwakara/frontend/internal/logger"
	"github.com/MalithSamaradiwakara/frontend/internal/route"
	"github.com/MalithSamaradiwakara/frontend/internal/router"
	"github.com/MalithSamaradiwakara/frontend/internal/session"
	"github.com/MalithSamaradiwakara/frontend/internal/validator"
	"github.com/MalithSamaradiwakara/frontend/internal/view"
	"github.com/rs/zerolog"
)

func main() {
	// ─── Load Configuration ────────────────────────────────────────────
	cfg := config.Load()

	// ─── Initialize Logger ─────────────────────────────────────────────
	log := logger.Setup(cfg.LogLevel, cfg.LogFormat)
	log.Info().
		Str("port", cfg.ServerPort).
		Str("mode", cfg.GinMode).
		Str("backend", cfg.BackendBaseURL).
		Msg("Starting Brightway frontend")

	// ─── Initialize Validator ──────────────────────────────────────────
	validator.Setup()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// ─── Connect to Redis ──────────────────────────────────────────────
	rdb, err := database.NewRedisClient(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to Redis")
	}
	defer rdb.Close()

	// ─── Core Services ─────────────────────────────────────────────────
	backend := gateway.NewClient(cfg, log)
	store := session.NewStore(rdb, cfg.SessionTTL, log)
	codec := session.NewCookieCodec(cfg.SessionSecret, cfg.SessionTTL)

	// ─── Initialize View Handlers ──────────────────────────────────────
	handlers := &router.Handlers{
		Auth:       view.NewAuthHandler(backend, store, codec, log),
		Catalog:    view.NewCatalogHandler(backend),
		Profile:    view.NewProfileHandler(backend, log),
		Enrollment: view.NewEnrollmentHandler(backend, log),
		Quiz:       view.NewQuizHandler(backend, log),
		Assignment: view.NewAssignmentHandler(backend, log),
		Teacher:    view.NewTeacherHandler(backend, log),
		Admin:      view.NewAdminHandler(backend, log),
	}

	// ─── Setup Router ──────────────────────────────────────────────────
	r := router.SetupRouter(route.DefaultTable(), handlers, store, codec, cfg, "web/templates/*.html", log)

	// ─── Create HTTP Server ────────────────────────────────────────────
	srv := &http.Server{
		Addr:    ":" + cfg.ServerPort,
		Handler: r,
	}

	// ─── Start Server in Goroutine ─────────────────────────────────────
	go func() {
		log.Info().Str("addr", ":"+cfg.ServerPort).Msg("Server listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("Server error")
		}
	}()

	// ─── Graceful Shutdown ─────────────────────────────────────────────
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit

	log.Info().Str("signal", sig.String()).Msg("Shutting down gracefully...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("HTTP server shutdown error")
	}

	log.Info().Msg("Shutdown complete")
}

// init sets zerolog global defaults before main runs.
func init() {
	zerolog.TimeFieldFormat = time.RFC3339
}
