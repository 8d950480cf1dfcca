package main

import (
	"context"
	"crypto/rand"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/2bndy5/mk-pass/internal/config"
	"github.com/2bndy5/mk-pass/internal/crypto"
	"github.com/2bndy5/mk-pass/internal/handler"
	"github.com/2bndy5/mk-pass/internal/middleware"
	"github.com/2bndy5/mk-pass/internal/repository"
	"github.com/2bndy5/mk-pass/internal/service"
	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	genService := service.NewGeneratorService(rand.Reader, service.Limits{
		MaxLength: cfg.MaxLength,
		MaxCount:  cfg.MaxCount,
	})
	genHandler := handler.NewGeneratorHandler(genService)

	// One limiter shared by every throttled route; its cleanup stops on shutdown.
	limiterCtx, stopLimiter := context.WithCancel(context.Background())
	defer stopLimiter()
	rateLimit := middleware.RateLimit(limiterCtx, cfg.RateLimitRPS, cfg.RateLimitBurst)

	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(middleware.Logger)
	r.Use(chimw.Recoverer)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})
	r.Handle("/metrics", promhttp.Handler())

	r.Post("/api/v1/validate", genHandler.HandleValidate)
	r.Group(func(r chi.Router) {
		r.Use(rateLimit)
		r.Post("/api/v1/generate", genHandler.HandleGenerate)
	})

	// Accounts and profiles are only mounted when the database answers.
	db, err := repository.NewDB(cfg.DatabaseDSN)
	if err != nil {
		slog.Warn("database unavailable, account and profile routes disabled", "error", err)
	} else {
		defer db.Close()

		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		if err := repository.Migrate(ctx, db); err != nil {
			slog.Warn("schema migration failed", "error", err)
		}
		cancel()

		tokens := crypto.NewTokenIssuer(cfg.JWTSecret, cfg.JWTExpiry)

		authService := service.NewAuthService(repository.NewAccountRepository(db), tokens)
		authHandler := handler.NewAuthHandler(authService)

		profileService := service.NewProfileService(repository.NewProfileRepository(db), genService)
		profileHandler := handler.NewProfileHandler(profileService)

		r.Group(func(r chi.Router) {
			r.Use(rateLimit)
			r.Post("/api/v1/auth/register", authHandler.HandleRegister)
			r.Post("/api/v1/auth/login", authHandler.HandleLogin)
		})

		r.Group(func(r chi.Router) {
			r.Use(middleware.JWTAuth(tokens))
			r.Get("/api/v1/auth/me", authHandler.HandleMe)

			r.Get("/api/v1/profiles", profileHandler.HandleListProfiles)
			r.Post("/api/v1/profiles", profileHandler.HandleCreateProfile)
			r.Put("/api/v1/profiles/{profile_id}", profileHandler.HandleUpdateProfile)
			r.Delete("/api/v1/profiles/{profile_id}", profileHandler.HandleDeleteProfile)
			r.With(rateLimit).Post("/api/v1/profiles/{profile_id}/generate", profileHandler.HandleGenerate)
		})
	}

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		slog.Info("server starting", "port", cfg.Port, "env", cfg.Env)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("shutting down server")
	stopLimiter()
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("server forced shutdown", "error", err)
		os.Exit(1)
	}

	slog.Info("server stopped")
}
