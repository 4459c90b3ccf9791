package main

import (
	"context"
	"database/sql"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/rs/zerolog"

	"appointment-booking-api/internal/auth"
	"appointment-booking-api/internal/config"
	"appointment-booking-api/internal/handler"
	"appointment-booking-api/internal/middleware"
	"appointment-booking-api/internal/service"
	"appointment-booking-api/internal/store"
	"appointment-booking-api/migrations"
)

func main() {
	log := zerolog.New(os.Stdout).With().Timestamp().Str("service", "appointment-booking-api").Logger()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("config")
	}

	ctx := context.Background()

	// migrations run over database/sql; queries go through the pgx pool
	migrateDB, err := sql.Open("pgx", cfg.DatabaseURL)
	if err != nil {
		log.Fatal().Err(err).Msg("open db for migrations")
	}
	if err := migrations.Migrate(migrateDB); err != nil {
		log.Fatal().Err(err).Msg("migrate")
	}
	_ = migrateDB.Close()

	pool, err := pgxpool.New(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Fatal().Err(err).Msg("db")
	}
	defer pool.Close()
	if err := pool.Ping(ctx); err != nil {
		log.Fatal().Err(err).Msg("db ping")
	}
	log.Info().Msg("connected to postgres")

	st := store.New(pool)
	issuer := auth.NewIssuer(cfg.JWTSecret, cfg.TokenTTL)
	h := handler.New(
		service.NewAuthService(st),
		service.NewAppointmentService(st),
		issuer,
		st,
		middleware.NewRateLimiter(cfg.AuthRateLimit, cfg.AuthRateBurst),
		log,
	)

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: h.Routes(),
	}
	go func() {
		log.Info().Str("port", cfg.Port).Msg("http listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error().Err(err).Msg("http")
		}
	}()

	// graceful shutdown
	ch := make(chan os.Signal, 1)
	signal.Notify(ch, syscall.SIGINT, syscall.SIGTERM)
	<-ch
	log.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("shutdown")
	}
}
