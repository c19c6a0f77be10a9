package main

import (
	"context"
	"database/sql"
	"os/signal"
	"syscall"

	_ "github.com/go-sql-driver/mysql"
	"github.com/rs/zerolog/log"

	"property_listing/internal/adapters/observability"
	redisad "property_listing/internal/adapters/redis"
	"property_listing/internal/adapters/upstream"
	"property_listing/internal/app"
	"property_listing/internal/domain"
	"property_listing/internal/shared"
	mysqlrepo "property_listing/internal/storage/mysql"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	cfg := shared.Load()

	// 1) initialize global logger (console in dev, JSON otherwise)
	log.Logger = observability.NewLogger(cfg.AppEnv)

	log.Info().
		Str("base", cfg.UpstreamURL).
		Int("workers", cfg.Workers).
		Msg("ingestor starting")

	db, err := sql.Open("mysql", cfg.MySQLDSN)
	if err != nil {
		log.Fatal().Err(err).Msg("sql.Open failed")
	}
	defer db.Close()
	if err := db.PingContext(ctx); err != nil {
		log.Fatal().Err(err).Msg("db.Ping failed")
	}
	log.Info().Msg("db ping ok")

	repo := mysqlrepo.New(db)

	client, err := upstream.New(cfg.UpstreamURL, cfg.UpstreamKey, cfg.UpstreamRPS)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize upstream client")
	}

	var cache domain.Cache
	if cfg.RedisAddr != "" {
		rc := redisad.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)
		defer rc.Close()
		cache = rc
	}

	ing := app.NewIngestionService(client, repo, cache, cfg.Workers)
	n, err := ing.SyncAll(ctx)
	if err != nil {
		log.Fatal().Err(err).Int("written", n).Msg("ingestion failed")
	}
	log.Info().Int("written", n).Msg("ingestion completed")
}
