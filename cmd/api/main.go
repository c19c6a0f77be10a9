package main

import (
	"context"
	"database/sql"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/go-sql-driver/mysql"
	"github.com/rs/zerolog/log"

	server "property_listing/internal/adapters/http_server"
	"property_listing/internal/adapters/observability"
	redisad "property_listing/internal/adapters/redis"
	"property_listing/internal/adapters/upstream"
	"property_listing/internal/adapters/web"
	"property_listing/internal/app"
	"property_listing/internal/domain"
	"property_listing/internal/shared"
	"property_listing/internal/storage/memory"
	mysqlrepo "property_listing/internal/storage/mysql"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg := shared.Load()

	// set global logger (console in dev, JSON otherwise)
	log.Logger = observability.NewLogger(cfg.AppEnv)

	reg := observability.InitRegistry()
	observability.Serve(cfg.MetricsAddr, reg)

	catalog, closeCatalog := openCatalog(cfg)
	defer closeCatalog()

	var cache domain.Cache = app.NopCache{}
	if cfg.RedisAddr != "" {
		rc := redisad.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)
		if err := rc.Ping(ctx); err != nil {
			// the listing still works uncached
			log.Warn().Err(err).Str("addr", cfg.RedisAddr).Msg("redis unreachable")
		}
		defer rc.Close()
		cache = rc
	}
	q := app.NewQueryService(catalog, cache, cfg.CacheTTL)

	page, err := web.NewRenderer()
	if err != nil {
		log.Fatal().Err(err).Msg("load page templates")
	}

	// http
	srv := server.New(cfg.CORSOrigins)
	srv.Mount("/metrics", observability.MetricsHandler(reg))
	srv.MountHandlers(&server.Handlers{Q: q, Page: page})

	httpSrv := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           srv.Mux(),
		ReadHeaderTimeout: 5 * time.Second,
	}
	go func() {
		log.Info().Str("addr", cfg.HTTPAddr).Str("catalog", cfg.Catalog).Msg("API listening")
		if err := httpSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("http server failed")
		}
	}()

	<-ctx.Done()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := httpSrv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("http shutdown failed")
	}
	log.Info().Msg("API stopped")
}

func openCatalog(cfg shared.Config) (domain.Catalog, func()) {
	switch cfg.Catalog {
	case shared.CatalogMySQL:
		db, err := sql.Open("mysql", cfg.MySQLDSN)
		if err != nil {
			log.Fatal().Err(err).Msg("sql.Open failed")
		}
		if err := db.Ping(); err != nil {
			log.Fatal().Err(err).Msg("db.Ping failed")
		}
		log.Info().Msg("database connection ok")
		return mysqlrepo.New(db), func() { _ = db.Close() }

	case shared.CatalogUpstream:
		client, err := upstream.New(cfg.UpstreamURL, cfg.UpstreamKey, cfg.UpstreamRPS)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to initialize upstream client")
		}
		return app.NewRemoteCatalog(client), func() {}
	}
	return memory.New(), func() {}
}
