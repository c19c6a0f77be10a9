package shared

import (
	"strings"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
)

type Config struct {
	AppEnv      string
	HTTPAddr    string
	MetricsAddr string
	Catalog     string // memory|mysql|upstream
	MySQLDSN    string
	RedisAddr   string
	RedisDB     int
	RedisPass   string
	UpstreamURL string
	UpstreamKey string
	UpstreamRPS int
	Workers     int
	CacheTTL    time.Duration
	CORSOrigins []string
}

const (
	CatalogMemory   = "memory"
	CatalogMySQL    = "mysql"
	CatalogUpstream = "upstream"
)

// Load reads defaults, then an optional config.yaml (cwd or ./config),
// then environment variables.
func Load() Config {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	return load(v)
}

func load(v *viper.Viper) Config {
	v.SetDefault("app_env", "prod")
	v.SetDefault("http_addr", ":8080")
	v.SetDefault("metrics_addr", "")
	v.SetDefault("catalog", CatalogMemory)
	v.SetDefault("mysql_dsn", "root:root@tcp(localhost:3306)/listing?parseTime=true&charset=utf8mb4,utf8&loc=UTC")
	v.SetDefault("redis_addr", "")
	v.SetDefault("redis_password", "")
	v.SetDefault("redis_db", 0)
	v.SetDefault("upstream_base_url", "")
	v.SetDefault("upstream_api_key", "")
	v.SetDefault("upstream_rps", 5)
	v.SetDefault("ingest_workers", 8)
	v.SetDefault("cache_ttl_seconds", 900)
	v.SetDefault("cors_origins", "http://localhost:3000")
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			log.Warn().Err(err).Msg("config file unreadable, using defaults and env")
		}
	} else {
		log.Info().Str("file", v.ConfigFileUsed()).Msg("config file loaded")
	}

	c := Config{
		AppEnv:      v.GetString("app_env"),
		HTTPAddr:    v.GetString("http_addr"),
		MetricsAddr: v.GetString("metrics_addr"),
		Catalog:     strings.ToLower(v.GetString("catalog")),
		MySQLDSN:    v.GetString("mysql_dsn"),
		RedisAddr:   v.GetString("redis_addr"),
		RedisPass:   v.GetString("redis_password"),
		RedisDB:     v.GetInt("redis_db"),
		UpstreamURL: v.GetString("upstream_base_url"),
		UpstreamKey: v.GetString("upstream_api_key"),
		UpstreamRPS: v.GetInt("upstream_rps"),
		Workers:     v.GetInt("ingest_workers"),
		CacheTTL:    time.Duration(v.GetInt("cache_ttl_seconds")) * time.Second,
		CORSOrigins: splitList(v.GetString("cors_origins")),
	}
	switch c.Catalog {
	case CatalogMemory, CatalogMySQL, CatalogUpstream:
	default:
		log.Warn().Str("catalog", c.Catalog).Msg("unknown CATALOG, falling back to memory")
		c.Catalog = CatalogMemory
	}
	if c.Catalog == CatalogUpstream && c.UpstreamURL == "" {
		log.Warn().Msg("UPSTREAM_BASE_URL is empty")
	}
	return c
}

func splitList(s string) []string {
	var out []string
	for _, p := range strings.Split(s, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
