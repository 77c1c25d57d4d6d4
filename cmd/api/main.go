// @title           Bible Lookup API
// @version         1.0
// @description     Verse, chapter and book lookups over embedded and custom Bible translations

// @contact.name   API Support
// @contact.email  shuvoedward@gmail.com

// @host      localhost:4000
// @BasePath  /

package main

import (
	"context"
	"database/sql"
	"flag"
	"log/slog"
	"os"
	"sync"
	"time"

	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"shuvoedward/Bible_lookup/internal/bible"
	"shuvoedward/Bible_lookup/internal/cache"
	"shuvoedward/Bible_lookup/internal/config"
	"shuvoedward/Bible_lookup/internal/data"
	"shuvoedward/Bible_lookup/internal/logger"
	"shuvoedward/Bible_lookup/internal/metrics"
	"shuvoedward/Bible_lookup/internal/ratelimit"
	"shuvoedward/Bible_lookup/internal/service"
)

var (
	version = "1.0.0"
)

type application struct {
	config        *config.Config
	logger        *slog.Logger
	redis         *cache.RedisClient
	models        *data.Models
	services      *service.Service
	metrics       *metrics.Metrics
	registry      *prometheus.Registry
	ipRateLimiter *ratelimit.RateLimiter
	sources       map[string]bible.Source // custom and stored translations
	wg            sync.WaitGroup
}

func main() {
	var (
		configPath string
		port       int
		env        string
		dsn        string
		redisHost  string
	)

	flag.StringVar(&configPath, "config", "", "Path to a YAML config file")
	flag.IntVar(&port, "port", 0, "API server port (overrides config)")
	flag.StringVar(&env, "env", "", "Environment (development|staging|production)")
	flag.StringVar(&dsn, "db-dsn", "", "PostgreSQL DSN for stored translations")
	flag.StringVar(&redisHost, "redis-host", "", "Redis host for the passage cache")

	flag.Parse()

	cfg, err := config.Load(configPath)
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}
	if port != 0 {
		cfg.Server.Port = port
	}
	if env != "" {
		cfg.Server.Env = env
	}
	if dsn != "" {
		cfg.Postgres.DSN = dsn
	}
	if redisHost != "" {
		cfg.Redis.Host = redisHost
	}

	log := logger.Setup(cfg.Logging.Level, cfg.Logging.Format).With("version", version)

	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	app := &application{
		config:   cfg,
		logger:   log,
		metrics:  metrics.New(registry),
		registry: registry,
	}

	if cfg.Postgres.DSN != "" {
		db, err := openDB(cfg.Postgres)
		if err != nil {
			log.Error("failed to connect to database", "error", err)
			os.Exit(1)
		}
		defer db.Close()
		log.Info("Successful connection to database")

		if err := data.Migrate(db); err != nil {
			log.Error("failed to run migrations", "error", err)
			os.Exit(1)
		}

		models := data.NewModels(db)
		app.models = &models
	}

	// A nil *RedisClient must not reach the service as a non-nil Cache.
	var passageCache service.Cache
	if cfg.Redis.Host != "" {
		redisClient, err := cache.NewRedisClient(cache.RedisConfig{
			Host:     cfg.Redis.Host,
			Port:     cfg.Redis.Port,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
			PoolSize: cfg.Redis.PoolSize,
		}, cfg.Redis.CacheTTL)
		if err != nil {
			log.Error("failed to connect to redis", "error", err)
			os.Exit(1)
		}
		defer redisClient.Close()
		log.Info("Successful connection to redis")

		app.redis = redisClient
		passageCache = redisClient
	}

	app.services = service.NewServices(log, passageCache, app.metrics)

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	err = app.loadTranslations(ctx)
	cancel()
	if err != nil {
		log.Error("failed to load translations", "error", err)
		os.Exit(1)
	}

	if cfg.RateLimit.Enabled {
		app.ipRateLimiter = ratelimit.NewRateLimiter(cfg.RateLimit.Requests, cfg.RateLimit.Window)
		defer app.ipRateLimiter.Stop()
	}

	handlers := NewHandlers(app, app.services)

	err = app.serve(handlers)
	if err != nil {
		log.Error(err.Error())
		os.Exit(1)
	}
}

func openDB(cfg config.PostgresConfig) (*sql.DB, error) {
	db, err := sql.Open("postgres", cfg.DSN)
	if err != nil {
		return nil, err
	}

	db.SetMaxOpenConns(cfg.MaxOpenConns)
	db.SetMaxIdleConns(cfg.MaxIdleConns)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	err = db.PingContext(ctx)
	if err != nil {
		db.Close()
		return nil, err
	}

	return db, nil
}
