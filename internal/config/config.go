// Package config loads the service configuration from an optional YAML file
// with BIBLE_* environment overrides.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Server       ServerConfig       `yaml:"server"`
	Postgres     PostgresConfig     `yaml:"postgres"`
	Redis        RedisConfig        `yaml:"redis"`
	RateLimit    RateLimitConfig    `yaml:"rateLimit"`
	Logging      LoggingConfig      `yaml:"logging"`
	Translations TranslationsConfig `yaml:"translations"`
}

type ServerConfig struct {
	Port            int           `yaml:"port"`
	Env             string        `yaml:"env"`
	ReadTimeout     time.Duration `yaml:"readTimeout"`
	WriteTimeout    time.Duration `yaml:"writeTimeout"`
	IdleTimeout     time.Duration `yaml:"idleTimeout"`
	ShutdownTimeout time.Duration `yaml:"shutdownTimeout"`
}

// PostgresConfig is optional. An empty DSN disables stored translations.
type PostgresConfig struct {
	DSN          string `yaml:"dsn"`
	MaxOpenConns int    `yaml:"maxOpenConns"`
	MaxIdleConns int    `yaml:"maxIdleConns"`
}

// RedisConfig is optional. An empty Host disables the passage cache.
type RedisConfig struct {
	Host     string        `yaml:"host"`
	Port     string        `yaml:"port"`
	Password string        `yaml:"password"`
	DB       int           `yaml:"db"`
	PoolSize int           `yaml:"poolSize"`
	CacheTTL time.Duration `yaml:"cacheTTL"`
}

type RateLimitConfig struct {
	Enabled  bool          `yaml:"enabled"`
	Requests int           `yaml:"requests"`
	Window   time.Duration `yaml:"window"`
}

type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// TranslationsConfig selects which translations the service loads in
// addition to the embedded ones.
type TranslationsConfig struct {
	Default        string              `yaml:"default"`
	S3Region       string              `yaml:"s3Region"`
	Custom         []CustomTranslation `yaml:"custom"`
	Stored         []string            `yaml:"stored"`
	ReloadInterval time.Duration       `yaml:"reloadInterval"` // 0 disables
}

// CustomTranslation is a user supplied corpus. Path is a local file or an
// s3://bucket/key URI.
type CustomTranslation struct {
	ID   string `yaml:"id"`
	Name string `yaml:"name"`
	Path string `yaml:"path"`
}

// Load reads the YAML file at path, if any, over the defaults and then
// applies environment overrides.
func Load(path string) (*Config, error) {
	cfg := defaultConfig()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config file %s: %w", path, err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file %s: %w", path, err)
		}
	}
	applyEnvOverrides(cfg)

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func defaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Port:            4000,
			Env:             "development",
			ReadTimeout:     5 * time.Second,
			WriteTimeout:    10 * time.Second,
			IdleTimeout:     time.Minute,
			ShutdownTimeout: 30 * time.Second,
		},
		Postgres: PostgresConfig{
			MaxOpenConns: 25,
			MaxIdleConns: 5,
		},
		Redis: RedisConfig{
			Port:     "6379",
			PoolSize: 10,
			CacheTTL: 24 * time.Hour,
		},
		RateLimit: RateLimitConfig{
			Enabled:  true,
			Requests: 30,
			Window:   time.Second,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "text",
		},
	}
}

func (c *Config) validate() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port must be between 1 and 65535, got %d", c.Server.Port)
	}
	if c.RateLimit.Enabled && (c.RateLimit.Requests < 1 || c.RateLimit.Window <= 0) {
		return fmt.Errorf("rateLimit needs positive requests and window")
	}
	if c.Translations.ReloadInterval < 0 {
		return fmt.Errorf("translations.reloadInterval must not be negative")
	}
	seen := make(map[string]bool)
	for _, ct := range c.Translations.Custom {
		if ct.ID == "" || ct.Path == "" {
			return fmt.Errorf("custom translation needs an id and a path")
		}
		if seen[ct.ID] {
			return fmt.Errorf("duplicate custom translation id %q", ct.ID)
		}
		seen[ct.ID] = true
	}
	return nil
}

func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("BIBLE_SERVER_PORT"); v != "" {
		if port, err := strconv.Atoi(v); err == nil {
			cfg.Server.Port = port
		}
	}
	if v := os.Getenv("BIBLE_ENV"); v != "" {
		cfg.Server.Env = v
	}
	if v := os.Getenv("BIBLE_DB_DSN"); v != "" {
		cfg.Postgres.DSN = v
	}
	if v := os.Getenv("BIBLE_REDIS_HOST"); v != "" {
		cfg.Redis.Host = v
	}
	if v := os.Getenv("BIBLE_REDIS_PORT"); v != "" {
		cfg.Redis.Port = v
	}
	if v := os.Getenv("BIBLE_REDIS_PASSWORD"); v != "" {
		cfg.Redis.Password = v
	}
	if v := os.Getenv("BIBLE_RATE_LIMIT"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.RateLimit.Requests = n
			cfg.RateLimit.Enabled = n > 0
		}
	}
	if v := os.Getenv("BIBLE_LOGGING_LEVEL"); v != "" {
		cfg.Logging.Level = v
	}
	if v := os.Getenv("BIBLE_LOGGING_FORMAT"); v != "" {
		cfg.Logging.Format = v
	}
	if v := os.Getenv("BIBLE_TRANSLATION"); v != "" {
		cfg.Translations.Default = v
	}
	if v := os.Getenv("BIBLE_S3_REGION"); v != "" {
		cfg.Translations.S3Region = v
	}
}
