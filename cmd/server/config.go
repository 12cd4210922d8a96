package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/spf13/cobra"

	"github.com/laasilva/dracolich-library-api-sub000/internal/errors"
	"github.com/laasilva/dracolich-library-api-sub000/internal/redis"
	"github.com/laasilva/dracolich-library-api-sub000/internal/repositories/documents"
)

const (
	storeRedis  = "redis"
	storeSQLite = "sqlite"
)

// Config is the process configuration. Environment variables are read
// first and flags that were set on the command line override them.
type Config struct {
	Port          int      `env:"DRACOLICH_PORT" envDefault:"50051"`
	MetricsPort   int      `env:"DRACOLICH_METRICS_PORT" envDefault:"9090"`
	Store         string   `env:"DRACOLICH_STORE" envDefault:"redis"`
	RedisAddr     string   `env:"DRACOLICH_REDIS_ADDR" envDefault:"localhost:6379"`
	RedisCluster  []string `env:"DRACOLICH_REDIS_CLUSTER_ADDRS" envSeparator:","`
	RedisPassword string   `env:"DRACOLICH_REDIS_PASSWORD"`
	RedisTLS      bool     `env:"DRACOLICH_REDIS_TLS"`
	SQLitePath    string   `env:"DRACOLICH_SQLITE_PATH" envDefault:"dracolich.db"`
	Seed          bool     `env:"DRACOLICH_SEED" envDefault:"true"`
	RepairPartial bool     `env:"DRACOLICH_REPAIR_PARTIAL"`
	BatchChildren bool     `env:"DRACOLICH_BATCH_CHILDREN"`
	LogLevel      string   `env:"DRACOLICH_LOG_LEVEL" envDefault:"info"`
	LogFormat     string   `env:"DRACOLICH_LOG_FORMAT" envDefault:"text"`
	SRDBaseURL    string   `env:"DRACOLICH_SRD_BASE_URL"`
}

// Validate checks the values that have a fixed set of choices
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	switch c.Store {
	case storeRedis, storeSQLite:
	default:
		vb.Field("store", fmt.Sprintf("must be %q or %q", storeRedis, storeSQLite))
	}
	if c.Store == storeSQLite && c.SQLitePath == "" {
		vb.RequiredField("sqlite-path")
	}
	if c.Store == storeRedis && c.RedisAddr == "" && len(c.RedisCluster) == 0 {
		vb.RequiredField("redis-addr")
	}
	if c.Port <= 0 || c.Port > 65535 {
		vb.Field("port", "must be between 1 and 65535")
	}
	if c.MetricsPort < 0 || c.MetricsPort > 65535 {
		vb.Field("metrics-port", "must be between 0 and 65535")
	}
	if _, err := parseLevel(c.LogLevel); err != nil {
		vb.Field("log-level", err.Error())
	}
	if c.LogFormat != "text" && c.LogFormat != "json" {
		vb.Field("log-format", `must be "text" or "json"`)
	}

	return vb.Build()
}

// loadConfig reads the environment then applies the flags cmd was given
func loadConfig(cmd *cobra.Command) (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "failed to parse environment")
	}
	if err := applyFlags(cmd, cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func applyFlags(cmd *cobra.Command, cfg *Config) error {
	fs := cmd.Flags()
	changed := func(name string) bool {
		f := fs.Lookup(name)
		return f != nil && f.Changed
	}

	var err error
	setInt := func(name string, dst *int) {
		if err == nil && changed(name) {
			*dst, err = fs.GetInt(name)
		}
	}
	setString := func(name string, dst *string) {
		if err == nil && changed(name) {
			*dst, err = fs.GetString(name)
		}
	}
	setBool := func(name string, dst *bool) {
		if err == nil && changed(name) {
			*dst, err = fs.GetBool(name)
		}
	}

	setInt("port", &cfg.Port)
	setInt("metrics-port", &cfg.MetricsPort)
	setString("store", &cfg.Store)
	setString("redis-addr", &cfg.RedisAddr)
	setString("sqlite-path", &cfg.SQLitePath)
	setBool("seed", &cfg.Seed)
	setBool("repair-partial", &cfg.RepairPartial)
	setBool("batch-children", &cfg.BatchChildren)
	setString("log-level", &cfg.LogLevel)
	setString("log-format", &cfg.LogFormat)
	setString("srd-url", &cfg.SRDBaseURL)

	if err != nil {
		return errors.WrapWithCode(err, errors.CodeInvalidArgument, "failed to read flags")
	}
	return nil
}

func parseLevel(s string) (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.TrimSpace(s))); err != nil {
		return level, fmt.Errorf("unknown level %q", s)
	}
	return level, nil
}

// newLogger builds the process logger from the log settings
func newLogger(w io.Writer, cfg *Config) (*slog.Logger, error) {
	level, err := parseLevel(cfg.LogLevel)
	if err != nil {
		return nil, errors.InvalidArgument(err.Error())
	}

	opts := &slog.HandlerOptions{Level: level}
	if cfg.LogFormat == "json" {
		return slog.New(slog.NewJSONHandler(w, opts)), nil
	}
	return slog.New(slog.NewTextHandler(w, opts)), nil
}

// openStore connects the configured document store and checks it answers
func openStore(ctx context.Context, cfg *Config) (documents.Repository, func(), error) {
	switch cfg.Store {
	case storeSQLite:
		db, err := documents.OpenSQLite(ctx, cfg.SQLitePath)
		if err != nil {
			return nil, nil, err
		}
		closeDB := func() { _ = db.Close() }

		repo, err := documents.NewSQLite(&documents.SQLiteConfig{DB: db})
		if err != nil {
			closeDB()
			return nil, nil, err
		}
		return pinged(ctx, repo, closeDB)

	default:
		client, err := newRedisClient(cfg)
		if err != nil {
			return nil, nil, err
		}
		closeClient := func() { _ = client.Close() }

		repo, err := documents.NewRedis(&documents.RedisConfig{Client: client})
		if err != nil {
			closeClient()
			return nil, nil, err
		}
		return pinged(ctx, repo, closeClient)
	}
}

func newRedisClient(cfg *Config) (redis.Client, error) {
	opts := &redis.Options{
		Password: cfg.RedisPassword,
		UseTLS:   cfg.RedisTLS,
	}
	if len(cfg.RedisCluster) > 0 {
		return redis.NewClusterClient(cfg.RedisCluster, opts)
	}
	return redis.NewClient(cfg.RedisAddr, opts)
}

func pinged(ctx context.Context, repo documents.Repository, closeFn func()) (documents.Repository, func(), error) {
	if err := repo.Ping(ctx); err != nil {
		closeFn()
		return nil, nil, err
	}
	return repo, closeFn, nil
}
