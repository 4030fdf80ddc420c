// Package config loads client and server configuration from a YAML file,
// GYMKEEPER_* environment variables and defaults.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/iudanet/gymkeeper/internal/client/storage/s3doc"
)

// EnvPrefix префикс переменных окружения: GYMKEEPER_SERVER_URL и т.п.
const EnvPrefix = "GYMKEEPER"

// Remote media.
const (
	MediumHTTP   = "http"
	MediumMongo  = "mongo"
	MediumS3     = "s3"
	MediumMemory = "memory"
)

// Log настраивает slog.
type Log struct {
	Level  string `mapstructure:"level"`  // debug, info, warn, error
	Format string `mapstructure:"format"` // text или json
}

// Endpoint describes the gymkeeper server as seen by the client.
type Endpoint struct {
	URL     string        `mapstructure:"url"`
	Timeout time.Duration `mapstructure:"timeout"`
}

// Mongo describes the MongoDB remote medium.
type Mongo struct {
	URI        string `mapstructure:"uri"`
	Database   string `mapstructure:"database"`
	Collection string `mapstructure:"collection"`
}

// Remote настраивает удаленное хранилище.
type Remote struct {
	S3           s3doc.Config  `mapstructure:"s3"`
	Mongo        Mongo         `mapstructure:"mongo"`
	Medium       string        `mapstructure:"medium"`
	PollInterval time.Duration `mapstructure:"poll_interval"`
	Concurrency  int           `mapstructure:"flush_concurrency"`
	StartOffline bool          `mapstructure:"start_offline"`
}

// Sync настраивает координаторы синхронизации.
type Sync struct {
	Debounce time.Duration `mapstructure:"debounce"`
	Timeout  time.Duration `mapstructure:"timeout"`
}

// Client is the CLI configuration.
type Client struct {
	Log           Log      `mapstructure:"log"`
	Server        Endpoint `mapstructure:"server"`
	Remote        Remote   `mapstructure:"remote"`
	Sync          Sync     `mapstructure:"sync"`
	DBPath        string   `mapstructure:"db_path"`
	Storage       string   `mapstructure:"storage"` // local или remote
	Catalog       string   `mapstructure:"catalog"` // пусто - встроенный каталог
	MaxValueBytes int      `mapstructure:"max_value_bytes"`
}

// JWT настраивает выпуск access токенов.
type JWT struct {
	Secret     string        `mapstructure:"secret"`
	Expiration time.Duration `mapstructure:"expiration"`
}

// RateLimit ограничивает частоту запросов с одного адреса.
type RateLimit struct {
	Requests int           `mapstructure:"requests"`
	Window   time.Duration `mapstructure:"window"`
}

// Server is the document server configuration.
type Server struct {
	Log              Log           `mapstructure:"log"`
	JWT              JWT           `mapstructure:"jwt"`
	Address          string        `mapstructure:"address"`
	DBPath           string        `mapstructure:"db_path"`
	RateLimit        RateLimit     `mapstructure:"rate_limit"`
	AuthRateLimit    RateLimit     `mapstructure:"auth_rate_limit"`
	MaxDocumentBytes int64         `mapstructure:"max_document_bytes"`
	ShutdownTimeout  time.Duration `mapstructure:"shutdown_timeout"`
}

// DefaultDataDir returns ~/.gymkeeper or the working directory when the
// home directory is unknown.
func DefaultDataDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".gymkeeper"
	}
	return filepath.Join(home, ".gymkeeper")
}

func newViper(file string, flags *pflag.FlagSet) (*viper.Viper, error) {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	// server.url -> GYMKEEPER_SERVER_URL
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if flags != nil {
		if err := v.BindPFlags(flags); err != nil {
			return nil, fmt.Errorf("failed to bind flags: %w", err)
		}
	}

	if file != "" {
		v.SetConfigFile(file)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config %s: %w", file, err)
		}
		return v, nil
	}

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath(DefaultDataDir())
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}
	return v, nil
}

// LoadClient reads the client configuration. An empty file searches
// ./config.yaml and ~/.gymkeeper/config.yaml; a missing file is not an
// error. Flags are bound by their names (e.g. "server.url").
func LoadClient(file string, flags *pflag.FlagSet) (*Client, error) {
	v, err := newViper(file, flags)
	if err != nil {
		return nil, err
	}

	v.SetDefault("log.level", "warn")
	v.SetDefault("log.format", "text")
	v.SetDefault("server.url", "http://localhost:8080")
	v.SetDefault("server.timeout", "30s")
	v.SetDefault("db_path", filepath.Join(DefaultDataDir(), "gymkeeper.db"))
	v.SetDefault("storage", "local")
	v.SetDefault("remote.medium", MediumHTTP)
	v.SetDefault("remote.poll_interval", "5s")
	v.SetDefault("remote.flush_concurrency", 4)
	v.SetDefault("remote.mongo.uri", "mongodb://localhost:27017")
	v.SetDefault("remote.mongo.database", "gymkeeper")
	v.SetDefault("remote.mongo.collection", "documents")
	v.SetDefault("remote.s3.region", "us-east-1")
	v.SetDefault("remote.s3.bucket", "gymkeeper")
	v.SetDefault("sync.debounce", "2s")
	v.SetDefault("sync.timeout", "15s")

	var cfg Client
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Client) validate() error {
	switch c.Storage {
	case "local", "remote":
	default:
		return fmt.Errorf("unknown storage %q: want local or remote", c.Storage)
	}
	switch c.Remote.Medium {
	case MediumHTTP, MediumMongo, MediumS3, MediumMemory:
	default:
		return fmt.Errorf("unknown remote medium %q", c.Remote.Medium)
	}
	if c.DBPath == "" {
		return errors.New("db_path is required")
	}
	return nil
}

// LoadServer reads the server configuration the same way as LoadClient.
func LoadServer(file string, flags *pflag.FlagSet) (*Server, error) {
	v, err := newViper(file, flags)
	if err != nil {
		return nil, err
	}

	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")
	v.SetDefault("address", ":8080")
	v.SetDefault("db_path", "gymkeeper-server.db")
	v.SetDefault("jwt.expiration", "24h")
	v.SetDefault("rate_limit.requests", 100)
	v.SetDefault("rate_limit.window", "1m")
	v.SetDefault("auth_rate_limit.requests", 10)
	v.SetDefault("auth_rate_limit.window", "1m")
	v.SetDefault("max_document_bytes", 5*1024*1024)
	v.SetDefault("shutdown_timeout", "10s")

	var cfg Server
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}
	if len(cfg.JWT.Secret) < 32 {
		return nil, errors.New("jwt.secret must be at least 32 characters")
	}
	if cfg.JWT.Expiration <= 0 {
		return nil, errors.New("jwt.expiration must be positive")
	}
	return &cfg, nil
}
