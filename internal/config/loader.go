package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Load reads configs/config.yaml (or configFile when set), then .env and
// the environment. SERVER_ADDRESS overrides server.address and so on.
func Load(configFile string) (*Config, error) {
	loadEnvFile()

	v := viper.New()
	setDefaults(v)

	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath("./configs")
		v.AddConfigPath(".")
	}

	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) || configFile != "" {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	cfg.Cache.Backend = strings.ToLower(strings.TrimSpace(cfg.Cache.Backend))
	cfg.Logging.Level = strings.ToLower(cfg.Logging.Level)

	if err := validateConfig(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return &cfg, nil
}

// loadEnvFile loads .env when present. Variables already set win.
func loadEnvFile() {
	for _, path := range []string{".env", "../.env"} {
		if _, err := os.Stat(path); err == nil {
			_ = godotenv.Load(path)
			return
		}
	}
}

// setDefaults registers every key so AutomaticEnv can override it.
func setDefaults(v *viper.Viper) {
	v.SetDefault("server.address", ":8080")
	v.SetDefault("server.read_timeout", 10*time.Second)
	v.SetDefault("server.shutdown_timeout", 10*time.Second)

	v.SetDefault("storage.sqlite_path", "./data/redflags.db")
	v.SetDefault("storage.flush_delay", 500*time.Millisecond)
	v.SetDefault("storage.import_path", "")

	v.SetDefault("catalog.path", "")

	v.SetDefault("cache.backend", CacheLRU)
	v.SetDefault("cache.size", 1024)
	v.SetDefault("cache.ttl", 10*time.Minute)

	v.SetDefault("redis.address", "localhost:6379")
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)

	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "json")

	v.SetDefault("share.base_url", "http://localhost:8080/")
}

func validateConfig(cfg *Config) error {
	if cfg.Server.Address == "" {
		return errors.New("server.address is required")
	}
	if cfg.Storage.SQLitePath == "" {
		return errors.New("storage.sqlite_path is required")
	}
	if cfg.Storage.FlushDelay < 0 {
		return errors.New("storage.flush_delay must not be negative")
	}
	switch cfg.Cache.Backend {
	case CacheLRU:
		if cfg.Cache.Size <= 0 {
			return errors.New("cache.size must be positive for the lru backend")
		}
	case CacheRedis:
		if cfg.Redis.Address == "" {
			return errors.New("redis.address is required for the redis backend")
		}
	case CacheNone:
	default:
		return fmt.Errorf("cache.backend %q is not one of lru, redis, none", cfg.Cache.Backend)
	}
	switch cfg.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level %q is not supported", cfg.Logging.Level)
	}
	return nil
}
