package config

import "time"

// Config is the service configuration.
type Config struct {
	Server  ServerConfig  `mapstructure:"server"`
	Storage StorageConfig `mapstructure:"storage"`
	Catalog CatalogConfig `mapstructure:"catalog"`
	Cache   CacheConfig   `mapstructure:"cache"`
	Redis   RedisConfig   `mapstructure:"redis"`
	Logging LoggingConfig `mapstructure:"logging"`
	Share   ShareConfig   `mapstructure:"share"`
}

type ServerConfig struct {
	Address         string        `mapstructure:"address"`
	ReadTimeout     time.Duration `mapstructure:"read_timeout"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
}

type StorageConfig struct {
	SQLitePath string        `mapstructure:"sqlite_path"`
	FlushDelay time.Duration `mapstructure:"flush_delay"`
	// ImportPath is an export file merged into the store at startup.
	ImportPath string        `mapstructure:"import_path"`
}

type CatalogConfig struct {
	// Path to a JSON catalog; empty uses the built-in one.
	Path string `mapstructure:"path"`
}

// Cache backends.
const (
	CacheLRU   = "lru"
	CacheRedis = "redis"
	CacheNone  = "none"
)

type CacheConfig struct {
	Backend string        `mapstructure:"backend"`
	Size    int           `mapstructure:"size"`
	TTL     time.Duration `mapstructure:"ttl"`
}

type RedisConfig struct {
	Address  string `mapstructure:"address"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

type ShareConfig struct {
	BaseURL string `mapstructure:"base_url"`
}
