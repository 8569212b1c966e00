package config

import (
	"context"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"

	"github.com/dewatanation/admin-panel/internal/pkg/env"
)

type Config struct {
	Host     string `env:"APP_HOST, default=0.0.0.0"`
	Port     string `env:"APP_PORT, default=3000"`
	Env      string `env:"APP_ENV, default=prod"`
	LogLevel string `env:"LOG_LEVEL, default=info"`

	Database DatabaseConfig
	Cache    CacheConfig
	Session  SessionConfig
	Security SecurityConfig
}

type DatabaseConfig struct {
	Host     string `env:"DB_HOST, default=127.0.0.1"`
	Port     string `env:"DB_PORT, default=3306"`
	User     string `env:"DB_USER"`
	Password string `env:"DB_PASSWORD"`
	Name     string `env:"DB_NAME"`
}

type CacheConfig struct {
	// Host empty means sessions are kept in process memory.
	Host     string `env:"CACHE_HOST"`
	Port     string `env:"CACHE_PORT, default=6379"`
	Password string `env:"CACHE_PASSWORD"`
}

type SessionConfig struct {
	TTL          time.Duration `env:"SESSION_TTL, default=24h"`
	CookieSecure bool          `env:"SESSION_COOKIE_SECURE, default=false"`
}

type SecurityConfig struct {
	AdminKeyMode    string `env:"ADMIN_KEY_MODE, default=plain"`
	APIRateLimit    int    `env:"API_RATE_LIMIT, default=120"`
	MonitorUser     string `env:"MONITOR_USER, default=admin"`
	MonitorPassword string `env:"MONITOR_PASSWORD"`
}

// Load reads configuration from the loaded .env map, then the process environment.
func Load() *Config {
	cfg, err := LoadFrom(context.Background(), envconfig.MultiLookuper(
		envconfig.MapLookuper(env.Env),
		envconfig.OsLookuper(),
	))
	if err != nil {
		panic(fmt.Sprintf("config: failed to load configuration: %v", err))
	}
	return cfg
}

func LoadFrom(ctx context.Context, lookuper envconfig.Lookuper) (*Config, error) {
	var cfg Config
	if err := envconfig.ProcessWith(ctx, &envconfig.Config{
		Target:   &cfg,
		Lookuper: lookuper,
	}); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) Addr() string {
	return fmt.Sprintf("%s:%s", c.Host, c.Port)
}

func (c *Config) IsDev() bool {
	return c.Env == "dev"
}
