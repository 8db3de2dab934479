package config

import (
	"context"
	"time"

	"github.com/joho/godotenv"
	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Env         string        `env:"APP_ENV, default=development"`
	Port        string        `env:"PORT, default=8080"`
	PostgresURL string        `env:"POSTGRES_URL"`
	JWTSecret   string        `env:"JWT_SECRET, default=change-me"`
	TokenTTL    time.Duration `env:"TOKEN_TTL, default=24h"`
	LogLevel    string        `env:"LOG_LEVEL, default=info"`
	CORSOrigins []string      `env:"CORS_ORIGINS, default=*"`

	// How long the dashboard aggregate may serve from cache.
	DashboardCacheTTL time.Duration `env:"DASHBOARD_CACHE_TTL, default=30s"`
}

// Load reads .env when present, then resolves the typed config from
// the environment.
func Load(ctx context.Context) (*Config, error) {
	_ = godotenv.Load()

	var cfg Config
	if err := envconfig.Process(ctx, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) IsProduction() bool {
	return c.Env == "production"
}
