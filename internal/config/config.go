package config

import (
	"log/slog"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	Port            string        `envconfig:"PORT" default:"8080"`
	GinMode         string        `envconfig:"GIN_MODE" default:"release"`
	ShutdownTimeout time.Duration `envconfig:"SHUTDOWN_TIMEOUT" default:"10s"`

	Redis Redis
	Log   Log
}

// Redis is optional; an empty Addr disables event publishing and the user
// view cache.
type Redis struct {
	Addr         string        `envconfig:"REDIS_ADDR"`
	Password     string        `envconfig:"REDIS_PASSWORD"`
	DB           int           `envconfig:"REDIS_DB" default:"0"`
	UserCacheTTL time.Duration `envconfig:"USER_CACHE_TTL" default:"10m"`
}

func (r Redis) Enabled() bool { return r.Addr != "" }

type Log struct {
	Level  string `envconfig:"LOG_LEVEL" default:"info"`
	Format string `envconfig:"LOG_FORMAT" default:"text"`
	Prefix string `envconfig:"LOG_PREFIX" default:"ledger"`
}

// Load reads the first .env file found among envFiles (or ./.env when none
// are given) and then processes the environment. Variables already set in
// the environment win over the file.
func Load(envFiles ...string) (*Config, error) {
	if len(envFiles) == 0 {
		envFiles = []string{".env"}
	}
	for _, path := range envFiles {
		if err := godotenv.Load(path); err == nil {
			slog.Debug("loaded environment file", "path", path)
			break
		}
	}

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
