package config

import (
	"context"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"
)

// Config is the immutable process configuration, loaded once at startup and
// passed explicitly to every component that needs it.
type Config struct {
	Port     string `env:"PORT,      default=8080"`
	Env      string `env:"ENV,       default=development"`
	LogLevel string `env:"LOG_LEVEL, default=info"`

	JWT       JWTConfig
	Mongo     MongoConfig
	Redis     RedisConfig
	RateLimit RateLimitConfig

	// BcryptCost is the password hashing work factor.
	BcryptCost int `env:"BCRYPT_COST, default=12"`
}

type JWTConfig struct {
	Secret   string        `env:"JWT_SECRET"`
	TTL      time.Duration `env:"JWT_TTL,      default=24h"`
	Issuer   string        `env:"JWT_ISSUER,   default=bibliotheque-api"`
	Audience string        `env:"JWT_AUDIENCE, default=bibliotheque-app"`
}

type MongoConfig struct {
	URI      string `env:"MONGO_URI, default=mongodb://localhost:27017"`
	Database string `env:"MONGO_DB,  default=bibliotheque"`
}

type RedisConfig struct {
	Addr string `env:"REDIS_ADDR, default=localhost:6379"`
	DB   int    `env:"REDIS_DB,   default=0"`
}

// RateLimitConfig holds the fixed-window thresholds. Auth endpoints get a
// much tighter window than the rest of the API.
type RateLimitConfig struct {
	GlobalMax    int64         `env:"RATE_GLOBAL_MAX,    default=100"`
	GlobalWindow time.Duration `env:"RATE_GLOBAL_WINDOW, default=1m"`
	AuthMax      int64         `env:"RATE_AUTH_MAX,      default=10"`
	AuthWindow   time.Duration `env:"RATE_AUTH_WINDOW,   default=15m"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(context.Background(), &cfg); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	if cfg.JWT.Secret == "" {
		return nil, fmt.Errorf("config: JWT_SECRET is required")
	}
	return &cfg, nil
}
