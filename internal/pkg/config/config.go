package config

import (
	"context"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port     string `env:"PORT,      default=8080"`
	Env      string `env:"ENV,       default=development"`
	LogLevel string `env:"LOG_LEVEL, default=info"`

	Token    TokenConfig
	Security SecurityConfig
	Limiter  LimiterConfig

	Mongo MongoConfig
	Redis RedisConfig
}

// TokenConfig drives the session token issuer. An empty Secret selects the
// development fallback.
type TokenConfig struct {
	Secret        string        `env:"JWT_SECRET"`
	TTL           time.Duration `env:"TOKEN_TTL,            default=24h"`
	RefreshWindow time.Duration `env:"TOKEN_REFRESH_WINDOW, default=5m"`
}

type SecurityConfig struct {
	PasswordHasher string `env:"PASSWORD_HASHER, default=bcrypt"`
	BcryptCost     int    `env:"BCRYPT_COST,     default=12"`
	IDStrategy     string `env:"ID_STRATEGY,     default=uuid"`
}

// LimiterConfig drives the login rate limit. TrustedProxies holds the CIDR
// ranges allowed to set X-Forwarded-For; when empty the TCP peer is the client.
type LimiterConfig struct {
	LoginLimit     int           `env:"LOGIN_RATE_LIMIT,  default=10"`
	LoginWindow    time.Duration `env:"LOGIN_RATE_WINDOW, default=1m"`
	TrustedProxies []string      `env:"TRUSTED_PROXIES"`
}

type MongoConfig struct {
	URI      string `env:"MONGO_URI, default=mongodb://localhost:27017"`
	Database string `env:"MONGO_DB,  default=hotelhub"`
}

type RedisConfig struct {
	Addr     string `env:"REDIS_ADDR,     default=localhost:6379"`
	Password string `env:"REDIS_PASSWORD"`
	DB       int    `env:"REDIS_DB,       default=0"`
}

// IsDevelopment reports whether the service runs with developer defaults.
func (c *Config) IsDevelopment() bool {
	return c.Env == "development"
}

// Load reads configuration from environment variables using go-envconfig.
func Load() *Config {
	cfg, err := LoadWith(context.Background(), envconfig.OsLookuper())
	if err != nil {
		panic(fmt.Sprintf("config: failed to load configuration: %v", err))
	}
	return cfg
}

// LoadWith reads configuration from the given lookuper.
func LoadWith(ctx context.Context, l envconfig.Lookuper) (*Config, error) {
	var cfg Config
	if err := envconfig.ProcessWith(ctx, &envconfig.Config{Target: &cfg, Lookuper: l}); err != nil {
		return nil, err
	}
	return &cfg, nil
}
