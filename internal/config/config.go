// Package config manages environment variables.
//
// It reads variables from the process environment (and a `.env` file when present),
// loads them into structured Go types, and validates that required values are
// present so the service fails fast on bad or missing configuration.
//
// Responsibilities:
//   - Load environment variables (optionally from a `.env` file).
//   - Map env vars into a structured Go config (structs).
//   - Validate required values so the app fails fast on bad/missing config.
//   - Provide defaults for optional blocks (cache, rate limiting, observability).
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	// Side-effect import: if a `.env` file exists it is loaded into the
	// process environment before any variable is read.
	_ "github.com/joho/godotenv/autoload"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/v2"
)

const (
	// EnvPrefix scopes every service variable, e.g. BARBERSHOP_SERVER__PORT.
	EnvPrefix = "BARBERSHOP_"

	// DatabaseURLEnv is the plain connection string variable used by the
	// serverless deployment. BARBERSHOP_DATABASE__URL takes precedence.
	DatabaseURLEnv = "DATABASE_URL"

	// ServiceName tags logs, traces and metrics.
	ServiceName = "barbershop-api"
)

// Config is the root configuration object for the application.
//
// The `koanf:"..."` tags specify where koanf maps values from and the
// `validate:"..."` tags are enforced by go-playground/validator.
// Observability is a pointer because it is optional; defaults are injected
// when it is missing.
type Config struct {
	Primary       Primary              `koanf:"primary" validate:"required"`
	Server        ServerConfig         `koanf:"server" validate:"required"`
	Database      DatabaseConfig       `koanf:"database" validate:"required"`
	Redis         RedisConfig          `koanf:"redis"`
	Cache         CacheConfig          `koanf:"cache"`
	Integration   IntegrationConfig    `koanf:"integration"`
	RateLimit     RateLimitConfig      `koanf:"rate_limit" validate:"required"`
	Observability *ObservabilityConfig `koanf:"observability"`
}

// Primary holds top-level information about the runtime environment.
type Primary struct {
	Env string `koanf:"env" validate:"required"`
}

// ServerConfig groups settings for the HTTP server runtime.
// Timeouts are expressed in seconds.
//
// TrustedProxies lists the CIDR ranges of proxies allowed to set
// X-Forwarded-For. When empty the client address is the TCP peer.
type ServerConfig struct {
	Port               string   `koanf:"port" validate:"required"`
	ReadTimeout        int      `koanf:"read_timeout" validate:"required,min=1"`
	WriteTimeout       int      `koanf:"write_timeout" validate:"required,min=1"`
	IdleTimeout        int      `koanf:"idle_timeout" validate:"required,min=1"`
	CORSAllowedOrigins []string `koanf:"cors_allowed_origins" validate:"required,min=1"`
	TrustedProxies     []string `koanf:"trusted_proxies" validate:"dive,cidr"`
}

// DatabaseConfig contains the PostgreSQL connection string and pool tuning.
// Lifetimes are expressed in seconds.
//
// RequirePing makes an unreachable database fatal at startup. When false the
// failed ping is logged and the pool keeps connecting lazily, so routes that
// never touch the database keep answering.
type DatabaseConfig struct {
	URL             string `koanf:"url" validate:"required"`
	RequirePing     bool   `koanf:"require_ping"`
	MaxConns        int32  `koanf:"max_conns" validate:"required,min=1"`
	MinConns        int32  `koanf:"min_conns" validate:"min=0"`
	ConnMaxLifetime int    `koanf:"conn_max_lifetime" validate:"min=0"`
	ConnMaxIdleTime int    `koanf:"conn_max_idle_time" validate:"min=0"`
}

// RedisConfig contains Redis connection details.
// An empty Address disables the catalog cache and background jobs.
type RedisConfig struct {
	Address  string `koanf:"address"`
	Password string `koanf:"password"`
	DB       int    `koanf:"db" validate:"min=0"`
}

// Enabled reports whether a Redis address was configured.
func (r RedisConfig) Enabled() bool {
	return r.Address != ""
}

// CacheConfig controls the catalog read-through cache.
type CacheConfig struct {
	Enabled bool          `koanf:"enabled"`
	TTL     time.Duration `koanf:"ttl" validate:"min=0"`
}

// IntegrationConfig stores third-party credentials.
// An empty ResendAPIKey turns booking emails into logged no-ops.
type IntegrationConfig struct {
	ResendAPIKey string `koanf:"resend_api_key"`
	EmailFrom    string `koanf:"email_from"`
}

// RateLimitConfig sizes the per-client token bucket.
type RateLimitConfig struct {
	RequestsPerSecond float64 `koanf:"requests_per_second" validate:"gt=0"`
	Burst             int     `koanf:"burst" validate:"min=1"`
}

// defaults are loaded before the environment so every optional key has a value.
func defaults() map[string]any {
	return map[string]any{
		"primary.env":                    "development",
		"server.port":                    "8080",
		"server.read_timeout":            10,
		"server.write_timeout":           10,
		"server.idle_timeout":            60,
		"server.cors_allowed_origins":    []string{"*"},
		"database.max_conns":             10,
		"database.min_conns":             0,
		"database.conn_max_lifetime":     3600,
		"database.conn_max_idle_time":    300,
		"database.require_ping":          true,
		"cache.enabled":                  true,
		"cache.ttl":                      60 * time.Second,
		"integration.email_from":         "Barbershop <bookings@barbershop.local>",
		"rate_limit.requests_per_second": 20.0,
		"rate_limit.burst":               40,
	}
}

// envKey maps BARBERSHOP_SERVER__READ_TIMEOUT to server.read_timeout.
func envKey(s string) string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimPrefix(s, EnvPrefix)), "__", ".")
}

// LoadConfig loads configuration from defaults and environment variables,
// unmarshals it into Config, validates it and fills observability defaults.
//
// Sources, lowest precedence first:
//   - built-in defaults
//   - DATABASE_URL
//   - BARBERSHOP_* variables
func LoadConfig() (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(confmap.Provider(defaults(), "."), nil); err != nil {
		return nil, fmt.Errorf("could not load config defaults: %w", err)
	}

	// The callback drops every variable except the exact DATABASE_URL name.
	err := k.Load(env.Provider(DatabaseURLEnv, ".", func(s string) string {
		if s == DatabaseURLEnv {
			return "database.url"
		}
		return ""
	}), nil)
	if err != nil {
		return nil, fmt.Errorf("could not load %s: %w", DatabaseURLEnv, err)
	}

	if err := k.Load(env.Provider(EnvPrefix, ".", envKey), nil); err != nil {
		return nil, fmt.Errorf("could not load environment variables: %w", err)
	}

	// Observability defaults are pre-filled so partial overrides keep the
	// remaining fields.
	mainConfig := &Config{Observability: DefaultObservabilityConfig()}
	if err := k.Unmarshal("", mainConfig); err != nil {
		return nil, fmt.Errorf("could not unmarshal main config: %w", err)
	}

	validate := validator.New()
	if err := validate.Struct(mainConfig); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	// Service name and environment always follow the primary block so
	// logs and traces agree on them.
	mainConfig.Observability.ServiceName = ServiceName
	mainConfig.Observability.Environment = mainConfig.Primary.Env

	if err := mainConfig.Observability.Validate(); err != nil {
		return nil, fmt.Errorf("invalid observability config: %w", err)
	}

	return mainConfig, nil
}
