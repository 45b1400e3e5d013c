package config

import (
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"go.uber.org/dig"

	"github.com/davidbz/lessongen/internal/provider/google"
	"github.com/davidbz/lessongen/internal/provider/groq"
)

// Ledger storage drivers.
const (
	LedgerDriverSQLite   = "sqlite"
	LedgerDriverPostgres = "postgres"
)

// Config represents the generation service configuration.
type Config struct {
	Server     ServerConfig
	CORS       CORSConfig
	Google     google.Config
	Groq       groq.Config
	Redis      RedisConfig
	Ledger     LedgerConfig
	Generation GenerationConfig
}

// writeTimeoutMargin is added to the generation budget when deriving the write timeout.
const writeTimeoutMargin = 30 * time.Second

// ServerConfig contains HTTP server settings.
// The server is an internal facade for trusted workers: requests name the
// user to debit. APIKey, when set, is required in the X-Api-Key header.
// WriteTimeout 0 derives it from the generation budget.
type ServerConfig struct {
	Port         int    `env:"SERVER_PORT"          envDefault:"8080"`
	ReadTimeout  int    `env:"SERVER_READ_TIMEOUT"  envDefault:"30"`
	WriteTimeout int    `env:"SERVER_WRITE_TIMEOUT" envDefault:"0"`
	APIKey       string `env:"SERVER_API_KEY"`
}

// CORSConfig contains CORS policy settings.
// No allowed origins disables cross-origin access.
type CORSConfig struct {
	AllowedOrigins   []string `env:"CORS_ALLOWED_ORIGINS"   envSeparator:","`
	AllowedMethods   []string `env:"CORS_ALLOWED_METHODS"   envSeparator:"," envDefault:"GET,POST,OPTIONS"`
	AllowedHeaders   []string `env:"CORS_ALLOWED_HEADERS"   envSeparator:"," envDefault:"Content-Type,X-Api-Key"`
	AllowCredentials bool     `env:"CORS_ALLOW_CREDENTIALS"                  envDefault:"false"`
	MaxAge           int      `env:"CORS_MAX_AGE"                            envDefault:"86400"`
}

// RedisConfig contains the usage counter store settings.
// An empty URL selects the in-memory counter.
type RedisConfig struct {
	URL string `env:"REDIS_URL"`
}

// LedgerConfig selects and locates the token ledger store.
type LedgerConfig struct {
	Driver string `env:"LEDGER_DRIVER" envDefault:"sqlite"`
	DSN    string `env:"LEDGER_DSN"    envDefault:"data/lessongen.db"`
}

// GenerationConfig tunes model selection and the attempt loop.
type GenerationConfig struct {
	MaxAttempts       int     `env:"GENERATION_MAX_ATTEMPTS"        envDefault:"3"`
	PrimaryProvider   string  `env:"GENERATION_PRIMARY_PROVIDER"    envDefault:"google"`
	PrimaryWeight     float64 `env:"GENERATION_PRIMARY_WEIGHT"      envDefault:"0.7"`
	UsageReadRetries  int     `env:"GENERATION_USAGE_READ_RETRIES"  envDefault:"2"`
	CatalogPath       string  `env:"GENERATION_CATALOG_PATH"`
	CatalogWatch      bool    `env:"GENERATION_CATALOG_WATCH"       envDefault:"false"`
	ImageFetchTimeout int     `env:"GENERATION_IMAGE_FETCH_TIMEOUT" envDefault:"15"`
	EnableEcho        bool    `env:"GENERATION_ENABLE_ECHO"         envDefault:"false"`
}

// DepConfig is used for dependency injection with dig.
// Fields are named because both provider packages export a type called Config.
type DepConfig struct {
	dig.Out

	Server     *ServerConfig
	CORS       *CORSConfig
	Google     *google.Config
	Groq       *groq.Config
	Redis      *RedisConfig
	Ledger     *LedgerConfig
	Generation *GenerationConfig
}

// Load loads environment files and parses configuration.
func Load() *Config {
	for _, file := range []string{".env"} {
		_ = godotenv.Load(file)
	}

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		panic(err)
	}

	if cfg.Server.WriteTimeout <= 0 {
		cfg.Server.WriteTimeout = int((cfg.GenerationBudget() + writeTimeoutMargin) / time.Second)
	}

	return &cfg
}

// GenerationBudget is the longest one generation request may run: every
// attempt makes the provider call plus the repair call, each preceded by
// an image fetch, on the slowest configured provider.
func (c *Config) GenerationBudget() time.Duration {
	imageFetch := time.Duration(max(c.Generation.ImageFetchTimeout, 0)) * time.Second
	slowest := max(c.Google.CallBudget(), c.Groq.CallBudget()) + imageFetch
	attempts := max(c.Generation.MaxAttempts, 1)
	return time.Duration(attempts*2) * slowest
}

// ParseDependenciesConfig returns pointers to sub-configs for dependency injection.
func ParseDependenciesConfig(cfg *Config) DepConfig {
	return DepConfig{
		Server:     &cfg.Server,
		CORS:       &cfg.CORS,
		Google:     &cfg.Google,
		Groq:       &cfg.Groq,
		Redis:      &cfg.Redis,
		Ledger:     &cfg.Ledger,
		Generation: &cfg.Generation,
	}
}
