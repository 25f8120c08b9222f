package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

type Config struct {
	HTTP      HTTP
	Log       Log
	AI        AI
	Redis     Redis
	Cache     Cache
	CORS      CORS
	Community Community
}

type HTTP struct {
	Addr            string        `env:"HTTP_ADDR"`
	Port            string        `env:"PORT"`
	ReadTimeout     time.Duration `env:"HTTP_READ_TIMEOUT" envDefault:"10s"`
	WriteTimeout    time.Duration `env:"HTTP_WRITE_TIMEOUT" envDefault:"90s"`
	ShutdownTimeout time.Duration `env:"HTTP_SHUTDOWN_TIMEOUT" envDefault:"10s"`
}

type Log struct {
	Level  string `env:"LOG_LEVEL" envDefault:"info"`
	Pretty bool   `env:"LOG_PRETTY"`
}

type AI struct {
	APIKey         string        `env:"GEMINI_API_KEY"`
	LegacyAPIKey   string        `env:"API_KEY"`
	TextModel      string        `env:"AI_TEXT_MODEL"`
	ImageModel     string        `env:"AI_IMAGE_MODEL"`
	RetryAttempts  int           `env:"AI_RETRY_ATTEMPTS" envDefault:"3"`
	RetryBaseDelay time.Duration `env:"AI_RETRY_BASE_DELAY" envDefault:"2s"`
	FactCount      int           `env:"AI_FACT_COUNT" envDefault:"6"`
	RequestTimeout time.Duration `env:"AI_REQUEST_TIMEOUT" envDefault:"30s"`
	// CallBudget bounds one request end to end, retries and backoff included.
	CallBudget     time.Duration `env:"AI_CALL_BUDGET" envDefault:"80s"`
}

type Redis struct {
	Addr     string `env:"REDIS_ADDR"`
	Password string `env:"REDIS_PASSWORD"`
	DB       int    `env:"REDIS_DB" envDefault:"0"`
}

type Cache struct {
	FactsTTL time.Duration `env:"CACHE_FACTS_TTL" envDefault:"1h"`
	ImageTTL time.Duration `env:"CACHE_IMAGE_TTL" envDefault:"24h"`
	Cleanup  time.Duration `env:"CACHE_CLEANUP_INTERVAL" envDefault:"5m"`
}

type Community struct {
	SeedPosts int   `env:"COMMUNITY_SEED_POSTS" envDefault:"0"`
	SeedValue int64 `env:"COMMUNITY_SEED" envDefault:"1"`
}

type CORS struct {
	AllowedOrigins []string `env:"CORS_ALLOWED_ORIGINS" envSeparator:"," envDefault:"*"`
}

const (
	defaultAddr      = ":8080"
	maxRetryAttempts = 10
	maxSeedPosts     = 1000
)

// Load reads the configuration from the environment.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}

	if cfg.HTTP.Addr == "" {
		cfg.HTTP.Addr = defaultAddr
		if cfg.HTTP.Port != "" {
			cfg.HTTP.Addr = ":" + cfg.HTTP.Port
		}
	}
	if cfg.AI.APIKey == "" {
		cfg.AI.APIKey = cfg.AI.LegacyAPIKey
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	var errs []error
	if c.AI.RetryAttempts < 1 || c.AI.RetryAttempts > maxRetryAttempts {
		errs = append(errs, fmt.Errorf("AI_RETRY_ATTEMPTS must be within 1..%d, got %d", maxRetryAttempts, c.AI.RetryAttempts))
	}
	if c.AI.RetryBaseDelay <= 0 {
		errs = append(errs, fmt.Errorf("AI_RETRY_BASE_DELAY must be positive, got %s", c.AI.RetryBaseDelay))
	}
	if c.AI.FactCount < 1 || c.AI.FactCount > 20 {
		errs = append(errs, fmt.Errorf("AI_FACT_COUNT must be within 1..20, got %d", c.AI.FactCount))
	}
	if c.AI.RequestTimeout < 0 {
		errs = append(errs, fmt.Errorf("AI_REQUEST_TIMEOUT must not be negative, got %s", c.AI.RequestTimeout))
	}
	if c.AI.CallBudget <= 0 {
		errs = append(errs, fmt.Errorf("AI_CALL_BUDGET must be positive, got %s", c.AI.CallBudget))
	} else if c.HTTP.WriteTimeout > 0 && c.AI.CallBudget >= c.HTTP.WriteTimeout {
		errs = append(errs, fmt.Errorf("AI_CALL_BUDGET (%s) must be shorter than HTTP_WRITE_TIMEOUT (%s)", c.AI.CallBudget, c.HTTP.WriteTimeout))
	}
	if c.Cache.FactsTTL < 0 || c.Cache.ImageTTL < 0 {
		errs = append(errs, errors.New("cache TTLs must not be negative"))
	}
	if c.Cache.Cleanup <= 0 {
		errs = append(errs, fmt.Errorf("CACHE_CLEANUP_INTERVAL must be positive, got %s", c.Cache.Cleanup))
	}
	if c.Community.SeedPosts < 0 || c.Community.SeedPosts > maxSeedPosts {
		errs = append(errs, fmt.Errorf("COMMUNITY_SEED_POSTS must be within 0..%d, got %d", maxSeedPosts, c.Community.SeedPosts))
	}
	return errors.Join(errs...)
}
