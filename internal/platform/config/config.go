package config

import (
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/SscSPs/newswire_macros/internal/core/domain"
	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Defaults used when the environment does not say otherwise.
const (
	DefaultRateServiceURL     = "http://data.fixer.io/api/latest"
	DefaultRateSymbols        = "USD,AUD,CHF,NZD,CNY,GBP,EUR,JPY"
	DefaultRateCacheTTL       = 12 * time.Hour
	DefaultRateRequestTimeout = 5 * time.Second
	DefaultReplacementFields  = "body_html,body_text,abstract,headline,slugline"
)

// Config holds application configuration.
type Config struct {
	Port          string `validate:"required,numeric"`
	IsProduction  bool
	EnableDBCheck bool
	DatabaseURL   string
	JWTSecret     string `validate:"required,min=16"`

	// Exchange rate source and cache
	CurrencyAPIKey     string
	RateServiceURL     string        `validate:"required,url"`
	RateSymbols        []string      `validate:"required,min=2,dive,len=3,uppercase"`
	RateCacheTTL       time.Duration `validate:"gt=0"`
	RateRequestTimeout time.Duration `validate:"gt=0"`

	// Text fields scanned by the currency macros
	ReplacementFields []string `validate:"required,min=1,dive,required"`

	RateLimit             string `validate:"required"`
	CORSAllowedOrigins    []string
	PosthogAPIKey         string
	PosthogEndpoint       string `validate:"omitempty,url"`
	LocatorVocabularyFile string
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	v := viper.New()
	v.SetDefault("PORT", "8080")
	v.SetDefault("IS_PRODUCTION", false)
	v.SetDefault("ENABLE_DB_CHECK", false)
	v.SetDefault("PGSQL_URL", "")
	v.SetDefault("JWT_SECRET", "a-very-secret-key-should-be-longer-and-random")
	v.SetDefault("CURRENCY_API_KEY", "")
	v.SetDefault("RATE_SERVICE_URL", DefaultRateServiceURL)
	v.SetDefault("RATE_SYMBOLS", DefaultRateSymbols)
	v.SetDefault("RATE_CACHE_TTL", DefaultRateCacheTTL.String())
	v.SetDefault("RATE_REQUEST_TIMEOUT", DefaultRateRequestTimeout.String())
	v.SetDefault("MACRO_REPLACEMENT_FIELDS", DefaultReplacementFields)
	v.SetDefault("RATE_LIMIT", "60-M")
	v.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:9000")
	v.SetDefault("POSTHOG_API_KEY", "")
	v.SetDefault("POSTHOG_ENDPOINT", "https://eu.i.posthog.com")
	v.SetDefault("LOCATOR_VOCABULARY_FILE", "")
	v.AutomaticEnv()

	return fromViper(v)
}

func fromViper(v *viper.Viper) (*Config, error) {
	cfg := &Config{
		Port:                  v.GetString("PORT"),
		IsProduction:          v.GetBool("IS_PRODUCTION"),
		EnableDBCheck:         v.GetBool("ENABLE_DB_CHECK"),
		DatabaseURL:           v.GetString("PGSQL_URL"),
		JWTSecret:             v.GetString("JWT_SECRET"),
		CurrencyAPIKey:        v.GetString("CURRENCY_API_KEY"),
		RateServiceURL:        v.GetString("RATE_SERVICE_URL"),
		RateSymbols:           splitList(strings.ToUpper(v.GetString("RATE_SYMBOLS"))),
		ReplacementFields:     splitList(strings.ToLower(v.GetString("MACRO_REPLACEMENT_FIELDS"))),
		RateLimit:             v.GetString("RATE_LIMIT"),
		CORSAllowedOrigins:    splitList(v.GetString("CORS_ALLOWED_ORIGINS")),
		PosthogAPIKey:         v.GetString("POSTHOG_API_KEY"),
		PosthogEndpoint:       v.GetString("POSTHOG_ENDPOINT"),
		LocatorVocabularyFile: v.GetString("LOCATOR_VOCABULARY_FILE"),
	}

	cfg.RateCacheTTL = durationOrDefault(v.GetString("RATE_CACHE_TTL"), DefaultRateCacheTTL, "RATE_CACHE_TTL")
	cfg.RateRequestTimeout = durationOrDefault(v.GetString("RATE_REQUEST_TIMEOUT"), DefaultRateRequestTimeout, "RATE_REQUEST_TIMEOUT")

	if cfg.CurrencyAPIKey == "" {
		log.Println("Warning: CURRENCY_API_KEY not set. Exchange rate lookups will fail until it is provided.")
	}
	if cfg.DatabaseURL == "" {
		log.Println("Warning: PGSQL_URL not set. Rate snapshots will only be kept in memory.")
	}

	for _, f := range cfg.ReplacementFields {
		if !domain.IsKnownField(f) {
			return nil, fmt.Errorf("invalid MACRO_REPLACEMENT_FIELDS: unknown article field %q", f)
		}
	}

	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// durationOrDefault parses raw (e.g. "12h"), falling back to def with a warning.
func durationOrDefault(raw string, def time.Duration, key string) time.Duration {
	d, err := time.ParseDuration(raw)
	if err != nil || d <= 0 {
		if raw != "" {
			log.Printf("Warning: Invalid value for %s ('%s'). Defaulting to %s.\n", key, raw, def.String())
		}
		return def
	}
	return d
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
