package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds runtime configuration values for the API service.
type Config struct {
	AppName                string
	AppEnv                 string
	AppPort                string
	DatabaseURL            string
	RedisURL               string
	JWTSecret              string
	CatalogSource          string
	ScorecardAPIKey        string
	ScorecardTimeout       time.Duration
	RecommendationCacheTTL time.Duration
	OpenAIAPIKey           string
	OpenAIModel            string
}

// HTTPAddress returns the address the HTTP server should listen on.
func (c Config) HTTPAddress() string {
	if strings.HasPrefix(c.AppPort, ":") {
		return c.AppPort
	}

	return fmt.Sprintf(":%s", c.AppPort)
}

// Load reads configuration values from environment variables and an
// optional .env file.
func Load() (Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	v.SetEnvPrefix("COUNSELOR")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	v.SetDefault("app.name", "College Counselor API")
	v.SetDefault("app.env", "development")
	v.SetDefault("app.port", "8080")
	v.SetDefault("catalog.source", "mock")
	v.SetDefault("scorecard.timeout", "10s")
	v.SetDefault("recommendations.cache_ttl", "5m")
	v.SetDefault("openai.model", "gpt-4o-mini")

	cacheTTL, err := time.ParseDuration(v.GetString("recommendations.cache_ttl"))
	if err != nil {
		return Config{}, fmt.Errorf("invalid recommendation cache ttl: %w", err)
	}

	scorecardTimeout, err := time.ParseDuration(v.GetString("scorecard.timeout"))
	if err != nil {
		return Config{}, fmt.Errorf("invalid scorecard timeout: %w", err)
	}

	cfg := Config{
		AppName:                v.GetString("app.name"),
		AppEnv:                 v.GetString("app.env"),
		AppPort:                v.GetString("app.port"),
		DatabaseURL:            v.GetString("database.url"),
		RedisURL:               v.GetString("redis.url"),
		JWTSecret:              v.GetString("jwt.secret"),
		CatalogSource:          strings.ToLower(v.GetString("catalog.source")),
		ScorecardAPIKey:        v.GetString("scorecard.api_key"),
		ScorecardTimeout:       scorecardTimeout,
		RecommendationCacheTTL: cacheTTL,
		OpenAIAPIKey:           v.GetString("openai.api_key"),
		OpenAIModel:            v.GetString("openai.model"),
	}

	if cfg.JWTSecret == "" {
		return Config{}, fmt.Errorf("jwt secret must be provided")
	}

	if cfg.CatalogSource != "mock" && cfg.CatalogSource != "scorecard" {
		return Config{}, fmt.Errorf("unknown catalog source %q", cfg.CatalogSource)
	}

	return cfg, nil
}
