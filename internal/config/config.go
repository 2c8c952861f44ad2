// Package config loads the backend configuration from environment variables.
package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"category-audit-backend/internal/errors"
)

// Defaults for the Autodesk Platform Services endpoints and query limits.
const (
	DefaultGraphQLEndpoint = "https://developer.api.autodesk.com/aec/graphql"
	DefaultTokenEndpoint   = "https://developer.api.autodesk.com/authentication/v2/token"
	DefaultRegion          = "US"
	DefaultRequestTimeout  = 30 * time.Second
	DefaultPageLimit       = 100
	DefaultDistinctLimit   = 1000
	DefaultPort            = "8080"

	maxPageLimit = 500
)

// Config holds everything the server and CLI need to talk to the AEC Data
// Model API.
type Config struct {
	GraphQLEndpoint string
	TokenEndpoint   string
	Region          string

	// Either a pre-issued token or client credentials for two-legged OAuth.
	AccessToken  string
	ClientID     string
	ClientSecret string

	RequestTimeout time.Duration
	PageLimit      int
	DistinctLimit  int

	Port           string
	AllowedOrigins []string
	LogLevel       string
}

// Load reads the configuration from the environment, applying defaults for
// anything unset.
func Load() *Config {
	return &Config{
		GraphQLEndpoint: getEnv("AEC_GRAPHQL_ENDPOINT", DefaultGraphQLEndpoint),
		TokenEndpoint:   getEnv("APS_TOKEN_ENDPOINT", DefaultTokenEndpoint),
		Region:          getEnv("APS_REGION", DefaultRegion),
		AccessToken:     os.Getenv("APS_ACCESS_TOKEN"),
		ClientID:        os.Getenv("APS_CLIENT_ID"),
		ClientSecret:    os.Getenv("APS_CLIENT_SECRET"),
		RequestTimeout:  getEnvDuration("AEC_REQUEST_TIMEOUT", DefaultRequestTimeout),
		PageLimit:       getEnvInt("AEC_PAGE_LIMIT", DefaultPageLimit),
		DistinctLimit:   getEnvInt("AEC_DISTINCT_LIMIT", DefaultDistinctLimit),
		Port:            getEnv("PORT", DefaultPort),
		AllowedOrigins:  getEnvList("CORS_ALLOW_ORIGINS", []string{"http://localhost:3000"}),
		LogLevel:        getEnv("LOG_LEVEL", "info"),
	}
}

// Validate checks that the configuration is usable. Credentials are required
// in one of the two supported forms.
func (c *Config) Validate() error {
	if c.AccessToken == "" && (c.ClientID == "" || c.ClientSecret == "") {
		return errors.NewConfigError("APS_ACCESS_TOKEN", "set APS_ACCESS_TOKEN or both APS_CLIENT_ID and APS_CLIENT_SECRET")
	}
	if c.PageLimit < 1 || c.PageLimit > maxPageLimit {
		return errors.NewConfigError("AEC_PAGE_LIMIT", "page limit must be between 1 and 500")
	}
	if c.DistinctLimit < 1 {
		return errors.NewConfigError("AEC_DISTINCT_LIMIT", "distinct value limit must be positive")
	}
	if c.Region == "" {
		return errors.NewConfigError("APS_REGION", "region must not be empty")
	}
	return nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return fallback
	}
	return d
}

func getEnvList(key string, fallback []string) []string {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	if len(out) == 0 {
		return fallback
	}
	return out
}
