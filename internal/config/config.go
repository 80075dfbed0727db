package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	// Server
	Port string
	Env  string

	// Gemini AI
	GeminiAPIKey         string
	GeminiModel          string
	GeminiConcurrentReqs int
	UpstreamTimeoutSecs  int

	// Site access
	SitePassword     string
	SitePasswordHash string
	SessionSecret    string
	BasicAuthUser    string
	BasicAuthPass    string

	// Static UI
	StaticDir string

	// Frontend
	FrontendURL string
}

func Load() *Config {
	// Load .env file if it exists
	godotenv.Load()

	cfg := &Config{
		Port:                 getEnvOrDefault("PORT", "8080"),
		Env:                  getEnvOrDefault("ENV", "development"),
		GeminiAPIKey:         mustGetAPIKey("GEMINI_API_KEY"),
		GeminiModel:          getEnvOrDefault("GEMINI_MODEL", "gemini-1.5-flash"),
		GeminiConcurrentReqs: getEnvAsIntOrDefault("GEMINI_CONCURRENT_REQUESTS", 5),
		UpstreamTimeoutSecs:  getEnvAsIntOrDefault("UPSTREAM_TIMEOUT_SECONDS", 60),
		SitePassword:         getEnvOrDefault("SITE_PASSWORD", ""),
		SitePasswordHash:     getEnvOrDefault("SITE_PASSWORD_HASH", ""),
		SessionSecret:        getEnvOrDefault("SESSION_SECRET", ""),
		BasicAuthUser:        getEnvOrDefault("BASIC_AUTH_USER", ""),
		BasicAuthPass:        getEnvOrDefault("BASIC_AUTH_PASS", ""),
		StaticDir:            getEnvOrDefault("STATIC_DIR", "./web"),
		FrontendURL:          getEnvOrDefault("FRONTEND_URL", "http://localhost:8080"),
	}

	if cfg.PasswordGateEnabled() && cfg.SessionSecret == "" {
		panic("SESSION_SECRET is required when SITE_PASSWORD or SITE_PASSWORD_HASH is set")
	}

	return cfg
}

// PasswordGateEnabled reports whether the login/session gate is configured.
func (c *Config) PasswordGateEnabled() bool {
	return c.SitePassword != "" || c.SitePasswordHash != ""
}

// BasicAuthEnabled reports whether the edge basic-auth gate is configured.
func (c *Config) BasicAuthEnabled() bool {
	return c.BasicAuthUser != "" && c.BasicAuthPass != ""
}

// mustGetAPIKey reads and sanitizes the Gemini key. Keys pasted from provider
// dashboards often carry quotes or stray whitespace, so strip those before the
// shape check.
func mustGetAPIKey(key string) string {
	val := cleanAPIKey(os.Getenv(key))
	if val == "" {
		panic(fmt.Sprintf("required environment variable %s is not set", key))
	}
	if !strings.HasPrefix(val, "AIza") {
		panic(fmt.Sprintf("%s looks wrong: expected a key starting with AIza (no quotes, no spaces)", key))
	}
	return val
}

func cleanAPIKey(raw string) string {
	val := strings.TrimSpace(raw)
	val = strings.Trim(val, `"'`)
	return val
}

func getEnvOrDefault(key, defaultVal string) string {
	val := os.Getenv(key)
	if val == "" {
		return defaultVal
	}
	return val
}

func getEnvAsIntOrDefault(key string, defaultVal int) int {
	val := os.Getenv(key)
	if val == "" {
		return defaultVal
	}
	n, err := strconv.Atoi(val)
	if err != nil {
		return defaultVal
	}
	return n
}
