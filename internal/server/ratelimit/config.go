package ratelimit

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds rate limiting configuration.
type Config struct {
	Enabled         bool
	DefaultLimit    int
	DefaultWindow   time.Duration
	CleanupInterval time.Duration
	// IdleTimeout is how long a client's limiter is kept after its last request.
	IdleTimeout time.Duration
	Whitelist   map[string]bool
	Blacklist   map[string]bool
	Rules       []Rule
}

// Rule limits requests whose method and path match. Pattern uses path.Match syntax with
// one "*" per path segment, e.g. "/jobs/*/auto-update".
type Rule struct {
	Pattern string
	Method  string
	Limit   int           // Requests per Window; zero or less means unlimited
	Window  time.Duration // Window over which Limit applies
	Burst   int           // Burst capacity (defaults to Limit if 0)
}

// LoadConfig loads rate limiting configuration from RATE_LIMIT_* environment variables.
func LoadConfig() *Config {
	if !getEnvBool("RATE_LIMIT_ENABLED", true) {
		return &Config{Enabled: false}
	}

	return &Config{
		Enabled:         true,
		DefaultLimit:    getEnvInt("RATE_LIMIT_DEFAULT_LIMIT", 600),
		DefaultWindow:   getEnvDuration("RATE_LIMIT_DEFAULT_WINDOW", time.Minute),
		CleanupInterval: getEnvDuration("RATE_LIMIT_CLEANUP_INTERVAL", 5*time.Minute),
		IdleTimeout:     getEnvDuration("RATE_LIMIT_IDLE_TIMEOUT", time.Hour),
		Whitelist:       parseIPList(os.Getenv("RATE_LIMIT_WHITELIST")),
		Blacklist:       parseIPList(os.Getenv("RATE_LIMIT_BLACKLIST")),
		Rules:           DefaultRules(),
	}
}

// DefaultRules returns the per-route limits for the studio API.
func DefaultRules() []Rule {
	return []Rule{
		// Unlimited probes
		{Pattern: "/health", Method: "GET"},
		{Pattern: "/metrics", Method: "GET"},

		// Resume writes
		{Pattern: "/jobs/*/auto-update", Method: "POST", Limit: 30, Window: time.Minute, Burst: 5},
		{Pattern: "/jobs/*/reset", Method: "POST", Limit: 30, Window: time.Minute, Burst: 5},
		{Pattern: "/jobs/*/resume", Method: "PUT", Limit: 60, Window: time.Minute, Burst: 10},
		{Pattern: "/jobs", Method: "POST", Limit: 60, Window: time.Minute, Burst: 10},

		// Stateless keyword endpoints
		{Pattern: "/keywords/*", Method: "POST", Limit: 300, Window: time.Minute, Burst: 50},

		// Exports render the whole resume
		{Pattern: "/jobs/*/resume.tex", Method: "GET", Limit: 60, Window: time.Minute, Burst: 10},
		// PDF compilation spawns pdflatex
		{Pattern: "/jobs/*/resume.pdf", Method: "GET", Limit: 10, Window: time.Minute, Burst: 2},
	}
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}

// parseIPList parses a comma-separated list of IP addresses into a set.
func parseIPList(list string) map[string]bool {
	result := make(map[string]bool)
	for _, ip := range strings.Split(list, ",") {
		if ip = strings.TrimSpace(ip); ip != "" {
			result[ip] = true
		}
	}
	return result
}
