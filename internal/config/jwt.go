package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

const (
	// DefaultJWTIssuer is stamped into editor tokens when JWT_ISSUER is unset.
	DefaultJWTIssuer = "resume-studio"
	// DefaultJWTExpirationHours is the editor token lifetime when JWT_EXPIRATION_HOURS is unset.
	DefaultJWTExpirationHours = 24
	// maxJWTExpirationHours caps editor tokens at thirty days.
	maxJWTExpirationHours = 24 * 30
)

// JWTConfig holds what the API needs to issue and check editor tokens.
type JWTConfig struct {
	Secret          string
	Issuer          string
	ExpirationHours int
}

// NewJWTConfig reads JWT_SECRET (required), JWT_ISSUER and JWT_EXPIRATION_HOURS.
func NewJWTConfig() (*JWTConfig, error) {
	cfg := &JWTConfig{
		Secret:          os.Getenv("JWT_SECRET"),
		Issuer:          os.Getenv("JWT_ISSUER"),
		ExpirationHours: DefaultJWTExpirationHours,
	}

	if raw := os.Getenv("JWT_EXPIRATION_HOURS"); raw != "" {
		hours, err := strconv.Atoi(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid JWT_EXPIRATION_HOURS %q: %w", raw, err)
		}
		cfg.ExpirationHours = hours
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate fills the default issuer and checks the secret and lifetime.
func (c *JWTConfig) Validate() error {
	if c.Secret == "" {
		return fmt.Errorf("JWT_SECRET is required but not set")
	}
	if c.Issuer == "" {
		c.Issuer = DefaultJWTIssuer
	}
	if c.ExpirationHours < 1 || c.ExpirationHours > maxJWTExpirationHours {
		return fmt.Errorf("JWT_EXPIRATION_HOURS must be between 1 and %d, got: %d",
			maxJWTExpirationHours, c.ExpirationHours)
	}
	return nil
}

// Expiration returns the token lifetime.
func (c *JWTConfig) Expiration() time.Duration {
	return time.Duration(c.ExpirationHours) * time.Hour
}
