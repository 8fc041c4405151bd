// Package config handles configuration for the server component,
// including defaults, JSON overlay, and command-line flags.
package config

import (
	"errors"
	"time"
)

// ErrMissingSecretKey is returned by Validate when no signing key is set.
var ErrMissingSecretKey = errors.New("secret key is required: set -s or secret_key in the JSON config")

// Config holds runtime settings for the fitkeeper server.
//
// Fields:
//   - EndpointAddrGRPC / EndpointAddrHTTP: bind addresses for the two transports.
//   - DatabaseDSN: PostgreSQL DSN (pgx). Empty selects the in-memory store.
//   - SecretKey: HMAC secret for signing JWTs (HS256). There is no default.
//   - PreviousSecretKeys: retired secrets still accepted for verification.
//   - AccessTokenValidityDuration: token lifetime.
//   - ExposeErrorDetails: include the underlying cause in 500 responses.
//   - RateLimitRPS / RateLimitBurst: per-client limits on /api/auth.
//   - S3*: object storage for profile photos.
type Config struct {
	EndpointAddrGRPC            string
	EndpointAddrHTTP            string
	DatabaseDSN                 string
	SecretKey                   string
	PreviousSecretKeys          []string
	AccessTokenValidityDuration time.Duration
	ExposeErrorDetails          bool
	RateLimitRPS                float64
	RateLimitBurst              int
	LogLevel                    string
	S3RootUser                  string
	S3RootPassword              string
	S3Bucket                    string
	S3Region                    string
	S3BaseEndpoint              string
}

// LoadDefaults populates Config with development defaults.
// SecretKey is left empty and must be supplied; the S3 credentials must be
// overridden in production.
func (c *Config) LoadDefaults() {
	c.EndpointAddrGRPC = ":50051"
	c.EndpointAddrHTTP = ":8080"
	c.DatabaseDSN = ""
	c.SecretKey = ""
	c.AccessTokenValidityDuration = 60 * time.Minute
	c.ExposeErrorDetails = true
	c.RateLimitRPS = 5
	c.RateLimitBurst = 10
	c.LogLevel = "info"
	c.S3RootUser = "admin"
	c.S3RootPassword = "secretpassword"
	c.S3Bucket = "fitkeeper"
	c.S3Region = "us-east-1"
	c.S3BaseEndpoint = "http://127.0.0.1:9000/"
}

// Validate reports settings the server cannot start without.
func (c *Config) Validate() error {
	if c.SecretKey == "" {
		return ErrMissingSecretKey
	}
	return nil
}

// SecretKeys returns the current key followed by the previous ones, in the
// order token verification should try them.
func (c *Config) SecretKeys() [][]byte {
	keys := make([][]byte, 0, 1+len(c.PreviousSecretKeys))
	keys = append(keys, []byte(c.SecretKey))
	for _, k := range c.PreviousSecretKeys {
		if k != "" {
			keys = append(keys, []byte(k))
		}
	}
	return keys
}

// LoadConfig builds a Config by applying defaults, then overlaying values
// from an optional JSON file and finally from command-line flags.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
