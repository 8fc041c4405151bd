package config

import (
	"encoding/json"
	"os"

	"github.com/dmitrijs2005/fitkeeper/internal/flagx"
	"github.com/dmitrijs2005/fitkeeper/internal/timex"
)

// JsonConfig is the on-disk shape of the config file. Fields left out of
// the file keep the value they already had.
type JsonConfig struct {
	EndpointAddrGRPC            string          `json:"endpoint_addr_grpc"`
	EndpointAddrHTTP            string          `json:"endpoint_addr_http"`
	DatabaseDSN                 *string         `json:"database_dsn"`
	SecretKey                   string          `json:"secret_key"`
	PreviousSecretKeys          []string        `json:"previous_secret_keys"`
	AccessTokenValidityDuration *timex.Duration `json:"access_token_validity_duration"`
	ExposeErrorDetails          *bool           `json:"expose_error_details"`
	RateLimitRPS                *float64        `json:"rate_limit_rps"`
	RateLimitBurst              *int            `json:"rate_limit_burst"`
	LogLevel                    string          `json:"log_level"`
	S3RootUser                  string          `json:"s3_root_user"`
	S3RootPassword              string          `json:"s3_root_password"`
	S3Bucket                    string          `json:"s3_bucket"`
	S3Region                    string          `json:"s3_region"`
	S3BaseEndpoint              string          `json:"s3_base_endpoint"`
}

// parseJson overlays the file named by -c/-config onto config. Without the
// flag nothing happens; an unreadable or malformed file panics.
func parseJson(config *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	file, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}

	c := &JsonConfig{}
	if err := json.Unmarshal(file, c); err != nil {
		panic(err)
	}

	setString(&config.EndpointAddrGRPC, c.EndpointAddrGRPC)
	setString(&config.EndpointAddrHTTP, c.EndpointAddrHTTP)
	setString(&config.SecretKey, c.SecretKey)
	setString(&config.LogLevel, c.LogLevel)
	setString(&config.S3RootUser, c.S3RootUser)
	setString(&config.S3RootPassword, c.S3RootPassword)
	setString(&config.S3Bucket, c.S3Bucket)
	setString(&config.S3Region, c.S3Region)
	setString(&config.S3BaseEndpoint, c.S3BaseEndpoint)

	if c.DatabaseDSN != nil {
		config.DatabaseDSN = *c.DatabaseDSN
	}
	if c.PreviousSecretKeys != nil {
		config.PreviousSecretKeys = c.PreviousSecretKeys
	}
	if c.AccessTokenValidityDuration != nil {
		config.AccessTokenValidityDuration = c.AccessTokenValidityDuration.Duration
	}
	if c.ExposeErrorDetails != nil {
		config.ExposeErrorDetails = *c.ExposeErrorDetails
	}
	if c.RateLimitRPS != nil {
		config.RateLimitRPS = *c.RateLimitRPS
	}
	if c.RateLimitBurst != nil {
		config.RateLimitBurst = *c.RateLimitBurst
	}
}

func setString(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}
