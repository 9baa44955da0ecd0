// Package config handles configuration for the Linkfo server: defaults,
// an optional JSON file, environment variables and command-line flags,
// applied in that order.
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/dmitrijs2005/linkfo/internal/common"
)

const (
	EnvDevelopment = "development"
	EnvProduction  = "production"

	// minProductionSecretLen is the shortest HS256 key accepted in production.
	minProductionSecretLen = 32
)

// Config holds runtime settings for the Linkfo server.
//
// An empty DatabaseDSN selects the in-memory stores. An empty
// EndpointAddrGRPC disables the gRPC health listener, and an empty S3Bucket
// disables avatar uploads. SecretKey has no default.
type Config struct {
	EndpointAddrHTTP      string
	EndpointAddrGRPC      string
	DatabaseDSN           string
	SecretKey             string
	TokenValidityDuration time.Duration
	Environment           string
	LogBackend            string
	CORSAllowedOrigins    []string
	SeedDemoData          bool
	S3RootUser            string
	S3RootPassword        string
	S3Bucket              string
	S3Region              string
	S3BaseEndpoint        string
}

// LoadDefaults populates Config with development defaults.
func (c *Config) LoadDefaults() {
	c.EndpointAddrHTTP = ":5000"
	c.EndpointAddrGRPC = ""
	c.DatabaseDSN = ""
	c.SecretKey = ""
	c.TokenValidityDuration = 7 * 24 * time.Hour
	c.Environment = EnvDevelopment
	c.LogBackend = "slog"
	c.CORSAllowedOrigins = []string{"*"}
	c.SeedDemoData = true
	c.S3RootUser = ""
	c.S3RootPassword = ""
	c.S3Bucket = ""
	c.S3Region = "us-east-1"
	c.S3BaseEndpoint = ""
}

// IsProduction reports whether the server runs with the production posture.
func (c *Config) IsProduction() bool {
	return strings.EqualFold(c.Environment, EnvProduction)
}

// Validate rejects configurations the server must not start with.
func (c *Config) Validate() error {
	if c.SecretKey == "" {
		return common.ErrMissingSecret
	}
	if c.IsProduction() && len(c.SecretKey) < minProductionSecretLen {
		return fmt.Errorf("secret key must be at least %d bytes in production", minProductionSecretLen)
	}
	if c.TokenValidityDuration <= 0 {
		return fmt.Errorf("token validity must be positive, got %s", c.TokenValidityDuration)
	}
	if c.EndpointAddrHTTP == "" {
		return fmt.Errorf("http endpoint address is empty")
	}
	return nil
}

// LoadConfig builds a Config by applying defaults, then overlaying values
// from an optional JSON file, the environment and finally command-line flags.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseEnv(cfg)
	parseFlags(cfg)
	return cfg
}
