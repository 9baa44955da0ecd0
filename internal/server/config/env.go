package config

import (
	"fmt"
	"os"

	"github.com/dmitrijs2005/linkfo/internal/flagx"
)

// parseEnv overlays the variables a hosting platform usually provides.
// PORT is a bare port number and binds on all interfaces.
func parseEnv(config *Config) {
	flagx.EnvString(&config.SecretKey, "JWT_SECRET")
	flagx.EnvString(&config.DatabaseDSN, "DATABASE_URL")
	flagx.EnvString(&config.Environment, "APP_ENV")
	flagx.EnvString(&config.LogBackend, "LOG_BACKEND")

	if port := os.Getenv("PORT"); port != "" {
		config.EndpointAddrHTTP = fmt.Sprintf(":%s", port)
	}

	if !flagx.EnvDuration(&config.TokenValidityDuration, "TOKEN_VALIDITY") {
		panic(fmt.Sprintf("invalid TOKEN_VALIDITY %q", os.Getenv("TOKEN_VALIDITY")))
	}
	if !flagx.EnvBool(&config.SeedDemoData, "SEED_DEMO_DATA") {
		panic(fmt.Sprintf("invalid SEED_DEMO_DATA %q", os.Getenv("SEED_DEMO_DATA")))
	}
}
