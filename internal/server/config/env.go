package config

import (
	"os"
	"time"
)

// parseEnv overlays Config fields from AUTHD_* environment variables.
// Unset variables keep the current values. An unparsable TTL is ignored
// rather than fatal: the flag and JSON layers remain authoritative.
func parseEnv(config *Config) {
	if v := os.Getenv("AUTHD_ADDRESS"); v != "" {
		config.EndpointAddrHTTP = v
	}
	if v := os.Getenv("AUTHD_DATABASE_DSN"); v != "" {
		config.DatabaseDSN = v
	}
	if v := os.Getenv("AUTHD_SECRET_KEY"); v != "" {
		config.SecretKey = v
	}
	if v := os.Getenv("AUTHD_ACCESS_TOKEN_TTL"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			config.AccessTokenTTL = d
		}
	}
	if v := os.Getenv("AUTHD_CORS_ORIGIN"); v != "" {
		config.CORSOrigin = v
	}
}
