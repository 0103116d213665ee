package config

import (
	"encoding/json"
	"os"
	"time"

	"github.com/dmitrijs2005/authd/internal/flagx"
	"github.com/dmitrijs2005/authd/internal/timex"
)

// JsonConfig is an intermediate DTO used only for reading JSON configuration
// files. It relies on timex.Duration so JSON can specify the token TTL either
// as a string ("15m") or as integer nanoseconds. After unmarshalling, its
// fields are copied into the runtime Config which uses time.Duration.
type JsonConfig struct {
	EndpointAddrHTTP string         `json:"endpoint_addr_http"`
	DatabaseDSN      string         `json:"database_dsn"`
	SecretKey        string         `json:"secret_key"`
	AccessTokenTTL   timex.Duration `json:"access_token_ttl"`
	CORSOrigin       string         `json:"cors_origin"`
}

// parseJson loads configuration values from the JSON file named by the
// -c or -config command-line flags into the provided Config. When neither
// flag is set, no file is loaded. Unset fields keep their current values.
// An unreadable or invalid file panics: a broken explicit config is a fatal
// startup condition.
func parseJson(config *Config) {

	jsonConfigFile := flagx.JsonConfigFlags()

	// nothing to load
	if jsonConfigFile == "" {
		return
	}

	c := &JsonConfig{}

	file, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}

	if err := json.Unmarshal(file, c); err != nil {
		panic(err)
	}

	if c.EndpointAddrHTTP != "" {
		config.EndpointAddrHTTP = c.EndpointAddrHTTP
	}
	if c.DatabaseDSN != "" {
		config.DatabaseDSN = c.DatabaseDSN
	}
	if c.SecretKey != "" {
		config.SecretKey = c.SecretKey
	}
	if c.AccessTokenTTL.Duration != 0 {
		config.AccessTokenTTL = time.Duration(c.AccessTokenTTL.Duration)
	}
	if c.CORSOrigin != "" {
		config.CORSOrigin = c.CORSOrigin
	}
}
