package config

import (
	"os"
	"strings"
)

// Config holds the process-wide settings, read once at startup and passed
// explicitly to the parts that need them.
type Config struct {
	JWTSecret   string // Required. Used to sign and verify bearer tokens
	BindAddress string
	MySQLDSN    string // MySQL will be used if this is set
	SQLiteFile  string // SQLite will be used if MYSQL_DSN is not configured
	TLSDomains  string // e.g. "example.com,example2.com"
	DebugMode   bool
}

// Load reads the configuration from environment variables.
func Load() *Config {
	cfg := &Config{
		BindAddress: "0.0.0.0:8080",
		SQLiteFile:  "collab.db",
		DebugMode:   true,
	}
	readEnvString("JWT_SECRET", &cfg.JWTSecret)
	readEnvString("BIND_ADDRESS", &cfg.BindAddress)
	readEnvString("MYSQL_DSN", &cfg.MySQLDSN)
	readEnvString("SQLITE_FILE", &cfg.SQLiteFile)
	readEnvString("TLS_DOMAINS", &cfg.TLSDomains)
	readEnvBool("DEBUG_MODE", &cfg.DebugMode)
	return cfg
}

func readEnvString(name string, value *string) {
	v := os.Getenv(name)
	if v == "" {
		return
	}
	*value = v
}

func readEnvBool(name string, value *bool) {
	v := strings.ToLower(os.Getenv(name))
	if v == "true" || v == "1" || v == "yes" || v == "on" {
		*value = true
	} else if v == "false" || v == "0" || v == "no" || v == "off" {
		*value = false
	}
}
