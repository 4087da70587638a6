package main

import (
	"log/slog"
	"os"
	"path/filepath"
)

// Config holds application configuration loaded from environment variables.
// GeoServer connection parameters (GEOSERVER_URL, GEOSERVER_USER,
// GEOSERVER_PASSWORD) are resolved separately by internal/config.
type Config struct {
	Mode           string     // "stdio" or "http"
	HTTPAddr       string     // "127.0.0.1:8080"
	DBPath         string     // path to the audit SQLite database
	AgeKeyPath     string     // path to age identity file
	CredentialPath string     // path to the encrypted credential file
	ConfigFile     string     // path to geoserver-mcp.yaml
	LogLevel       slog.Level // slog level
}

// defaultDataPath returns ~/.geoserver-mcp/<filename>, falling back to
// a CWD-relative path if the home directory can't be resolved.
func defaultDataPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filename
	}
	return filepath.Join(home, ".geoserver-mcp", filename)
}

func loadConfig() (*Config, error) {
	cfg := &Config{
		Mode:           envOr("GEOSERVER_MCP_MODE", "stdio"),
		HTTPAddr:       envOr("GEOSERVER_MCP_HTTP_ADDR", "127.0.0.1:8181"),
		DBPath:         envOr("GEOSERVER_MCP_DB", defaultDataPath("audit.db")),
		AgeKeyPath:     envOr("GEOSERVER_MCP_AGE_KEY", defaultDataPath("key.age")),
		CredentialPath: envOr("GEOSERVER_MCP_CREDENTIAL", defaultDataPath("credential.age")),
		ConfigFile:     envOr("GEOSERVER_MCP_CONFIG", defaultDataPath("geoserver-mcp.yaml")),
		LogLevel:       parseLogLevel(envOr("GEOSERVER_MCP_LOG_LEVEL", "info")),
	}
	return cfg, nil
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func parseLogLevel(s string) slog.Level {
	switch s {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// applyFlags parses --mode=X style flags from the args list.
func applyFlags(cfg *Config, args []string) {
	for _, arg := range args {
		if len(arg) > 7 && arg[:7] == "--mode=" {
			cfg.Mode = arg[7:]
		}
		if len(arg) > 7 && arg[:7] == "--addr=" {
			cfg.HTTPAddr = arg[7:]
		}
		if len(arg) > 5 && arg[:5] == "--db=" {
			cfg.DBPath = arg[5:]
		}
	}
}
