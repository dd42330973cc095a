package mcpserver

import (
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"
)

// serverConfig holds all configurable MCP server defaults.
// Loaded once at startup from environment variables via loadConfig().
type serverConfig struct {
	// HTTP settings for live checks and probe requests.
	HTTPTimeout     time.Duration
	UserAgent       string
	AllowPrivateIPs bool

	// ExtraHeaders are additional deprecation header names, merged with
	// the built-in defaults.
	ExtraHeaders []string

	// MaxInlineSize caps inline document content, in bytes.
	MaxInlineSize int
}

// cfg is the active server configuration, initialized at package load time.
var cfg = loadConfig()

// loadConfig reads configuration from DEPPROBE_* environment variables.
// Invalid values log a warning and fall back to the hardcoded default.
func loadConfig() *serverConfig {
	return &serverConfig{
		HTTPTimeout:     envDuration("DEPPROBE_HTTP_TIMEOUT", 30*time.Second),
		UserAgent:       envString("DEPPROBE_USER_AGENT", ""),
		AllowPrivateIPs: envBool("DEPPROBE_ALLOW_PRIVATE_IPS", false),
		ExtraHeaders:    envList("DEPPROBE_EXTRA_HEADERS"),
		MaxInlineSize:   envInt("DEPPROBE_MAX_INLINE_SIZE", 4<<20),
	}
}

func envString(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envBool(key string, fallback bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		slog.Warn("invalid bool env var, using default", "key", key, "value", v, "default", fallback)
		return fallback
	}
	return b
}

func envInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		slog.Warn("invalid int env var, using default", "key", key, "value", v, "default", fallback)
		return fallback
	}
	return n
}

func envDuration(key string, fallback time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil || d <= 0 {
		slog.Warn("invalid duration env var, using default", "key", key, "value", v, "default", fallback)
		return fallback
	}
	return d
}

// envList reads a comma-separated list, trimming whitespace and dropping
// empty elements.
func envList(key string) []string {
	v := os.Getenv(key)
	if v == "" {
		return nil
	}
	var out []string
	for _, item := range strings.Split(v, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}
