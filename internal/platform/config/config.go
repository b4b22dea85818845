package config

import (
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	pkgstrings "verifydesk/pkg/platform/strings"
)

const (
	DefaultAddr     = ":8080"
	ShutdownTimeout = 10 * time.Second
)

// Server captures HTTP server level configuration.
type Server struct {
	Addr           string
	AdminToken     string
	AllowedOrigins []string
	LogLevel       slog.Level
	// DataAnchor pins the generated timeline. Zero keeps the dataset default.
	DataAnchor time.Time
}

// FromEnv builds a Server config from environment variables so main stays lean.
func FromEnv() (Server, error) {
	cfg := Server{
		Addr:           os.Getenv("VERIFYDESK_ADDR"),
		AdminToken:     os.Getenv("VERIFYDESK_ADMIN_TOKEN"),
		AllowedOrigins: pkgstrings.DedupeAndTrim(strings.Split(os.Getenv("VERIFYDESK_ALLOWED_ORIGINS"), ",")),
	}
	if cfg.Addr == "" {
		cfg.Addr = DefaultAddr
	}
	if len(cfg.AllowedOrigins) == 0 {
		cfg.AllowedOrigins = []string{"http://localhost:*"}
	}

	if raw := os.Getenv("VERIFYDESK_LOG_LEVEL"); raw != "" {
		if err := cfg.LogLevel.UnmarshalText([]byte(raw)); err != nil {
			return Server{}, fmt.Errorf("VERIFYDESK_LOG_LEVEL: %w", err)
		}
	}

	if raw := os.Getenv("VERIFYDESK_DATA_ANCHOR"); raw != "" {
		anchor, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			return Server{}, fmt.Errorf("VERIFYDESK_DATA_ANCHOR must be RFC3339: %w", err)
		}
		cfg.DataAnchor = anchor.UTC()
	}
	return cfg, nil
}
