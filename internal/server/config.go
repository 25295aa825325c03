package server

import (
	"os"
	"strings"
	"time"
)

// Config holds the generation server configuration.
type Config struct {
	// Addr is the listen address. Default ":8000".
	Addr string

	// AllowOrigins lists the browser origins allowed by CORS.
	AllowOrigins []string

	// Mode is the gin mode: "debug", "release" or "test".
	Mode string

	// Version is reported by the health endpoint.
	Version string

	// ReadTimeout bounds reading a request. WriteTimeout must cover a full
	// LLM generation, retries included.
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	ShutdownTimeout time.Duration

	// MaxBodyBytes limits the size of a note submission.
	MaxBodyBytes int64
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		Addr:            ":8000",
		AllowOrigins:    []string{"http://localhost:5173"},
		Mode:            "release",
		Version:         "(devel)",
		ReadTimeout:     10 * time.Second,
		WriteTimeout:    2 * time.Minute,
		ShutdownTimeout: 15 * time.Second,
		MaxBodyBytes:    1 << 20,
	}
}

// ConfigFromEnv builds a Config from environment variables, falling back
// to defaults for unset values.
func ConfigFromEnv() Config {
	cfg := DefaultConfig()

	if a := os.Getenv("NOTEQUIZ_ADDR"); a != "" {
		cfg.Addr = a
	}
	if o := os.Getenv("NOTEQUIZ_CORS_ORIGINS"); o != "" {
		var origins []string
		for _, s := range strings.Split(o, ",") {
			if s = strings.TrimSpace(s); s != "" {
				origins = append(origins, s)
			}
		}
		if len(origins) > 0 {
			cfg.AllowOrigins = origins
		}
	}
	if m := os.Getenv("NOTEQUIZ_GIN_MODE"); m != "" {
		cfg.Mode = m
	}

	return cfg
}
