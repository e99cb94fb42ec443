// Package config reads process configuration from the environment, after
// loading an optional .env file.
package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config is the resolved process configuration.
type Config struct {
	Port            string
	LabName         string
	LogMode         string
	SeedFile        string
	LookupDelay     time.Duration
	LookupTimeout   time.Duration
	AllowedOrigins  []string
	ShutdownTimeout time.Duration
}

// Load reads .env if present and then the environment. Unset variables take
// their defaults; malformed durations are an error.
func Load() (Config, error) {
	_ = godotenv.Load()
	return FromEnv(os.Getenv)
}

// FromEnv resolves a Config through getenv.
func FromEnv(getenv func(string) string) (Config, error) {
	cfg := Config{
		Port:     or(getenv("SERVER_PORT"), "8080"),
		LabName:  or(getenv("LAB_NAME"), "Lab dashboard"),
		LogMode:  or(getenv("LOG_MODE"), "dev"),
		SeedFile: getenv("SEED_FILE"),
	}
	var err error
	if cfg.LookupDelay, err = duration(getenv, "PAGE_LOOKUP_DELAY", 300*time.Millisecond); err != nil {
		return Config{}, err
	}
	if cfg.LookupTimeout, err = duration(getenv, "PAGE_LOOKUP_TIMEOUT", 2*time.Second); err != nil {
		return Config{}, err
	}
	if cfg.ShutdownTimeout, err = duration(getenv, "SHUTDOWN_TIMEOUT", 10*time.Second); err != nil {
		return Config{}, err
	}
	for _, o := range strings.Split(getenv("ALLOWED_ORIGINS"), ",") {
		if o = strings.TrimSpace(o); o != "" {
			cfg.AllowedOrigins = append(cfg.AllowedOrigins, o)
		}
	}
	return cfg, nil
}

func or(v, def string) string {
	if v == "" {
		return def
	}
	return v
}

func duration(getenv func(string) string, key string, def time.Duration) (time.Duration, error) {
	raw := getenv(key)
	if raw == "" {
		return def, nil
	}
	d, err := time.ParseDuration(raw)
	if err != nil {
		return 0, fmt.Errorf("config: %s: %w", key, err)
	}
	if d < 0 {
		return 0, fmt.Errorf("config: %s must not be negative", key)
	}
	return d, nil
}
