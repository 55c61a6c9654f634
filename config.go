// Runtime configuration: config directory, timing and logging from the environment.
package main

import (
	"log"
	"os"
	"path/filepath"
	"time"
)

// Config is resolved once at startup.
type Config struct {
	ConfigDir     string
	SettingsPath  string
	CatalogPath   string
	CrashDelay    time.Duration
	ToastDuration time.Duration
	Debug         bool
	LogPath       string
}

// loadConfig resolves configuration from VENTURA_SIM_* variables and XDG paths.
func loadConfig() Config {
	home, err := os.UserHomeDir()
	if err != nil {
		// Fall back to /tmp if home directory is unavailable
		home = "/tmp"
	}

	dir := os.Getenv("VENTURA_SIM_CONFIG_DIR")
	if dir == "" {
		// Config dir follows XDG
		xdgConfig := os.Getenv("XDG_CONFIG_HOME")
		if xdgConfig == "" {
			xdgConfig = filepath.Join(home, ".config")
		}
		dir = filepath.Join(xdgConfig, "ventura-sim")
	}

	cfg := Config{
		ConfigDir:     dir,
		SettingsPath:  filepath.Join(dir, "settings.env"),
		CatalogPath:   filepath.Join(dir, "catalog.yaml"),
		CrashDelay:    envDuration("VENTURA_SIM_CRASH_DELAY", DefaultCrashDelay),
		ToastDuration: envDuration("VENTURA_SIM_TOAST_DURATION", DefaultToastDuration),
		Debug:         os.Getenv("VENTURA_SIM_DEBUG") != "",
		LogPath:       os.Getenv("VENTURA_SIM_LOG"),
	}
	if cfg.LogPath == "" {
		cfg.LogPath = "ventura-sim.log"
	}
	return cfg
}

// envDuration parses a positive duration from key, falling back to def.
func envDuration(key string, def time.Duration) time.Duration {
	raw := os.Getenv(key)
	if raw == "" {
		return def
	}
	d, err := time.ParseDuration(raw)
	if err != nil || d <= 0 {
		log.Printf("Config: invalid %s=%q, using %s", key, raw, def)
		return def
	}
	return d
}
