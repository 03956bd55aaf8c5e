package app

import (
	"os"
	"strconv"
)

// AppID identifies the application to the desktop runtime and names its
// per-user data directory.
const AppID = "com.gradebook.desktop"

// Config holds application-wide configuration.
type Config struct {
	// Debug enables debug logging and source locations
	Debug bool

	// Headless runs only the document bridge, without a window
	Headless bool

	// StoragePath overrides the directory holding grade_data.json
	StoragePath string

	// FyneStorage keeps grade_data.json in the Fyne app's own storage root
	// instead of the platform data directory. Ignored when headless.
	FyneStorage bool

	// BridgeAddr is the loopback address for the gRPC document bridge.
	// Empty disables the bridge.
	BridgeAddr string
}

// DefaultConfig returns a configuration with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Debug:       false,
		Headless:    false,
		StoragePath: "", // resolved from the platform data directory
		FyneStorage: false,
		BridgeAddr:  "",
	}
}

// ConfigFromEnv creates a configuration from environment variables:
// GRADEBOOK_DEBUG, GRADEBOOK_HEADLESS, GRADEBOOK_STORAGE_PATH,
// GRADEBOOK_FYNE_STORAGE and GRADEBOOK_BRIDGE_ADDR. Unparseable booleans are ignored.
func ConfigFromEnv() *Config {
	cfg := DefaultConfig()

	cfg.Debug = envBool("GRADEBOOK_DEBUG", cfg.Debug)
	cfg.Headless = envBool("GRADEBOOK_HEADLESS", cfg.Headless)
	cfg.FyneStorage = envBool("GRADEBOOK_FYNE_STORAGE", cfg.FyneStorage)

	if storagePath := os.Getenv("GRADEBOOK_STORAGE_PATH"); storagePath != "" {
		cfg.StoragePath = storagePath
	}
	if addr := os.Getenv("GRADEBOOK_BRIDGE_ADDR"); addr != "" {
		cfg.BridgeAddr = addr
	}

	// Headless mode is only reachable through the bridge.
	if cfg.Headless && cfg.BridgeAddr == "" {
		cfg.BridgeAddr = "127.0.0.1:0"
	}

	return cfg
}

func envBool(key string, fallback bool) bool {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return fallback
	}
	return v
}
