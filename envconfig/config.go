package envconfig

import (
	"log/slog"
	"os"
	"strings"
)

var (
	// Set via CPUDUMP_DEBUG in the environment
	Debug bool
)

// Clean quotes and spaces from the value
func clean(key string) string {
	return strings.Trim(os.Getenv(key), "\"' ")
}

// LogLevel returns the slog level selected by the environment.
func LogLevel() slog.Level {
	if Debug {
		return slog.LevelDebug
	}
	return slog.LevelInfo
}

func LoadConfig() {
	if debug := clean("CPUDUMP_DEBUG"); debug != "" {
		Debug = true
	}
}

func init() {
	LoadConfig()
}
