package locale

import (
	"log/slog"
	"path/filepath"
)

// Config holds the settings of a Builder.
type Config struct {
	// LocalesDir is the directory, relative to the project root, that holds
	// the locale files.
	LocalesDir string
	// Patterns select locale files inside LocalesDir (gitignore syntax).
	Patterns []string
	// Logger receives progress records. Nil discards them.
	Logger *slog.Logger
}

// DefaultConfig returns the default configuration: every .yml and .yaml
// file under config/locales.
func DefaultConfig() Config {
	return Config{
		LocalesDir: filepath.Join("config", "locales"),
		Patterns:   []string{"**/*.yml", "**/*.yaml"},
		Logger:     slog.New(slog.DiscardHandler),
	}
}
