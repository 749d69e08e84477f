package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/CadoCordova/Tempero-Fechamento/internal/logging"

	"github.com/joho/godotenv"
)

// LoadEnv loads environment variables from the given .env files, or from
// ./.env when none is given. Variables already set in the environment win.
// It returns the files that were loaded.
func LoadEnv(files ...string) ([]string, error) {
	if len(files) == 0 {
		files = []string{".env"}
	}

	var loaded []string
	for _, file := range files {
		if _, err := os.Stat(file); err != nil {
			if errors.Is(err, os.ErrNotExist) {
				continue
			}
			return loaded, err
		}
		if err := godotenv.Load(file); err != nil {
			return loaded, fmt.Errorf("error loading %s: %w", file, err)
		}
		loaded = append(loaded, file)
	}
	return loaded, nil
}

// GetEnv retrieves an environment variable with a fallback value if not set
func GetEnv(key, fallback string) string {
	value, exists := os.LookupEnv(key)
	if !exists {
		return fallback
	}
	return value
}

// NewLogger builds the application logger from the log settings.
func NewLogger(config *Config) logging.Logger {
	return logging.NewLogrusAdapter(strings.ToLower(config.Log.Level), strings.ToLower(config.Log.Format))
}
