package utils

import (
	"os"
	"path/filepath"

	"github.com/joho/godotenv"

	"github.com/kelsos/tasktracker/internal/logger"
)

// LoadEnvironment loads variables from .env files. The given files are tried
// first, then .env in the working directory and next to the executable.
// Variables that are already set are never overwritten.
func LoadEnvironment(files ...string) []string {
	candidates := append([]string{}, files...)
	candidates = append(candidates, ".env")

	if execPath, err := os.Executable(); err == nil {
		candidates = append(candidates, filepath.Join(filepath.Dir(execPath), ".env"))
	} else {
		logger.Debug("Could not determine executable path: %v", err)
	}

	var loaded []string
	for _, path := range candidates {
		if _, err := os.Stat(path); err != nil {
			continue
		}
		if err := godotenv.Load(path); err != nil {
			logger.Warn("Failed to load env file %s: %v", path, err)
			continue
		}
		logger.Debug("Loaded env file %s", path)
		loaded = append(loaded, path)
	}

	return loaded
}
