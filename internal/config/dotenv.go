package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/joho/godotenv"
)

const defaultEnvFile = ".env"

func envFilePathFromEnv() string {
	if p := os.Getenv("ENV_FILE"); p != "" {
		return p
	}
	return defaultEnvFile
}

// loadDotEnv loads variables from a dotenv file into the process
// environment. Variables already set are not overridden. A missing default
// file is not an error; a missing explicitly named one is.
func loadDotEnv(path string) error {
	err := godotenv.Load(path)
	if err == nil {
		return nil
	}
	if errors.Is(err, fs.ErrNotExist) && path == defaultEnvFile {
		return nil
	}
	return fmt.Errorf("error loading env file %s: %w", path, err)
}
