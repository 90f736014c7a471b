// Package config feeds the entrypoints' flag defaults from the environment. A .env file
// in the working directory is loaded first; variables already set in the process win.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Load reads the given .env files, or ./.env when none is named. Missing files are not an
// error.
func Load(filenames ...string) error {
	if err := godotenv.Load(filenames...); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("failed to load environment file: %w", err)
	}
	return nil
}

// String returns the variable or fallback when it is unset or empty
func String(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// Float parses the variable, returning fallback when it is unset or not a number
func Float(key string, fallback float64) float64 {
	v, err := strconv.ParseFloat(os.Getenv(key), 64)
	if err != nil {
		return fallback
	}
	return v
}

// Int parses the variable, returning fallback when it is unset or not a number
func Int(key string, fallback int) int {
	v, err := strconv.Atoi(os.Getenv(key))
	if err != nil {
		return fallback
	}
	return v
}
