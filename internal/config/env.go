package config

import (
	"errors"
	"io/fs"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Environment variables read by the servers.
const (
	EnvSSHHost = "NEONPONG_SSH_HOST"
	EnvSSHPort = "NEONPONG_SSH_PORT"
	EnvWebAddr = "NEONPONG_WEB_ADDR"
	EnvDBPath  = "NEONPONG_DB"
)

// LoadEnv loads variables from the given .env files (default ".env") into
// the process environment. Variables already set win. A missing file is
// not an error.
func LoadEnv(files ...string) error {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		if err := godotenv.Load(f); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return err
		}
	}
	return nil
}

// GetEnv returns the value of key, or fallback when unset or empty.
func GetEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// GetEnvInt returns key parsed as an integer, or fallback when unset or
// malformed.
func GetEnvInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}
