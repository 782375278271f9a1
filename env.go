package main

import (
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/joho/godotenv"
)

// loadEnv pulls in a .env file when one exists; otherwise the system
// environment stands as is.
func loadEnv() {
	if err := godotenv.Load(); err != nil {
		log.Debug("no .env file found, using the system environment")
	}
}

func envBool(key string, def bool) bool {
	value, exists := os.LookupEnv(key)
	if !exists {
		return def
	}
	if value == "true" || value == "false" {
		return value == "true"
	}
	return def
}

func envDuration(key string, def time.Duration) time.Duration {
	value, exists := os.LookupEnv(key)
	if !exists {
		return def
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		log.Warn("ignoring a malformed duration", "key", key, "value", value)
		return def
	}
	return d
}
