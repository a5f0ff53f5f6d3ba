// Package config loads application configuration from environment
// variables.  Required values are enforced with must(); missing ones stop
// the process with a fatal log message before anything starts listening.
package config

import (
	"log"
	"os"
	"time"
)

// Config holds all runtime configuration values.  Each field corresponds
// to an environment variable.
type Config struct {
	Env        string        // application environment (e.g. "dev", "prod")
	Port       string        // HTTP port to listen on
	APIBaseURL string        // base URL of the remote collections API
	JWTSecret  string        // secret used to verify identity-provider tokens
	APITimeout time.Duration // per-request timeout for remote API calls
	SessionTTL time.Duration // idle lifetime of a calendar session
	AMQPURL    string        // RabbitMQ URL for booking-change events (empty disables)
}

// Load reads configuration from the environment.  APP_ENV, APP_PORT,
// API_BASE_URL and JWT_SECRET are required; the rest have defaults.
func Load() Config {
	return Config{
		Env:        must("APP_ENV"),
		Port:       must("APP_PORT"),
		APIBaseURL: must("API_BASE_URL"),
		JWTSecret:  must("JWT_SECRET"),
		APITimeout: envDur("API_TIMEOUT", 10*time.Second),
		SessionTTL: envDur("SESSION_TTL", 24*time.Hour),
		AMQPURL:    os.Getenv("RABBITMQ_URL"),
	}
}

// must retrieves a required environment variable or exits fatally.
func must(key string) string {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		log.Fatalf("missing required env var: %s", key)
	}
	return v
}
