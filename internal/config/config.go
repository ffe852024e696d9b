package config

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config is built once at startup and handed to the components that need
// it. Nothing reads the environment after Load returns.
type Config struct {
	Env  string
	Port int

	// bcrypt hash of the shared API key exchanged at /login.
	APIKeyHash string

	JWTSecret     string
	JWTExpiration time.Duration

	// Path of the JSON users file.
	DataFile string

	// OTLP gRPC endpoint; tracing is disabled when empty.
	OtelEndpoint string

	LoginRateLimit  int
	LoginRateWindow time.Duration
}

// Load reads configuration from the environment (an optional .env file is
// merged in first). The hashed credential, signing secret and token
// lifetime have no sane defaults, so a missing value is a startup error.
func Load() (Config, error) {
	// Missing .env is fine; real environments set vars directly.
	_ = godotenv.Load()

	cfg := Config{
		Env:             getEnv("APP_ENV", "dev"),
		Port:            getEnvInt("PORT", 8080),
		DataFile:        getEnv("DATA_FILE", "users.json"),
		OtelEndpoint:    getEnv("OTEL_EXPORTER_ENDPOINT", ""),
		LoginRateLimit:  getEnvInt("LOGIN_RATE_LIMIT", 10),
		LoginRateWindow: time.Duration(getEnvInt("LOGIN_RATE_WINDOW_SECONDS", 60)) * time.Second,
	}

	var err error

	cfg.APIKeyHash, err = requireEnv("API_KEY_HASH")
	if err != nil {
		return Config{}, err
	}

	cfg.JWTSecret, err = requireEnv("JWT_SECRET")
	if err != nil {
		return Config{}, err
	}

	rawMinutes, err := requireEnv("JWT_EXPIRATION_MINUTES")
	if err != nil {
		return Config{}, err
	}

	minutes, err := strconv.Atoi(rawMinutes)
	if err != nil || minutes <= 0 {
		return Config{}, fmt.Errorf("JWT_EXPIRATION_MINUTES must be a positive integer, got %q", rawMinutes)
	}
	cfg.JWTExpiration = time.Duration(minutes) * time.Minute

	return cfg, nil
}

func WithTimeout(duration time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), duration)
}

func requireEnv(key string) (string, error) {
	v := os.Getenv(key)

	if v == "" {
		return "", fmt.Errorf("required environment variable %s is not set", key)
	}

	return v, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}

	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		num, err := strconv.Atoi(v)

		if err != nil {
			return fallback
		}

		return num
	}
	return fallback
}
