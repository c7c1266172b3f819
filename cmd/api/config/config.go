package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

const (
	StoragePostgres = "postgres"
	StorageMemory   = "memory"
)

type Config struct {
	Env      string
	LogLevel string
	Port     int

	SecretKey    string
	FormTokenTTL time.Duration

	StorageDriver string
	DatabaseURL   string

	NotificationsEnabled bool
	NotificationsURL     string
	NotificationsTimeout time.Duration

	ShutdownTimeout time.Duration
}

// Load reads an optional .env file, then builds the configuration from the
// process environment. Variables already set in the environment win over
// the file.
func Load(envFiles ...string) (Config, error) {
	if len(envFiles) == 0 {
		envFiles = []string{".env"}
	}
	for _, f := range envFiles {
		err := godotenv.Load(f)
		if err != nil && !errors.Is(err, os.ErrNotExist) {
			return Config{}, fmt.Errorf("loading %s: %w", f, err)
		}
	}

	var err error
	cfg := Config{
		Env:              getEnv("APP_ENV", "development"),
		LogLevel:         getEnv("LOG_LEVEL", "info"),
		SecretKey:        os.Getenv("SECRET_KEY"),
		StorageDriver:    getEnv("STORAGE_DRIVER", StoragePostgres),
		DatabaseURL:      os.Getenv("DATABASE_URL"),
		NotificationsURL: os.Getenv("NOTIFICATIONS_URL"),
	}

	if cfg.Port, err = getEnvInt("PORT", 8080); err != nil {
		return Config{}, err
	}
	if cfg.FormTokenTTL, err = getEnvDuration("FORM_TOKEN_TTL", time.Hour); err != nil {
		return Config{}, err
	}
	if cfg.NotificationsEnabled, err = getEnvBool("NOTIFICATIONS_ENABLED", false); err != nil {
		return Config{}, err
	}
	if cfg.NotificationsTimeout, err = getEnvDuration("NOTIFICATIONS_TIMEOUT", 2*time.Second); err != nil {
		return Config{}, err
	}
	if cfg.ShutdownTimeout, err = getEnvDuration("HTTP_SHUTDOWN_TIMEOUT", 10*time.Second); err != nil {
		return Config{}, err
	}

	return cfg, cfg.validate()
}

func (cfg Config) validate() error {
	if cfg.SecretKey == "" {
		return errors.New("missing required env var: SECRET_KEY")
	}
	switch cfg.StorageDriver {
	case StoragePostgres:
		if cfg.DatabaseURL == "" {
			return errors.New("missing required env var: DATABASE_URL")
		}
	case StorageMemory:
	default:
		return fmt.Errorf("invalid STORAGE_DRIVER %q: must be %s or %s", cfg.StorageDriver, StoragePostgres, StorageMemory)
	}
	if cfg.Port <= 0 || cfg.Port > 65535 {
		return fmt.Errorf("invalid PORT %d", cfg.Port)
	}
	if cfg.FormTokenTTL <= 0 {
		return fmt.Errorf("invalid FORM_TOKEN_TTL %s: must be positive", cfg.FormTokenTTL)
	}
	if cfg.NotificationsEnabled && cfg.NotificationsURL == "" {
		return errors.New("NOTIFICATIONS_URL is required when NOTIFICATIONS_ENABLED is true")
	}
	return nil
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getEnvInt(key string, defaultValue int) (int, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("invalid int for %s: %q", key, value)
	}
	return n, nil
}

func getEnvBool(key string, defaultValue bool) (bool, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}
	b, err := strconv.ParseBool(value)
	if err != nil {
		return false, fmt.Errorf("invalid bool for %s: %q", key, value)
	}
	return b, nil
}

// Durations must carry a unit suffix, like "2s" or "1h".
func getEnvDuration(key string, defaultValue time.Duration) (time.Duration, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return 0, fmt.Errorf("invalid duration for %s: %q", key, value)
	}
	return d, nil
}
