package config

import (
	"fmt"
	"os"
	"strconv"
)

type Config struct {
	Port          string
	DBPath        string
	Token         string
	Timezone      string
	RetentionDays int
}

func Load() (*Config, error) {
	retention, err := getEnvInt("DAYMIX_RETENTION_DAYS", 30)
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		Port:          getEnv("DAYMIX_PORT", "8080"),
		DBPath:        getEnv("DAYMIX_DB_PATH", ""),
		Token:         getEnv("DAYMIX_TOKEN", ""),
		Timezone:      getEnv("DAYMIX_TIMEZONE", "UTC"),
		RetentionDays: retention,
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) validate() error {
	if c.DBPath == "" {
		return fmt.Errorf("DAYMIX_DB_PATH is required")
	}
	if c.Token == "" {
		return fmt.Errorf("DAYMIX_TOKEN is required")
	}
	if c.RetentionDays < 1 {
		return fmt.Errorf("DAYMIX_RETENTION_DAYS must be at least 1")
	}
	return nil
}

// ValidToken reports whether a bearer token is accepted
func (c *Config) ValidToken(token string) bool {
	return token != "" && token == c.Token
}

func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

func getEnvInt(key string, defaultVal int) (int, error) {
	val := os.Getenv(key)
	if val == "" {
		return defaultVal, nil
	}
	n, err := strconv.Atoi(val)
	if err != nil {
		return 0, fmt.Errorf("%s must be an integer: %w", key, err)
	}
	return n, nil
}
