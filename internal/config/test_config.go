package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// LoadTestConfig loads the configuration from the .env file or environment variables for integration tests
// If .env file doesn't exist or environment variables are not set, returns a Config with empty values
// so that DSN() is empty and integration tests can skip
func LoadTestConfig() (*Config, error) {
	// Try loading from project root first, then from the working directory
	_ = godotenv.Load("../../.env")
	_ = godotenv.Load()

	cfg := &Config{
		JWT: JWTConfig{
			Secret:      os.Getenv("TEST_JWT_SECRET"),
			TokenExpiry: 24 * time.Hour,
		},
		BcryptCost: 4,
	}
	if cfg.JWT.Secret == "" {
		cfg.JWT.Secret = "integration-test-secret-key-0123456789abcdef"
	}

	dbHost := os.Getenv("TEST_DB_HOST")
	dbPortStr := os.Getenv("TEST_DB_PORT")
	dbUser := os.Getenv("TEST_DB_USER")
	dbPassword := os.Getenv("TEST_DB_PASSWORD")
	dbName := os.Getenv("TEST_DB_NAME")
	if dbHost == "" || dbPortStr == "" || dbUser == "" || dbName == "" {
		// Return empty database section to signal that no test database is configured
		return cfg, nil
	}

	dbPort, err := strconv.Atoi(dbPortStr)
	if err != nil {
		return nil, fmt.Errorf("invalid TEST_DB_PORT: %w", err)
	}

	cfg.Database = DatabaseConfig{
		Host:         dbHost,
		Port:         dbPort,
		User:         dbUser,
		Password:     dbPassword,
		DBName:       dbName,
		MaxOpenConns: 25,
		MaxIdleConns: 5,
	}

	return cfg, nil
}
