package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

// Config holds all application configuration
type Config struct {
	BotToken string
	Timezone string
	Price    DocumentConfig
	Contract DocumentConfig
	Database DatabaseConfig
}

// DocumentConfig points to a static document: a local file and an
// optional URL that takes precedence over it.
type DocumentConfig struct {
	FilePath string
	URL      string
}

// DatabaseConfig holds database connection settings
type DatabaseConfig struct {
	Host     string
	Port     string
	Name     string
	User     string
	Password string
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	// Try to load .env file (ignore error if not exists)
	_ = godotenv.Load()

	cfg := &Config{
		BotToken: os.Getenv("BOT_TOKEN"),
		Timezone: getEnv("TIMEZONE", "Europe/Samara"),
		Price: DocumentConfig{
			FilePath: getEnv("PRICE_FILE_PATH", "files/price.pdf"),
			URL:      os.Getenv("PRICE_URL"),
		},
		Contract: DocumentConfig{
			FilePath: getEnv("CONTRACT_FILE_PATH", "files/contract.pdf"),
			URL:      os.Getenv("CONTRACT_URL"),
		},
		Database: DatabaseConfig{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnv("DB_PORT", "5432"),
			Name:     getEnv("DB_NAME", "toolrent"),
			User:     getEnv("DB_USER", "toolrent"),
			Password: os.Getenv("DB_PASSWORD"),
		},
	}

	// Validate required fields
	if cfg.BotToken == "" {
		return nil, fmt.Errorf("BOT_TOKEN is required")
	}
	if cfg.Database.Password == "" {
		return nil, fmt.Errorf("DB_PASSWORD is required")
	}

	return cfg, nil
}

// DSN returns PostgreSQL connection string
func (c *Config) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		c.Database.Host,
		c.Database.Port,
		c.Database.User,
		c.Database.Password,
		c.Database.Name,
	)
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
