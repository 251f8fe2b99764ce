package config

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config structure represents the tool configuration
type Config struct {
	Database struct {
		Host            string `yaml:"host" env:"DB_HOST"`
		Port            string `yaml:"port" env:"DB_PORT"`
		User            string `yaml:"user" env:"DB_USER"`
		Password        string `yaml:"password" env:"DB_PASSWORD"`
		DBName          string `yaml:"dbname" env:"DB_NAME"`
		SSLMode         string `yaml:"sslmode" env:"DB_SSLMODE"`
		MaxIdleConns    int    `yaml:"max_idle_conns" env:"DB_MAX_IDLE_CONNS"`
		MaxOpenConns    int    `yaml:"max_open_conns" env:"DB_MAX_OPEN_CONNS"`
		ConnMaxLifetime string `yaml:"conn_max_lifetime" env:"DB_CONN_MAX_LIFETIME"`
	} `yaml:"database"`

	Auth struct {
		AdminURL    string `yaml:"admin_url" env:"AUTH_ADMIN_URL"`
		ServiceKey  string `yaml:"service_key" env:"AUTH_SERVICE_KEY"`
		EmailDomain string `yaml:"email_domain" env:"AUTH_EMAIL_DOMAIN"`
		Password    string `yaml:"password" env:"AUTH_SEED_PASSWORD"`
	} `yaml:"auth"`

	Seeding struct {
		Seed     int64 `yaml:"seed" env:"SEED_RANDOM_SEED"`
		Students int   `yaml:"students" env:"SEED_STUDENT_COUNT"`
	} `yaml:"seeding"`

	Logging struct {
		Level  string `yaml:"level" env:"LOG_LEVEL"`
		Format string `yaml:"format" env:"LOG_FORMAT"`
	} `yaml:"logging"`
}

// LoadConfig loads configuration from a file and environment variables
func LoadConfig(configPath string) (*Config, error) {
	config := &Config{}
	setDefaults(config)

	// Try to read config file if it exists
	if _, err := os.Stat(configPath); err == nil {
		file, err := os.ReadFile(configPath)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}

		if err := yaml.Unmarshal(file, config); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	}

	// Override with environment variables
	if err := processStructFields(config); err != nil {
		return nil, fmt.Errorf("failed to load from environment: %w", err)
	}

	if err := validateConfig(config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return config, nil
}

// setDefaults sets default values for the configuration
func setDefaults(config *Config) {
	// Database defaults
	config.Database.Host = "localhost"
	config.Database.Port = "5432"
	config.Database.User = "postgres"
	config.Database.Password = "postgres"
	config.Database.DBName = "engage"
	config.Database.SSLMode = "disable"
	config.Database.MaxIdleConns = 2
	config.Database.MaxOpenConns = 5
	config.Database.ConnMaxLifetime = "1h"

	// Auth defaults (URL and key have no defaults; they must be provided)
	config.Auth.EmailDomain = "fbla.test"
	config.Auth.Password = "FBLA2024!"

	// Seeding defaults
	config.Seeding.Seed = 42
	config.Seeding.Students = 20

	// Logging defaults
	config.Logging.Level = "info"
	config.Logging.Format = "pretty"
}

// validateConfig ensures that the configuration is valid.
// Auth settings are validated separately because read-only commands
// never contact the identity provider.
func validateConfig(config *Config) error {
	if config.Database.Host == "" {
		return fmt.Errorf("database host is required")
	}

	if config.Database.DBName == "" {
		return fmt.Errorf("database name is required")
	}

	if config.Seeding.Students < 1 {
		return fmt.Errorf("student count must be at least 1")
	}

	if config.Auth.EmailDomain == "" {
		return fmt.Errorf("auth email domain is required")
	}

	return nil
}

// ValidateAuth checks the identity provider settings. Called before any
// command that needs the auth admin API; failures are fatal before any
// network call is made.
func (c *Config) ValidateAuth() error {
	if c.Auth.AdminURL == "" {
		return fmt.Errorf("auth admin URL is required (AUTH_ADMIN_URL)")
	}

	if !strings.HasPrefix(c.Auth.AdminURL, "http") {
		return fmt.Errorf("auth admin URL must start with http or https")
	}

	if c.Auth.ServiceKey == "" {
		return fmt.Errorf("auth service key is required (AUTH_SERVICE_KEY)")
	}

	return nil
}

// GetPostgresConnectionString returns postgres connection string
func (c *Config) GetPostgresConnectionString() string {
	sslMode := c.Database.SSLMode
	if sslMode == "" {
		sslMode = "disable"
	}

	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=%s",
		c.Database.User,
		c.Database.Password,
		c.Database.Host,
		c.Database.Port,
		c.Database.DBName,
		sslMode,
	)
}
