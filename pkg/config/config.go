package config

import (
	"fmt"
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// defaultJWTSecret is only acceptable outside production
const defaultJWTSecret = "change-me-in-production"

// Config holds application configuration
type Config struct {
	Server     ServerConfig     `envconfig:"SERVER"`
	Database   DatabaseConfig   `envconfig:"DB"`
	Redis      RedisConfig      `envconfig:"REDIS"`
	JWT        JWTConfig        `envconfig:"JWT"`
	Storage    StorageConfig    `envconfig:"STORAGE"`
	NATS       NATSConfig       `envconfig:"NATS"`
	Engagement EngagementConfig `envconfig:"ENGAGEMENT"`
}

// ServerConfig holds server configuration
type ServerConfig struct {
	Host            string        `split_words:"true" default:"0.0.0.0"`
	Port            int           `split_words:"true" default:"8080"`
	Environment     string        `split_words:"true" default:"development"`
	AllowedOrigins  []string      `split_words:"true" default:"http://localhost:3000"`
	ShutdownTimeout time.Duration `split_words:"true" default:"10s"`
}

// DatabaseConfig holds database configuration
type DatabaseConfig struct {
	Host         string `split_words:"true" default:"localhost"`
	Port         int    `split_words:"true" default:"5432"`
	User         string `split_words:"true" default:"postgres"`
	Password     string `split_words:"true" default:"postgres"`
	Name         string `split_words:"true" default:"engagement_tracker"`
	SSLMode      string `split_words:"true" default:"disable"`
	MaxOpenConns int    `split_words:"true" default:"25"`
	MaxIdleConns int    `split_words:"true" default:"5"`
	AutoMigrate  bool   `split_words:"true" default:"true"`
}

// DSN returns the Postgres connection string
func (c DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s TimeZone=UTC",
		c.Host, c.Port, c.User, c.Password, c.Name, c.SSLMode)
}

// RedisConfig holds Redis configuration
type RedisConfig struct {
	Enabled  bool   `split_words:"true" default:"false"`
	Host     string `split_words:"true" default:"localhost"`
	Port     int    `split_words:"true" default:"6379"`
	Password string `split_words:"true"`
	DB       int    `split_words:"true" default:"0"`
}

// JWTConfig holds JWT configuration
type JWTConfig struct {
	Secret string        `split_words:"true" default:"change-me-in-production"`
	Expiry time.Duration `split_words:"true" default:"24h"`
}

// StorageConfig holds object storage configuration for engagement reports
type StorageConfig struct {
	Enabled         bool   `split_words:"true" default:"false"`
	Endpoint        string `split_words:"true" default:"localhost:9000"`
	AccessKeyID     string `split_words:"true" default:"minioadmin"`
	SecretAccessKey string `split_words:"true" default:"minioadmin"`
	BucketName      string `split_words:"true" default:"engagement-reports"`
	UseSSL          bool   `split_words:"true" default:"false"`
}

// NATSConfig holds event publishing configuration
type NATSConfig struct {
	Enabled bool   `split_words:"true" default:"false"`
	URL     string `split_words:"true" default:"nats://localhost:4222"`
	Token   string `split_words:"true"`
	Subject string `split_words:"true" default:"engagement.computed"`
}

// EngagementConfig holds scoring policy settings
type EngagementConfig struct {
	SilentThreshold int `split_words:"true" default:"60"`
}

// Load loads configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if exists (ignore error if file doesn't exist)
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found, using environment variables or defaults")
	}

	var config Config
	if err := envconfig.Process("", &config); err != nil {
		return nil, fmt.Errorf("failed to read environment: %w", err)
	}

	// Validate required fields
	if err := config.Validate(); err != nil {
		return nil, err
	}

	return &config, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("SERVER_PORT must be between 1 and 65535")
	}
	if c.JWT.Secret == "" {
		return fmt.Errorf("JWT_SECRET is required")
	}
	if c.IsProduction() && c.JWT.Secret == defaultJWTSecret {
		return fmt.Errorf("JWT_SECRET must be set in production")
	}
	if c.JWT.Expiry <= 0 {
		return fmt.Errorf("JWT_EXPIRY must be positive")
	}
	if c.Engagement.SilentThreshold < 0 {
		return fmt.Errorf("ENGAGEMENT_SILENT_THRESHOLD must not be negative")
	}
	if c.Storage.Enabled && (c.Storage.Endpoint == "" || c.Storage.BucketName == "") {
		return fmt.Errorf("STORAGE_ENDPOINT and STORAGE_BUCKET_NAME are required when storage is enabled")
	}
	if c.NATS.Enabled && c.NATS.URL == "" {
		return fmt.Errorf("NATS_URL is required when NATS is enabled")
	}
	return nil
}

// IsProduction reports whether the server runs in production
func (c *Config) IsProduction() bool {
	return c.Server.Environment == "production"
}

// Address returns the host:port the HTTP server listens on
func (c *Config) Address() string {
	return fmt.Sprintf("%s:%d", c.Server.Host, c.Server.Port)
}
