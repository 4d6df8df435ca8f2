package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	App struct {
		Name string `envconfig:"APP_NAME" default:"Spendo"`
		Port int    `envconfig:"PORT" default:"8080"`
	}

	// Storage selects the key-value backend: postgres, sqlite, file or
	// memory.
	Storage struct {
		Backend    string `envconfig:"STORAGE_BACKEND" default:"memory"`
		SQLitePath string `envconfig:"SQLITE_PATH" default:"spendo.db"`
		FilePath   string `envconfig:"FILE_STORE_PATH" default:"spendo.json"`
	}

	DB struct {
		Host     string `envconfig:"DB_HOST" default:"localhost"`
		Port     int    `envconfig:"DB_PORT" default:"5432"`
		User     string `envconfig:"DB_USER" default:"postgres"`
		Password string `envconfig:"DB_PASSWORD" default:""`
		Name     string `envconfig:"DB_NAME" default:"spendo"`
	}

	Server struct {
		Timeout time.Duration `envconfig:"SERVER_TIMEOUT" default:"30s"`
	}

	Auth struct {
		JWTSecret string        `envconfig:"JWT_SECRET" default:"dev-secret-change-me"`
		TokenTTL  time.Duration `envconfig:"TOKEN_TTL" default:"24h"`
	}

	AMQP struct {
		URL      string `envconfig:"AMQP_URL"`
		Exchange string `envconfig:"AMQP_EXCHANGE" default:"spendo"`
		Queue    string `envconfig:"AMQP_QUEUE" default:"transaction_created"`
	}

	Receipt struct {
		StubDelay time.Duration `envconfig:"RECEIPT_STUB_DELAY" default:"0s"`
	}
}

func (c *Config) ConnectionString() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=disable",
		c.DB.User, c.DB.Password, c.DB.Host, c.DB.Port, c.DB.Name)
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to process config: %w", err)
	}

	return &cfg, nil
}
