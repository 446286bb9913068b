package config

import (
	"fmt"
	"log"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config carries everything the process needs. It is built once in main
// and passed by reference into every constructor; no other package reads
// the environment.
type Config struct {
	HTTPPort string `env:"PORT" envDefault:"8000"`

	// Either a full DSN, or the discrete parts below.
	DatabaseDSN string `env:"DATABASE_URL"`
	DBHost      string `env:"DB_HOST" envDefault:"localhost"`
	DBUser      string `env:"DB_USER" envDefault:"postgres"`
	DBPassword  string `env:"DB_PASSWORD" envDefault:"postgres"`
	DBName      string `env:"DB_NAME" envDefault:"dairybooks"`
	DBPort      string `env:"DB_PORT" envDefault:"5432"`

	JWTSecret string        `env:"JWT_SECRET" envDefault:"change-me-in-production"`
	JWTTTL    time.Duration `env:"JWT_TTL" envDefault:"24h"`

	CORSOrigins string `env:"CORS_ALLOWED_ORIGINS" envDefault:"http://localhost:6001"`
}

// Load reads .env (if present) and the process environment.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found, relying on system env")
	}

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}

	if cfg.JWTSecret == "change-me-in-production" {
		log.Println("Warning: JWT_SECRET not set, using insecure default")
	}

	return cfg, nil
}

// DSN returns the Postgres connection string, assembling it from the
// discrete DB_* parts when DATABASE_URL is not set.
func (c *Config) DSN() string {
	if c.DatabaseDSN != "" {
		return c.DatabaseDSN
	}
	return fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
		c.DBHost, c.DBUser, c.DBPassword, c.DBName, c.DBPort,
	)
}
