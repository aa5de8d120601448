package config

import (
	"fmt"
	"os"

	"github.com/caarlos0/env/v6"
	"github.com/joho/godotenv"
)

type Config struct {
	DatabaseURL string `env:"DATABASE_URL,required"`
	JWTSecret   string `env:"JWT_SECRET,required"`
	ServerPort  string `env:"SERVER_PORT" envDefault:"8080"`

	AWSRegion          string `env:"AWS_REGION"`
	AWSAccessKeyID     string `env:"AWS_ACCESS_KEY_ID"`
	AWSSecretAccessKey string `env:"AWS_SECRET_ACCESS_KEY"`
	S3Bucket           string `env:"S3_BUCKET"`
	S3Prefix           string `env:"S3_PREFIX"`
	S3Endpoint         string `env:"S3_ENDPOINT"`
	S3PublicBaseURL    string `env:"S3_PUBLIC_BASE_URL"`
	S3SignedURLExpiry  int    `env:"S3_SIGNED_URL_EXPIRES_IN" envDefault:"3600"`
}

// Load reads a .env file when one is present, then parses the
// environment. Missing required variables fail startup.
func Load() (*Config, error) {
	if _, err := os.Stat(".env"); err == nil {
		if err := godotenv.Load(); err != nil {
			return nil, fmt.Errorf("loading .env: %w", err)
		}
	}

	cfg := Config{}
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("parsing environment: %w", err)
	}

	return &cfg, nil
}

func (c *Config) Addr() string {
	return fmt.Sprintf(":%s", c.ServerPort)
}
