package config

import (
	"fmt"
	"os"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"gathering/internal/app/errors"
)

// ServerEnv holds the reply server settings taken from the environment
type ServerEnv struct {
	Addr      string `env:"GATHERING_ADDR" envDefault:"127.0.0.1:8787"`
	Database  string `env:"GATHERING_DB" envDefault:"replies.db"`
	SentryDSN string `env:"GATHERING_SENTRY_DSN"`
	Notify    bool   `env:"GATHERING_NOTIFY" envDefault:"true"`
}

// LoadServerEnv reads an optional .env file and parses the server settings
func LoadServerEnv(envFile string) (*ServerEnv, error) {
	if envFile == "" {
		envFile = EnvFile
	}

	if err := godotenv.Load(envFile); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("%w: %w", errors.ErrFailedToParseEnv, err)
	}

	var serverEnv ServerEnv
	if err := env.Parse(&serverEnv); err != nil {
		return nil, fmt.Errorf("%w: %w", errors.ErrFailedToParseEnv, err)
	}

	return &serverEnv, nil
}
