package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// DefaultEnvFile is read by Load when it exists in the working directory.
const DefaultEnvFile = ".env"

// LoadEnv reads the given .env files into the process environment. Variables
// that are already set are never overwritten, and earlier files win over later
// ones. A missing file is an error.
func LoadEnv(paths ...string) error {
	if len(paths) == 0 {
		return nil
	}
	if err := godotenv.Load(paths...); err != nil {
		return errors.Join(ErrLoadingEnvFile, err)
	}
	return nil
}

// Load parses environment variables into v based on its `env` struct tags.
//
// The optional ./.env file is read first. Pass envFiles to read specific files
// instead; those must exist.
//
// Example:
//
//	type CLIConfig struct {
//		LocalesDir    string `env:"LOCALES_DIR"`
//		DefaultLocale string `env:"DEFAULT_LOCALE" envDefault:"en"`
//	}
//
//	var cfg CLIConfig
//	if err := config.Load(&cfg); err != nil {
//		return err
//	}
func Load[T any](v *T, envFiles ...string) error {
	if v == nil {
		return ErrNilPointer
	}

	if len(envFiles) > 0 {
		if err := LoadEnv(envFiles...); err != nil {
			return err
		}
	} else if _, err := os.Stat(DefaultEnvFile); err == nil {
		if err := LoadEnv(DefaultEnvFile); err != nil {
			return err
		}
	}

	if err := env.Parse(v); err != nil {
		return errors.Join(ErrParsingConfig, err)
	}
	return nil
}

// MustLoad works like Load but panics if configuration loading fails.
func MustLoad[T any](v *T, envFiles ...string) {
	if err := Load(v, envFiles...); err != nil {
		panic(fmt.Sprintf("failed to load required configuration: %v", err))
	}
}
