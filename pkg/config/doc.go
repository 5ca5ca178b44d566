// Package config loads configuration from environment variables into tagged
// structs.
//
// It wraps github.com/joho/godotenv for .env files and
// github.com/caarlos0/env/v11 for parsing:
//
//	type Config struct {
//	    LocalesDir string `env:"LOCALES_DIR"`
//	    Default    string `env:"DEFAULT_LOCALE" envDefault:"en"`
//	}
//
//	var cfg Config
//	if err := config.Load(&cfg); err != nil {
//	    return err
//	}
//
// Load reads ./.env when present. Variables already exported in the process
// take precedence over values from any file.
//
// Errors can be compared with errors.Is against ErrParsingConfig,
// ErrLoadingEnvFile and ErrNilPointer.
package config
