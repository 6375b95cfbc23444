// Package config loads typed configuration from environment variables.
//
// It wraps github.com/joho/godotenv for .env files and
// github.com/caarlos0/env/v11 for struct parsing. Parsed structs are cached
// per type, so repeated Load calls for the same type return the first
// result without re-reading the environment.
//
// # Usage
//
//	type Config struct {
//	    Language string `env:"SIMPLEVAL_LANGUAGE" envDefault:"en"`
//	}
//
//	if err := config.LoadEnv("./.env.local"); err != nil {
//	    return err
//	}
//
//	var cfg Config
//	if err := config.Load(&cfg); err != nil {
//	    return err
//	}
//
// # Testing
//
// ResetCache clears every cached type and Reload re-parses a single one,
// which is what tests need after t.Setenv.
package config
