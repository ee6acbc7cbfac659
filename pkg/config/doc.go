// Package config loads struct-typed configuration from environment variables
// using github.com/caarlos0/env/v11, with an optional .env file read through
// github.com/joho/godotenv.
//
// Each configuration type is parsed once per process and cached. Reset clears
// the cache, which tests use after changing the environment.
//
// Errors wrap ErrParsingConfig, ErrInvalidConfigType, ErrLoadingEnvFile or
// ErrNilPointer and can be checked with errors.Is.
package config
