// Package config loads typed configuration from the environment.
//
// It combines github.com/joho/godotenv, which reads an optional .env file,
// with github.com/caarlos0/env/v11, which parses variables into a struct by
// field tags. Each concern keeps its own struct (HTTP server, redis, app) and
// loads it with Load. Structs that implement Validator are checked after
// parsing, and both failure kinds can be told apart with errors.Is:
// ErrParsingConfig and ErrInvalidConfig.
package config
