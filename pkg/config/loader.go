package config

import (
	"errors"
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

var dotenvOnce sync.Once

// Validator is implemented by config structs that check themselves after
// parsing.
type Validator interface {
	Validate() error
}

// Load parses the environment into a new T.
//
// The first call reads a .env file from the working directory when one
// exists; variables already set in the process win over the file. When T
// implements Validator its Validate method runs after parsing.
//
//	type Config struct {
//		Addr string        `env:"HTTP_ADDR" envDefault:":8080"`
//		TTL  time.Duration `env:"FORM_STATE_TTL" envDefault:"30m"`
//	}
//
//	cfg, err := config.Load[Config]()
func Load[T any]() (T, error) {
	dotenvOnce.Do(func() {
		_ = godotenv.Load()
	})
	return parse[T](env.Options{})
}

// LoadPrefixed is Load with every variable name prefixed.
func LoadPrefixed[T any](prefix string) (T, error) {
	dotenvOnce.Do(func() {
		_ = godotenv.Load()
	})
	return parse[T](env.Options{Prefix: prefix})
}

// LoadFiles reads the given .env files into the process environment.
// Missing files are an error, unlike the implicit .env lookup of Load.
func LoadFiles(files ...string) error {
	if len(files) == 0 {
		return nil
	}
	if err := godotenv.Load(files...); err != nil {
		return errors.Join(ErrLoadingEnvFile, err)
	}
	return nil
}

// MustLoad is Load that panics on error, for use in main.
func MustLoad[T any]() T {
	v, err := Load[T]()
	if err != nil {
		panic(err)
	}
	return v
}

func parse[T any](opts env.Options) (T, error) {
	var v T
	if err := env.ParseWithOptions(&v, opts); err != nil {
		return v, errors.Join(ErrParsingConfig, err)
	}
	if val, ok := any(&v).(Validator); ok {
		if err := val.Validate(); err != nil {
			return v, errors.Join(ErrInvalidConfig, err)
		}
	}
	return v, nil
}
