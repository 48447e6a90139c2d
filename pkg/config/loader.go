package config

import (
	"errors"
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

var (
	// ErrNilPointer is returned when Load receives a nil destination
	ErrNilPointer = errors.New("config.nil_pointer")

	// ErrParsingConfig is returned when the environment cannot be parsed
	// into the destination struct
	ErrParsingConfig = errors.New("config.parsing_failed")
)

var loadDotEnv sync.Once

// Load populates v from the environment. The default .env file is loaded
// once per process before the first parse; a missing .env file is not an
// error.
func Load[T any](v *T) error {
	if v == nil {
		return ErrNilPointer
	}

	loadDotEnv.Do(func() {
		_ = godotenv.Load()
	})

	if err := env.Parse(v); err != nil {
		return errors.Join(ErrParsingConfig, err)
	}
	return nil
}

// MustLoad is Load that panics on failure, for wiring done at startup.
func MustLoad[T any](v *T) {
	if err := Load(v); err != nil {
		panic(err)
	}
}
