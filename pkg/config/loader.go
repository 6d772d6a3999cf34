package config

import (
	"errors"
	"fmt"
	"os"
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

var defaultEnvLoaded sync.Once

// Load populates the configuration struct from environment variables based
// on `env` field tags. A .env file in the working directory is loaded once
// per process before the first parse; its absence is not an error.
//
// Example:
//
//	type AgentConfig struct {
//		VisitsURL string `env:"BEACON_VISITS_URL" envDefault:"http://localhost:8080/ahoy/visits"`
//		Namespace string `env:"BEACON_NAMESPACE"`
//	}
//
//	var cfg AgentConfig
//	if err := config.Load(&cfg); err != nil {
//		// handle error
//	}
func Load[T any](v *T) error {
	if v == nil {
		return ErrNilPointer
	}

	defaultEnvLoaded.Do(func() {
		// the .env file is optional
		_ = godotenv.Load()
	})

	if err := env.Parse(v); err != nil {
		return errors.Join(ErrParsingConfig, err)
	}

	return nil
}

// MustLoad works like Load but panics if configuration loading fails.
// Useful for configurations the process cannot start without.
func MustLoad[T any](v *T) {
	if err := Load(v); err != nil {
		panic(fmt.Sprintf("failed to load required configuration: %v", err))
	}
}

// LoadFile decodes a YAML config file into v. File-based config suits
// deployables like the collector; library consumers usually stick to Load.
// Values already present in v survive keys absent from the file, so callers
// can decode over a default-filled struct.
func LoadFile[T any](path string, v *T) error {
	if v == nil {
		return ErrNilPointer
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return errors.Join(ErrReadingFile, err)
	}

	if err := yaml.Unmarshal(raw, v); err != nil {
		return errors.Join(ErrParsingFile, err)
	}

	return nil
}
