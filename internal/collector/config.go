package collector

import "time"

// Config holds collector configuration. Values load from the environment
// and can be pre-filled from a YAML file.
type Config struct {
	// Addr is the listen address.
	Addr string `env:"COLLECTOR_ADDR" envDefault:":8080" yaml:"addr"`

	// DatabaseURL selects the postgres backend; empty falls back to the
	// in-memory backend, which suits local development only.
	DatabaseURL string `env:"DATABASE_URL" yaml:"database_url"`

	RetryAttempts int           `env:"COLLECTOR_DB_RETRY_ATTEMPTS" envDefault:"3" yaml:"db_retry_attempts"`
	RetryInterval time.Duration `env:"COLLECTOR_DB_RETRY_INTERVAL" envDefault:"5s" yaml:"db_retry_interval"`

	ShutdownTimeout time.Duration `env:"COLLECTOR_SHUTDOWN_TIMEOUT" envDefault:"10s" yaml:"shutdown_timeout"`

	// Environment picks logger defaults: "production" or anything else for
	// development.
	Environment string `env:"COLLECTOR_ENV" envDefault:"development" yaml:"environment"`
}
