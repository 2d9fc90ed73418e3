// Package config holds the environment-driven configuration for schedsync.
package config

// AppConfig is the main application configuration struct that composes
// domain-specific configuration from separate files.
//
// Configuration is loaded from environment variables using the
// github.com/caarlos0/env library. See individual domain config files for
// details on available environment variables:
//   - database.go: Database and cache configuration
//   - http.go: HTTP server configuration
//   - merge.go: Merge engine batching configuration
//   - capacity.go: Capacity analytics configuration
type AppConfig struct {
	// IsDev controls development mode behavior (verbose logging, dev defaults).
	IsDev bool `env:"DEV" envDefault:"false"`

	// Database configuration
	Postgres DBConfig    `envPrefix:"DB_"`
	Redis    RedisConfig `envPrefix:"REDIS_"`

	// HTTP server configuration
	HTTP HTTPConfig

	// Merge engine configuration
	Merge MergeConfig

	// Capacity analytics configuration
	Capacity CapacityConfig
}

// Sanitize applies guardrails to configuration values loaded from env.
// This should be called after loading configuration from environment variables.
func (c *AppConfig) Sanitize() {
	c.HTTP.Sanitize()
	c.Merge.Sanitize()
	c.Capacity.Sanitize()
}
