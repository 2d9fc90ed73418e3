package config

import "time"

// CapacityConfig contains capacity analytics configuration.
type CapacityConfig struct {
	// DefaultWorkingHoursPerDay is used for machines without an explicit
	// setting. 24 assumes continuous duty; single-shift shops set 8.
	DefaultWorkingHoursPerDay float64 `env:"CAPACITY_WORKING_HOURS_PER_DAY" envDefault:"24"`

	// LeadingGapMinHours is the minimum size of the idle window between now
	// and a machine's first scheduled job.
	LeadingGapMinHours float64 `env:"CAPACITY_LEADING_GAP_MIN_HOURS" envDefault:"1"`

	// InternalGapMinHours is the minimum size of an idle window between two
	// consecutive jobs on one machine.
	InternalGapMinHours float64 `env:"CAPACITY_INTERNAL_GAP_MIN_HOURS" envDefault:"8"`

	// SettingsCacheTTL is the TTL for cached machine settings.
	SettingsCacheTTL time.Duration `env:"CAPACITY_SETTINGS_CACHE_TTL" envDefault:"5m"`
}

// Sanitize applies guardrails to capacity configuration values.
func (c *CapacityConfig) Sanitize() {
	if c.DefaultWorkingHoursPerDay <= 0 || c.DefaultWorkingHoursPerDay > 24 {
		c.DefaultWorkingHoursPerDay = 24
	}
	if c.LeadingGapMinHours <= 0 {
		c.LeadingGapMinHours = 1
	}
	if c.InternalGapMinHours <= 0 {
		c.InternalGapMinHours = 8
	}
	if c.SettingsCacheTTL <= 0 {
		c.SettingsCacheTTL = 5 * time.Minute
	}
}
