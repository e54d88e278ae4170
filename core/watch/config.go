package watch

import "time"

// Config holds configuration for automatic pushes.
type Config struct {
	// IntervalSeconds pushes periodically even without file events. Zero disables it.
	IntervalSeconds int `mapstructure:"interval_seconds" default:"300"`
	// DebounceSeconds waits for writes to settle before pushing.
	DebounceSeconds int `mapstructure:"debounce_seconds" default:"5"`
}

// Interval returns the periodic push interval, zero when disabled.
func (c Config) Interval() time.Duration {
	if c.IntervalSeconds <= 0 {
		return 0
	}
	return time.Duration(c.IntervalSeconds) * time.Second
}

// Debounce returns the settle delay, at least one second.
func (c Config) Debounce() time.Duration {
	if c.DebounceSeconds <= 0 {
		return time.Second
	}
	return time.Duration(c.DebounceSeconds) * time.Second
}
