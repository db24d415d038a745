package domain

import (
	"errors"
	"fmt"
	"time"
)

// ErrInvalidConfig marks a configuration the engine refuses to compute with.
// Callers test for it with errors.Is.
var ErrInvalidConfig = errors.New("invalid configuration")

// Holiday is a single non-working date. Recurring holidays match on
// month and day-of-month in every year.
type Holiday struct {
	Date      time.Time
	Reason    string
	Recurring bool
}

// Config drives every derived-field computation. It is immutable for the
// duration of a pass: changing it means recomputing everything from scratch.
type Config struct {
	HoursPerDay float64
	WeekendDays []time.Weekday
	Holidays    []Holiday
	LoadMode    LoadMode
}

// DefaultConfig returns the stock configuration: 8-hour days, Saturday and
// Sunday off, no holidays, calculated load.
func DefaultConfig() Config {
	return Config{
		HoursPerDay: 8,
		WeekendDays: []time.Weekday{time.Saturday, time.Sunday},
		LoadMode:    LoadCalculated,
	}
}

// Validate checks the configuration for values the engine cannot work with.
// All failures wrap ErrInvalidConfig.
func (c Config) Validate() error {
	if c.HoursPerDay <= 0 {
		return fmt.Errorf("%w: hours per day must be positive, got %v", ErrInvalidConfig, c.HoursPerDay)
	}
	for _, wd := range c.WeekendDays {
		if wd < time.Sunday || wd > time.Saturday {
			return fmt.Errorf("%w: weekend day %d outside 0-6", ErrInvalidConfig, wd)
		}
	}
	if c.LoadMode != "" && !ValidLoadModes[string(c.LoadMode)] {
		return fmt.Errorf("%w: unknown load mode %q", ErrInvalidConfig, c.LoadMode)
	}
	return nil
}

// Mode returns the effective load mode, defaulting to calculated when unset.
func (c Config) Mode() LoadMode {
	if c.LoadMode == "" {
		return LoadCalculated
	}
	return c.LoadMode
}
