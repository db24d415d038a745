// Package config loads and persists the engine configuration as a YAML file.
// A missing file is not an error: the stock configuration applies until the
// user saves an override.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/arqdariogomez/dashboard-carga-sub001/internal/domain"
)

const dateLayout = "2006-01-02"

type fileSchema struct {
	HoursPerDay float64       `yaml:"hours_per_day"`
	WeekendDays []int         `yaml:"weekend_days"`
	LoadMode    string        `yaml:"load_mode"`
	Holidays    []holidayFile `yaml:"holidays,omitempty"`
}

type holidayFile struct {
	Date      string `yaml:"date"`
	Reason    string `yaml:"reason,omitempty"`
	Recurring bool   `yaml:"recurring,omitempty"`
}

// Load reads the configuration at path. A missing file yields the defaults.
// Keys absent from the file keep their default values, so a file holding
// only load_mode is valid.
func Load(path string) (domain.Config, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return domain.DefaultConfig(), nil
	}
	if err != nil {
		return domain.Config{}, fmt.Errorf("reading config: %w", err)
	}

	fs := fromDomain(domain.DefaultConfig())
	if err := yaml.Unmarshal(data, &fs); err != nil {
		return domain.Config{}, fmt.Errorf("parsing config: %w", err)
	}

	cfg, err := toDomain(fs)
	if err != nil {
		return domain.Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return domain.Config{}, err
	}
	return cfg, nil
}

// Save writes the configuration to path, creating parent directories as
// needed.
func Save(path string, cfg domain.Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}
	data, err := yaml.Marshal(fromDomain(cfg))
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}

func toDomain(fs fileSchema) (domain.Config, error) {
	cfg := domain.Config{
		HoursPerDay: fs.HoursPerDay,
		LoadMode:    domain.LoadMode(fs.LoadMode),
	}
	for _, wd := range fs.WeekendDays {
		cfg.WeekendDays = append(cfg.WeekendDays, time.Weekday(wd))
	}
	for i, h := range fs.Holidays {
		d, err := time.Parse(dateLayout, h.Date)
		if err != nil {
			return domain.Config{}, fmt.Errorf("holidays[%d]: invalid date %q (expected YYYY-MM-DD)", i, h.Date)
		}
		cfg.Holidays = append(cfg.Holidays, domain.Holiday{
			Date:      d,
			Reason:    h.Reason,
			Recurring: h.Recurring,
		})
	}
	return cfg, nil
}

func fromDomain(cfg domain.Config) fileSchema {
	fs := fileSchema{
		HoursPerDay: cfg.HoursPerDay,
		WeekendDays: make([]int, 0, len(cfg.WeekendDays)),
		LoadMode:    string(cfg.Mode()),
	}
	for _, wd := range cfg.WeekendDays {
		fs.WeekendDays = append(fs.WeekendDays, int(wd))
	}
	for _, h := range cfg.Holidays {
		fs.Holidays = append(fs.Holidays, holidayFile{
			Date:      h.Date.Format(dateLayout),
			Reason:    h.Reason,
			Recurring: h.Recurring,
		})
	}
	return fs
}
