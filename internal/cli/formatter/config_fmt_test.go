package formatter

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/arqdariogomez/dashboard-carga-sub001/internal/domain"
)

func TestFormatConfig(t *testing.T) {
	cfg := domain.DefaultConfig()
	cfg.Holidays = []domain.Holiday{
		{Date: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC), Reason: "Año Nuevo", Recurring: true},
		{Date: time.Date(2025, 3, 19, 0, 0, 0, 0, time.UTC), Reason: "San José"},
	}

	out := FormatConfig(cfg, "/home/ana/.carga/config.yaml")

	assert.Contains(t, out, "CONFIGURATION")
	assert.Contains(t, out, "/home/ana/.carga/config.yaml")
	assert.Contains(t, out, "8h per day")
	assert.Contains(t, out, "Saturday, Sunday")
	assert.Contains(t, out, "calculated")
	assert.Contains(t, out, "Jan 1, 2025")
	assert.Contains(t, out, "every year")
	assert.Contains(t, out, "San José")
}

func TestFormatConfig_NoHolidays(t *testing.T) {
	out := FormatConfig(domain.DefaultConfig(), "config.yaml")
	assert.Contains(t, out, "none")
}
