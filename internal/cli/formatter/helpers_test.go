package formatter

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/arqdariogomez/dashboard-carga-sub001/internal/domain"
)

func TestDaySpan(t *testing.T) {
	tests := []struct {
		name  string
		start time.Time
		end   time.Time
		want  string
	}{
		{
			"same day",
			time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC),
			time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC),
			"Mar 10, 2025",
		},
		{
			"same year",
			time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC),
			time.Date(2025, 4, 2, 0, 0, 0, 0, time.UTC),
			"Mar 10 – Apr 2, 2025",
		},
		{
			"crosses a year boundary",
			time.Date(2025, 12, 29, 0, 0, 0, 0, time.UTC),
			time.Date(2026, 1, 2, 0, 0, 0, 0, time.UTC),
			"Dec 29, 2025 – Jan 2, 2026",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DaySpan(tt.start, tt.end))
		})
	}
}

func TestFormatDays(t *testing.T) {
	tests := []struct {
		name string
		in   float64
		want string
	}{
		{"whole days drop the decimal", 3, "3"},
		{"halves keep one decimal", 2.5, "2.5"},
		{"float noise rounds away", 2.1999999999999997, "2.2"},
		{"zero", 0, "0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatDays(tt.in))
		})
	}
}

func TestBalanceBadge(t *testing.T) {
	assert.Contains(t, BalanceBadge(3), "+3d")
	assert.Contains(t, BalanceBadge(-1.5), "-1.5d")
	assert.Contains(t, BalanceBadge(0), "±0d")
	// Sub-cent noise reads as zero, not as "+0d".
	assert.Contains(t, BalanceBadge(0.001), "±0d")
}

func TestWeekdayNames(t *testing.T) {
	assert.Equal(t, "Saturday, Sunday", WeekdayNames([]time.Weekday{time.Saturday, time.Sunday}))
	assert.Equal(t, "none", WeekdayNames(nil))
}

func TestGranularityLabel(t *testing.T) {
	assert.Equal(t, "daily", GranularityLabel(domain.GranularityDay))
	assert.Equal(t, "monthly", GranularityLabel(domain.GranularityMonth))
	assert.Equal(t, "weekly", GranularityLabel(domain.GranularityWeek))
	assert.Equal(t, "weekly", GranularityLabel(""))
}

func TestFormatLoad(t *testing.T) {
	assert.Equal(t, "0.60", FormatLoad(0.6))
	assert.Equal(t, "1.10", FormatLoad(1.1))
}
