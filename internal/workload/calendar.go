package workload

import (
	"time"

	"github.com/arqdariogomez/dashboard-carga-sub001/internal/domain"
)

const (
	dateLayout     = "2006-01-02"
	monthDayLayout = "01-02"
)

// Calendar answers working-day questions for one configuration. Build it
// once per computation pass; lookups are map hits, not list scans.
type Calendar struct {
	weekend   map[time.Weekday]bool
	holidays  map[string]bool // exact dates, YYYY-MM-DD
	recurring map[string]bool // month-day, MM-DD
}

// NewCalendar indexes the config's weekend days and holidays.
func NewCalendar(cfg domain.Config) Calendar {
	cal := Calendar{
		weekend:   make(map[time.Weekday]bool, len(cfg.WeekendDays)),
		holidays:  make(map[string]bool),
		recurring: make(map[string]bool),
	}
	for _, wd := range cfg.WeekendDays {
		cal.weekend[wd] = true
	}
	for _, h := range cfg.Holidays {
		d := day(h.Date)
		if h.Recurring {
			cal.recurring[d.Format(monthDayLayout)] = true
		} else {
			cal.holidays[d.Format(dateLayout)] = true
		}
	}
	return cal
}

// IsWorkingDay reports whether date is neither a weekend day nor a holiday.
func (c Calendar) IsWorkingDay(date time.Time) bool {
	d := day(date)
	if c.weekend[d.Weekday()] {
		return false
	}
	return !c.isHoliday(d)
}

// CountWorkingDays counts working days in [start, end], endpoints included.
// An inverted range counts zero.
func (c Calendar) CountWorkingDays(start, end time.Time) int {
	s, e := day(start), day(end)
	n := 0
	for d := s; !d.After(e); d = d.AddDate(0, 0, 1) {
		if c.IsWorkingDay(d) {
			n++
		}
	}
	return n
}

// WorkingDays enumerates the working days in [start, end] in ascending
// order. An inverted range yields nil.
func (c Calendar) WorkingDays(start, end time.Time) []time.Time {
	s, e := day(start), day(end)
	var days []time.Time
	for d := s; !d.After(e); d = d.AddDate(0, 0, 1) {
		if c.IsWorkingDay(d) {
			days = append(days, d)
		}
	}
	return days
}

func (c Calendar) isHoliday(d time.Time) bool {
	if c.holidays[d.Format(dateLayout)] {
		return true
	}
	if c.recurring[d.Format(monthDayLayout)] {
		return true
	}
	// A recurring Feb 29 holiday lands on Feb 28 in non-leap years.
	if d.Month() == time.February && d.Day() == 28 && !isLeapYear(d.Year()) {
		return c.recurring["02-29"]
	}
	return false
}

// day normalizes a timestamp to UTC midnight. All engine date arithmetic
// runs on normalized days so map keys and equality behave.
func day(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

func isLeapYear(y int) bool {
	return y%4 == 0 && (y%100 != 0 || y%400 == 0)
}
