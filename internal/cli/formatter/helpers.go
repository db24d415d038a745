package formatter

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/arqdariogomez/dashboard-carga-sub001/internal/domain"
)

// RenderBox wraps content in a rounded-border box with an optional title.
func RenderBox(title string, content string) string {
	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorDim).
		PaddingLeft(2).
		PaddingRight(2).
		PaddingTop(1).
		PaddingBottom(1)

	if title != "" {
		titleRendered := StyleHeader.Render(strings.ToUpper(title))
		inner := titleRendered + "\n\n" + content
		return boxStyle.Render(inner)
	}

	return boxStyle.Render(content)
}

// DaySpan renders an inclusive date span, repeating the month and year only
// where they differ: "Mar 10 – Mar 16, 2025".
func DaySpan(start, end time.Time) string {
	if start.Year() == end.Year() && start.YearDay() == end.YearDay() {
		return start.Format("Jan 2, 2006")
	}
	if start.Year() == end.Year() {
		return start.Format("Jan 2") + " – " + end.Format("Jan 2, 2006")
	}
	return start.Format("Jan 2, 2006") + " – " + end.Format("Jan 2, 2006")
}

// ShortDate renders a date without its year: "Mar 10".
func ShortDate(t time.Time) string {
	return t.Format("Jan 2")
}

// FormatDays renders a day count without trailing zeros: 3 -> "3",
// 2.5 -> "2.5". Values are rounded to two decimals first so float noise
// from balance arithmetic does not leak into the output.
func FormatDays(d float64) string {
	v := math.Round(d*100) / 100
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// FormatLoad renders a daily load fraction with two decimals: "0.60".
func FormatLoad(l float64) string {
	return fmt.Sprintf("%.2f", l)
}

// BalanceBadge renders a signed balance-days value: green slack, red
// shortfall, dim zero.
func BalanceBadge(bal float64) string {
	v := math.Round(bal*100) / 100
	switch {
	case v > 0:
		return StyleGreen.Render("+" + FormatDays(v) + "d")
	case v < 0:
		return StyleRed.Render(FormatDays(v) + "d")
	default:
		return StyleDim.Render("±0d")
	}
}

// GranularityLabel names a bucket size for headers: "weekly buckets".
func GranularityLabel(g domain.Granularity) string {
	switch g {
	case domain.GranularityDay:
		return "daily"
	case domain.GranularityMonth:
		return "monthly"
	default:
		return "weekly"
	}
}

// WeekdayNames joins weekday names for display: "Saturday, Sunday".
func WeekdayNames(days []time.Weekday) string {
	if len(days) == 0 {
		return "none"
	}
	names := make([]string, len(days))
	for i, d := range days {
		names[i] = d.String()
	}
	return strings.Join(names, ", ")
}

// HumanDate returns a human-friendly absolute date string.
func HumanDate(t time.Time) string {
	now := time.Now()
	y1, m1, d1 := now.Date()
	y2, m2, d2 := t.Date()

	if y1 == y2 && m1 == m2 && d1 == d2 {
		return "Today"
	}
	yesterday := now.AddDate(0, 0, -1)
	y3, m3, d3 := yesterday.Date()
	if y2 == y3 && m2 == m3 && d2 == d3 {
		return "Yesterday"
	}
	return t.Format("Jan 2, 2006")
}

// HumanTimestamp returns a human-friendly relative timestamp string.
func HumanTimestamp(t time.Time) string {
	now := time.Now()
	diff := now.Sub(t)

	switch {
	case diff < 0:
		return HumanDate(t)
	case diff < time.Minute:
		return "Just now"
	case diff < time.Hour:
		return fmt.Sprintf("%dm ago", int(diff.Minutes()))
	case diff < 24*time.Hour:
		return fmt.Sprintf("%dh ago", int(diff.Hours()))
	default:
		return HumanDate(t)
	}
}

// TruncID returns the first 8 characters of an ID, dimmed.
func TruncID(id string) string {
	if len(id) > 8 {
		id = id[:8]
	}
	return StyleDim.Render(id)
}
