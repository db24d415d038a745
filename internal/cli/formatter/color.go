package formatter

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/arqdariogomez/dashboard-carga-sub001/internal/domain"
)

// Gruvbox-inspired color palette.
var (
	ColorGreen  = lipgloss.Color("#8ec07c")
	ColorYellow = lipgloss.Color("#fabd2f")
	ColorRed    = lipgloss.Color("#fb4934")
	ColorBlue   = lipgloss.Color("#83a598")
	ColorPurple = lipgloss.Color("#d3869b")
	ColorDim    = lipgloss.Color("#928374")
	ColorFg     = lipgloss.Color("#ebdbb2")
	ColorHeader = lipgloss.Color("#fe8019")
)

// Predefined lipgloss styles.
var (
	StyleGreen  = lipgloss.NewStyle().Foreground(ColorGreen)
	StyleYellow = lipgloss.NewStyle().Foreground(ColorYellow)
	StyleRed    = lipgloss.NewStyle().Foreground(ColorRed)
	StyleBlue   = lipgloss.NewStyle().Foreground(ColorBlue)
	StylePurple = lipgloss.NewStyle().Foreground(ColorPurple)
	StyleDim    = lipgloss.NewStyle().Foreground(ColorDim)
	StyleFg     = lipgloss.NewStyle().Foreground(ColorFg)
	StyleHeader = lipgloss.NewStyle().Foreground(ColorHeader).Bold(true)
	StyleBold   = lipgloss.NewStyle().Foreground(ColorFg).Bold(true)
)

// LoadStyle returns the style for a daily load value. Anything above a full
// day is overcommitment and renders red; 0.8 upward is the warning band.
func LoadStyle(load float64) lipgloss.Style {
	switch {
	case load > 1.0:
		return StyleRed
	case load >= 0.8:
		return StyleYellow
	case load > 0:
		return StyleGreen
	default:
		return StyleDim
	}
}

// LoadBadge returns a colored load indicator string such as "▲ OVERLOADED".
func LoadBadge(load float64) string {
	switch {
	case load > 1.0:
		return StyleRed.Render("▲ OVERLOADED")
	case load >= 0.8:
		return StyleYellow.Render("● NEAR LIMIT")
	case load > 0:
		return StyleGreen.Render("● BALANCED")
	default:
		return StyleDim.Render("○ FREE")
	}
}

// PriorityPill returns a colored priority indicator for a project.
func PriorityPill(p domain.Priority) string {
	switch p {
	case domain.PriorityHigh:
		return StyleRed.Render("▲ High")
	case domain.PriorityMedium:
		return StyleYellow.Render("● Medium")
	case domain.PriorityLow:
		return StyleBlue.Render("▽ Low")
	default:
		return StyleDim.Render("--")
	}
}

// Header renders a section header with the orange header style and an underline.
func Header(text string) string {
	upper := strings.ToUpper(text)
	line := strings.Repeat("─", len(upper))
	return fmt.Sprintf("%s\n%s", StyleHeader.Render(upper), StyleDim.Render(line))
}

// Dim renders text in the muted/dim color.
func Dim(text string) string {
	return StyleDim.Render(text)
}

// Bold renders text in bold with the foreground color.
func Bold(text string) string {
	return StyleBold.Render(text)
}
