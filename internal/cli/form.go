package cli

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/arqdariogomez/dashboard-carga-sub001/internal/cli/formatter"
	"github.com/arqdariogomez/dashboard-carga-sub001/internal/domain"
)

// cargaHuhTheme styles huh forms to match the formatter palette.
func cargaHuhTheme() *huh.Theme {
	t := huh.ThemeBase()

	// Focused state: orange accent
	t.Focused.Title = lipgloss.NewStyle().Foreground(formatter.ColorHeader).Bold(true)
	t.Focused.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorGreen)
	t.Focused.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.TextInput.Cursor = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.TextInput.Placeholder = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Focused.Description = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	// Blurred state: dimmed
	t.Blurred.Title = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	return t
}

// dateInput returns a huh.Input for an optional date field.
func dateInput(title, placeholder string, value *string) *huh.Input {
	return huh.NewInput().
		Title(title).
		Placeholder(placeholder).
		Value(value).
		Validate(validateOptionalDate)
}

// runProjectForm collects the add fields interactively, writing the answers
// back into pf so the command path afterwards is the same as with flags.
func runProjectForm(pf *projectFlags) error {
	days := ""
	if pf.days > 0 {
		days = formatter.FormatDays(pf.days)
	}

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Name").
				Placeholder("Plan director").
				Value(&pf.name).
				Validate(validateRequired("name")),
			huh.NewInput().
				Title("Branch").
				Placeholder("Urbanismo").
				Value(&pf.branch),
			dateInput("Start date (YYYY-MM-DD, blank for none)", "2025-03-10", &pf.start),
			dateInput("End date (YYYY-MM-DD, blank for none)", "2025-03-21", &pf.end),
			huh.NewInput().
				Title("Required days").
				Placeholder("5").
				Value(&days).
				Validate(validateOptionalNumber),
			huh.NewInput().
				Title("People (comma separated)").
				Placeholder("Ana, Bruno").
				Value(&pf.assignees),
			huh.NewSelect[string]().
				Title("Priority").
				Options(
					huh.NewOption("None", ""),
					huh.NewOption("Low", string(domain.PriorityLow)),
					huh.NewOption("Medium", string(domain.PriorityMedium)),
					huh.NewOption("High", string(domain.PriorityHigh)),
				).
				Value(&pf.priority),
		),
	).WithTheme(cargaHuhTheme()).WithShowHelp(false)

	if err := form.Run(); err != nil {
		return err
	}

	if days != "" {
		v, err := strconv.ParseFloat(strings.ReplaceAll(days, ",", "."), 64)
		if err != nil {
			return fmt.Errorf("invalid required days %q", days)
		}
		pf.days = v
	}
	return nil
}

// validateRequired rejects blank input for the named field.
func validateRequired(field string) func(string) error {
	return func(s string) error {
		if strings.TrimSpace(s) == "" {
			return fmt.Errorf("%s is required", field)
		}
		return nil
	}
}

// validateOptionalDate accepts empty or a YYYY-MM-DD date string.
func validateOptionalDate(s string) error {
	if s == "" {
		return nil
	}
	if _, err := time.Parse("2006-01-02", s); err != nil {
		return fmt.Errorf("use YYYY-MM-DD format")
	}
	return nil
}

// validateOptionalNumber accepts empty or a non-negative number; a decimal
// comma counts as a decimal point.
func validateOptionalNumber(s string) error {
	if s == "" {
		return nil
	}
	v, err := strconv.ParseFloat(strings.ReplaceAll(s, ",", "."), 64)
	if err != nil || v < 0 {
		return fmt.Errorf("enter a non-negative number")
	}
	return nil
}
