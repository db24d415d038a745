package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	usecase "github.com/arqdariogomez/dashboard-carga-sub001/internal/app"
	"github.com/arqdariogomez/dashboard-carga-sub001/internal/cli/formatter"
)

// dashboardLoadedMsg signals that the team overview has been loaded.
type dashboardLoadedMsg struct {
	summary *usecase.TeamSummary
	err     error
}

// dashboardView is the home screen: one row per person with load figures,
// cursor selection opening the person's timeline.
type dashboardView struct {
	state   *SharedState
	summary *usecase.TeamSummary
	loading bool
	err     error
	cursor  int
}

func newDashboardView(state *SharedState) *dashboardView {
	return &dashboardView{
		state:   state,
		loading: true,
	}
}

func (v *dashboardView) ID() ViewID    { return ViewDashboard }
func (v *dashboardView) Title() string { return "Dashboard" }

func (v *dashboardView) ShortHelp() []key.Binding {
	return []key.Binding{
		key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "timeline")),
		key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "tree")),
		key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "refresh")),
	}
}

func (v *dashboardView) Init() tea.Cmd {
	return v.loadData()
}

func (v *dashboardView) loadData() tea.Cmd {
	app := v.state.App
	return func() tea.Msg {
		summary, err := app.Workload.TeamOverview(context.Background(), usecase.TeamRequest{})
		return dashboardLoadedMsg{summary: summary, err: err}
	}
}

func (v *dashboardView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case dashboardLoadedMsg:
		v.loading = false
		if msg.err != nil {
			v.err = msg.err
			return v, nil
		}
		v.err = nil
		v.summary = msg.summary
		if v.cursor >= len(v.summary.Persons) {
			v.cursor = max(0, len(v.summary.Persons)-1)
		}
		return v, nil

	case refreshViewMsg:
		v.loading = true
		return v, v.loadData()

	case tea.KeyMsg:
		persons := v.persons()
		switch msg.String() {
		case "up", "k":
			if v.cursor > 0 {
				v.cursor--
			}
		case "down", "j":
			if v.cursor < len(persons)-1 {
				v.cursor++
			}
		case "enter":
			if v.cursor < len(persons) {
				return v, pushView(newTimelineView(v.state, persons[v.cursor].Name))
			}
		case "t":
			return v, pushView(newTreeView(v.state))
		case "r":
			v.loading = true
			return v, v.loadData()
		}
	}

	return v, nil
}

func (v *dashboardView) persons() []usecase.PersonSummary {
	if v.summary == nil {
		return nil
	}
	return v.summary.Persons
}

func (v *dashboardView) View() string {
	if v.loading {
		return "\n  " + formatter.Dim("Loading...")
	}
	if v.err != nil {
		return "\n  " + formatter.StyleRed.Render("Error: "+v.err.Error())
	}

	persons := v.persons()
	if len(persons) == 0 {
		return "\n  " + formatter.Dim("No assigned projects yet. Run 'carga project add' or 'carga import'.") + "\n"
	}

	var b strings.Builder
	b.WriteString("\n  " + formatter.StyleHeader.Render("TEAM"))
	if v.summary.Range.Valid() {
		b.WriteString("  " + formatter.Dim(formatter.DaySpan(v.summary.Range.Start, v.summary.Range.End)))
	}
	b.WriteString("\n\n")

	for i, p := range persons {
		cursor := "  "
		nameStyle := formatter.StyleFg
		if i == v.cursor {
			cursor = formatter.StyleGreen.Render("▸ ")
			nameStyle = formatter.StyleBold
		}

		over := formatter.Dim("  ·")
		if p.OverloadedDays > 0 {
			over = formatter.StyleRed.Render(fmt.Sprintf("%3dd", p.OverloadedDays))
		}

		b.WriteString(fmt.Sprintf("  %s%s %s %s %s  %s\n",
			cursor,
			nameStyle.Render(padRight(p.Name, 14)),
			formatter.RenderLoadBar(p.AvgLoad, 10),
			formatter.Dim("peak"),
			formatter.LoadStyle(p.PeakLoad).Render(formatter.FormatLoad(p.PeakLoad)),
			over,
		))
	}

	b.WriteString("\n  " + formatter.LoadBadge(v.peakLoad()) + "\n")
	return b.String()
}

// peakLoad is the worst single-day load across the team, driving the footer
// badge.
func (v *dashboardView) peakLoad() float64 {
	peak := 0.0
	for _, p := range v.persons() {
		if p.PeakLoad > peak {
			peak = p.PeakLoad
		}
	}
	return peak
}
