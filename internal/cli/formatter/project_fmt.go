package formatter

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/arqdariogomez/dashboard-carga-sub001/internal/app"
	"github.com/arqdariogomez/dashboard-carga-sub001/internal/domain"
)

// FormatProjectList renders the computed project list inside a bordered box.
func FormatProjectList(views []app.ProjectView) string {
	if len(views) == 0 {
		return RenderBox("Projects", Dim("No projects yet. Add one with 'carga project add'.")+"\n")
	}
	return RenderBox("Projects", projectTable(views))
}

// projectTable renders the shared project table: one row per project with
// the derived fields alongside the stored ones.
func projectTable(views []app.ProjectView) string {
	headers := []string{"ID", "NAME", "DATES", "REQ", "LOAD/DAY", "BALANCE", "PEOPLE"}
	rows := make([][]string, 0, len(views))

	for _, v := range views {
		load := Dim("--")
		if v.StartDate != nil && v.EndDate != nil {
			load = LoadStyle(v.DailyLoad).Render(FormatLoad(v.DailyLoad))
		}
		people := Dim("--")
		if len(v.Assignees) > 0 {
			people = StyleFg.Render(strings.Join(v.Assignees, ", "))
		}
		rows = append(rows, []string{
			TruncID(v.ID),
			Bold(v.Name),
			viewSpan(v),
			FormatDays(v.DaysRequired) + "d",
			load,
			BalanceBadge(v.BalanceDays),
			people,
		})
	}

	return RenderTable(headers, rows, 3, 4, 5)
}

// FormatProjectInspect renders a single-project detail card. The stored
// record supplies identity and timestamps; the view supplies the derived
// fields of the current computation pass.
func FormatProjectInspect(p *domain.Project, v app.ProjectView) string {
	var b strings.Builder

	b.WriteString(StyleBold.Render(p.Name) + "\n")
	if p.Branch != "" {
		b.WriteString(BranchBadge(p.Branch) + "\n")
	}
	b.WriteString("\n")

	field := func(label, value string) {
		b.WriteString(fmt.Sprintf("%s  %s\n", StyleDim.Render(label), value))
	}

	field("ID      ", TruncID(p.ID))
	field("DATES   ", viewSpan(v))
	field("REQUIRED", StyleFg.Render(FormatDays(p.DaysRequired)+"d"))
	if p.StartDate != nil && p.EndDate != nil {
		field("LOAD    ", RenderLoadBar(v.DailyLoad, loadBarWidth))
		field("ASSIGNED", StyleFg.Render(fmt.Sprintf("%dd", v.AssignedDays)))
	}
	field("BALANCE ", BalanceBadge(v.BalanceDays))
	if len(p.Assignees) > 0 {
		field("PEOPLE  ", StyleFg.Render(strings.Join(p.Assignees, ", ")))
	}
	if p.Priority != "" {
		field("PRIORITY", PriorityPill(p.Priority))
	}
	if p.ReportedLoad != nil {
		field("REPORTED", StyleFg.Render(FormatLoad(*p.ReportedLoad)))
	}
	if p.ParentID != nil {
		field("PARENT  ", TruncID(*p.ParentID))
	}
	field("UPDATED ", StyleFg.Render(HumanTimestamp(p.UpdatedAt)))

	panel := lipgloss.NewStyle().Width(45).Render(b.String())
	return RenderBox("", panel)
}

// BranchBadge returns a capitalized, purple-styled branch label.
func BranchBadge(branch string) string {
	if branch == "" {
		return StyleDim.Render("--")
	}
	label := strings.ToUpper(branch[:1]) + branch[1:]
	return StylePurple.Render(label)
}

// viewSpan renders a project view's date span, or a dim placeholder when the
// schedule is missing an endpoint.
func viewSpan(v app.ProjectView) string {
	if v.StartDate == nil || v.EndDate == nil {
		return Dim("--")
	}
	start, err1 := time.Parse("2006-01-02", *v.StartDate)
	end, err2 := time.Parse("2006-01-02", *v.EndDate)
	if err1 != nil || err2 != nil {
		return Dim("--")
	}
	return StyleFg.Render(DaySpan(start, end))
}
