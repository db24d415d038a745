package formatter

import (
	"fmt"
	"strings"

	"github.com/arqdariogomez/dashboard-carga-sub001/internal/app"
)

const loadBarWidth = 10

// FormatTeam formats the per-person team overview into a styled dashboard
// string.
func FormatTeam(resp *app.TeamSummary) string {
	var b strings.Builder

	if resp.Range.Valid() {
		b.WriteString(Dim(DaySpan(resp.Range.Start, resp.Range.End)) + "\n\n")
	}

	if len(resp.Persons) == 0 {
		b.WriteString(Dim("No assigned projects yet. Add one with 'carga project add'.") + "\n")
		return RenderBox("Team Workload", b.String())
	}

	headers := []string{"PERSON", "PROJECTS", "AVG LOAD", "PEAK", "OVERLOADED"}
	rows := make([][]string, 0, len(resp.Persons))

	overloaded := 0
	for _, p := range resp.Persons {
		over := Dim("--")
		if p.OverloadedDays > 0 {
			over = StyleRed.Render(fmt.Sprintf("%dd", p.OverloadedDays))
			overloaded++
		}
		rows = append(rows, []string{
			Bold(p.Name),
			fmt.Sprintf("%d", p.ProjectCount),
			RenderLoadBar(p.AvgLoad, loadBarWidth),
			LoadStyle(p.PeakLoad).Render(FormatLoad(p.PeakLoad)),
			over,
		})
	}

	b.WriteString(RenderTable(headers, rows, 1, 3, 4))

	b.WriteString("\n")
	balanced := len(resp.Persons) - overloaded
	overloadedPart := StyleRed.Render(fmt.Sprintf("%d overloaded", overloaded))
	balancedPart := StyleGreen.Render(fmt.Sprintf("%d balanced", balanced))
	b.WriteString(fmt.Sprintf("%s, %s\n", overloadedPart, balancedPart))

	return RenderBox("Team Workload", b.String())
}

// FormatPersons formats the plain person listing used by "carga persons".
func FormatPersons(resp *app.TeamSummary) string {
	if len(resp.Persons) == 0 {
		return RenderBox("People", Dim("No assigned projects yet.")+"\n")
	}

	headers := []string{"PERSON", "PROJECTS", "PEAK LOAD"}
	rows := make([][]string, 0, len(resp.Persons))
	for _, p := range resp.Persons {
		rows = append(rows, []string{
			Bold(p.Name),
			fmt.Sprintf("%d", p.ProjectCount),
			LoadStyle(p.PeakLoad).Render(FormatLoad(p.PeakLoad)),
		})
	}

	return RenderBox("People", RenderTable(headers, rows, 1, 2))
}
