package formatter

import (
	"fmt"
	"strings"

	"github.com/arqdariogomez/dashboard-carga-sub001/internal/app"
)

// FormatTimeline formats one person's bucketed workload timeline.
func FormatTimeline(resp *app.TimelineResponse) string {
	var b strings.Builder

	if !resp.Range.Valid() {
		b.WriteString(Dim("No scheduled projects for this person.") + "\n")
		return RenderBox("Workload · "+resp.Person, b.String())
	}

	b.WriteString(Dim(fmt.Sprintf("%s · %s buckets",
		DaySpan(resp.Range.Start, resp.Range.End),
		GranularityLabel(resp.Granularity))) + "\n\n")

	if len(resp.Buckets) == 0 {
		b.WriteString(Dim("No working days in this range.") + "\n")
		return RenderBox("Workload · "+resp.Person, b.String())
	}

	headers := []string{"PERIOD", "LOAD", "PROJECTS"}
	rows := make([][]string, 0, len(resp.Buckets))
	for _, bucket := range resp.Buckets {
		parts := make([]string, 0, len(bucket.Projects))
		for _, c := range bucket.Projects {
			parts = append(parts, fmt.Sprintf("%s %s", StyleFg.Render(c.ProjectName), Dim(FormatLoad(c.DailyLoad))))
		}
		rows = append(rows, []string{
			StyleFg.Render(DaySpan(bucket.Start, bucket.End)),
			RenderLoadBar(bucket.AvgLoad, loadBarWidth),
			strings.Join(parts, Dim(" · ")),
		})
	}
	b.WriteString(RenderTable(headers, rows))

	over := 0
	for _, pt := range resp.Series {
		if pt.TotalLoad > 1.0 {
			over++
		}
	}
	b.WriteString("\n")
	if over > 0 {
		b.WriteString(StyleRed.Render(fmt.Sprintf("%d of %d working days above a full day", over, len(resp.Series))) + "\n")
	} else {
		b.WriteString(StyleGreen.Render(fmt.Sprintf("All %d working days within capacity", len(resp.Series))) + "\n")
	}

	if len(resp.Projects) > 0 {
		b.WriteString("\n" + Header("Assigned Projects") + "\n")
		b.WriteString(projectTable(resp.Projects))
	}

	return RenderBox("Workload · "+resp.Person, b.String())
}
