package formatter

import (
	"strings"
	"time"

	"github.com/arqdariogomez/dashboard-carga-sub001/internal/app"
)

// FormatTree renders the full project hierarchy with rollup badges. The CLI
// always shows every level; collapsing is a TUI affair.
func FormatTree(resp *app.TreeResponse) string {
	if len(resp.Roots) == 0 {
		return RenderBox("Hierarchy", Dim("No projects yet.")+"\n")
	}

	items := make([]TreeItem, 0, len(resp.Roots)*2)
	var walk func(nodes []*app.TreeNode, level int)
	walk = func(nodes []*app.TreeNode, level int) {
		for i, n := range nodes {
			items = append(items, TreeItem{
				Title:  n.Project.Name,
				Level:  level,
				IsLast: i == len(nodes)-1,
				Rollup: n.Rollup,
				Badge:  ScheduleBadge(n),
			})
			walk(n.Children, level+1)
		}
	}
	walk(resp.Roots, 0)

	var b strings.Builder
	b.WriteString(RenderTree(items))
	b.WriteString("\n" + Dim("Σ schedule rolled up from children") + "\n")

	return RenderBox("Hierarchy", b.String())
}

// ScheduleBadge summarizes a node's schedule for the right-hand badge:
// "Mar 10 – Mar 21 · 7d · 0.70/d", with a Σ prefix on rollup rows.
func ScheduleBadge(n *app.TreeNode) string {
	v := n.Project
	if v.StartDate == nil || v.EndDate == nil {
		if v.DaysRequired > 0 {
			return FormatDays(v.DaysRequired) + "d unscheduled"
		}
		return "unscheduled"
	}

	start, err1 := time.Parse("2006-01-02", *v.StartDate)
	end, err2 := time.Parse("2006-01-02", *v.EndDate)
	if err1 != nil || err2 != nil {
		return "unscheduled"
	}

	span := ShortDate(start) + " – " + ShortDate(end)
	badge := span + " · " + FormatDays(v.DaysRequired) + "d · " + FormatLoad(v.DailyLoad) + "/d"
	if n.Rollup {
		badge = "Σ " + badge
	}
	return badge
}
