package formatter

import (
	"fmt"
	"strings"

	"github.com/arqdariogomez/dashboard-carga-sub001/internal/domain"
)

// FormatConfig renders the effective engine configuration.
func FormatConfig(cfg domain.Config, path string) string {
	var b strings.Builder

	field := func(label, value string) {
		b.WriteString(fmt.Sprintf("%s  %s\n", StyleDim.Render(label), value))
	}

	field("FILE    ", Dim(path))
	field("HOURS   ", StyleFg.Render(fmt.Sprintf("%sh per day", FormatDays(cfg.HoursPerDay))))
	field("WEEKEND ", StyleFg.Render(WeekdayNames(cfg.WeekendDays)))
	field("MODE    ", StylePurple.Render(string(cfg.Mode())))

	if len(cfg.Holidays) == 0 {
		field("HOLIDAYS", Dim("none"))
	} else {
		field("HOLIDAYS", StyleFg.Render(fmt.Sprintf("%d", len(cfg.Holidays))))
		for _, h := range cfg.Holidays {
			line := "  " + StyleFg.Render(h.Date.Format("Jan 2, 2006"))
			if h.Recurring {
				line += " " + StyleBlue.Render("every year")
			}
			if h.Reason != "" {
				line += " " + Dim(h.Reason)
			}
			b.WriteString(line + "\n")
		}
	}

	return RenderBox("Configuration", b.String())
}
