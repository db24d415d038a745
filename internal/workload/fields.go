package workload

import (
	"github.com/arqdariogomez/dashboard-carga-sub001/internal/domain"
)

// ComputeFields returns a copy of p with DailyLoad, AssignedDays and
// BalanceDays derived from its schedule and the config. Pure; p is not
// mutated.
func ComputeFields(p domain.Project, cfg domain.Config) domain.Project {
	return computeFields(p, NewCalendar(cfg), cfg.Mode())
}

// ComputeAllFields derives the scheduling fields for every project, sharing
// one calendar index across the pass.
func ComputeAllFields(projects []domain.Project, cfg domain.Config) []domain.Project {
	cal := NewCalendar(cfg)
	mode := cfg.Mode()
	out := make([]domain.Project, len(projects))
	for i, p := range projects {
		out[i] = computeFields(p, cal, mode)
	}
	return out
}

func computeFields(p domain.Project, cal Calendar, mode domain.LoadMode) domain.Project {
	p.DailyLoad = 0
	p.AssignedDays = 0
	p.BalanceDays = 0

	// Missing either date: no schedule, no load contribution.
	if !p.HasSchedule() {
		return p
	}

	days := cal.CountWorkingDays(*p.StartDate, *p.EndDate)
	p.AssignedDays = days
	p.BalanceDays = float64(days) - p.DaysRequired

	switch {
	case mode == domain.LoadReported && p.ReportedLoad != nil:
		p.DailyLoad = *p.ReportedLoad
	case days > 0:
		p.DailyLoad = p.DaysRequired / float64(days)
	}
	// days == 0 with daysRequired > 0 keeps DailyLoad at 0: the strongly
	// negative balance is the infeasibility signal, not a division blow-up.
	return p
}
