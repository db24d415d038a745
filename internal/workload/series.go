package workload

import (
	"sort"
	"time"

	"github.com/arqdariogomez/dashboard-carga-sub001/internal/app"
	"github.com/arqdariogomez/dashboard-carga-sub001/internal/domain"
)

// BuildPersonSeries sums the person's per-project daily loads into one
// ascending, date-unique series over the working days of their dated
// projects. Co-assignees each receive the full project load (the series
// answers "how loaded is this person", not "how much effort is spent").
// Totals are uncapped; values above 1.0 mean overcommitment.
func BuildPersonSeries(projects []domain.Project, person string, cfg domain.Config) []app.WorkloadPoint {
	cal := NewCalendar(cfg)
	mode := cfg.Mode()

	totals := make(map[time.Time]float64)
	for _, p := range projects {
		if !p.IsAssignedTo(person) || !p.HasSchedule() {
			continue
		}
		// Zero-load projects still claim their dates: the series covers the
		// union of the person's working days, sparse only outside them.
		cp := computeFields(p, cal, mode)
		for _, d := range cal.WorkingDays(*cp.StartDate, *cp.EndDate) {
			totals[d] += cp.DailyLoad
		}
	}

	series := make([]app.WorkloadPoint, 0, len(totals))
	for d, load := range totals {
		series = append(series, app.WorkloadPoint{Date: d, TotalLoad: load})
	}
	sort.Slice(series, func(i, j int) bool { return series[i].Date.Before(series[j].Date) })
	return series
}

// BuildAllSeries builds the per-person series for everyone assigned to at
// least one project.
func BuildAllSeries(projects []domain.Project, cfg domain.Config) map[string][]app.WorkloadPoint {
	out := make(map[string][]app.WorkloadPoint)
	for _, person := range Persons(projects) {
		out[person] = BuildPersonSeries(projects, person, cfg)
	}
	return out
}

// Persons returns the de-duplicated union of assignees, sorted.
func Persons(projects []domain.Project) []string {
	seen := make(map[string]bool)
	var persons []string
	for _, p := range projects {
		for _, a := range p.Assignees {
			if a == "" || seen[a] {
				continue
			}
			seen[a] = true
			persons = append(persons, a)
		}
	}
	sort.Strings(persons)
	return persons
}

// AssignedProjects filters to the person's projects, preserving input order.
func AssignedProjects(projects []domain.Project, person string) []domain.Project {
	var out []domain.Project
	for _, p := range projects {
		if p.IsAssignedTo(person) {
			out = append(out, p)
		}
	}
	return out
}
