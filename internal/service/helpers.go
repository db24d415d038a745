package service

import (
	"context"
	"time"

	"github.com/arqdariogomez/dashboard-carga-sub001/internal/app"
	"github.com/arqdariogomez/dashboard-carga-sub001/internal/domain"
	"github.com/arqdariogomez/dashboard-carga-sub001/internal/repository"
)

// loadPass fetches the configuration and the full project list, the inputs
// every computation pass starts from.
func loadPass(ctx context.Context, projects repository.ProjectRepo, config ConfigProvider) (domain.Config, []domain.Project, error) {
	cfg, err := config.Config(ctx)
	if err != nil {
		return domain.Config{}, nil, err
	}
	list, err := projects.List(ctx)
	if err != nil {
		return domain.Config{}, nil, err
	}
	items := make([]domain.Project, len(list))
	for i, p := range list {
		items[i] = *p
	}
	return cfg, items, nil
}

func dayOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// resolveRange combines explicit endpoints with a fallback span. Either
// endpoint may be overridden independently.
func resolveRange(from, to *time.Time, fallback app.DateRange) app.DateRange {
	rng := fallback
	if from != nil {
		rng.Start = dayOf(*from)
	}
	if to != nil {
		rng.End = dayOf(*to)
	}
	return rng
}

// seriesSpan is the natural display range of a series: first to last point.
func seriesSpan(series []app.WorkloadPoint) app.DateRange {
	if len(series) == 0 {
		return app.DateRange{}
	}
	return app.DateRange{Start: series[0].Date, End: series[len(series)-1].Date}
}

// projectsSpan is the overall span of every dated project in the list.
func projectsSpan(projects []domain.Project) app.DateRange {
	var rng app.DateRange
	for _, p := range projects {
		if !p.HasSchedule() {
			continue
		}
		s, e := dayOf(*p.StartDate), dayOf(*p.EndDate)
		if rng.Start.IsZero() || s.Before(rng.Start) {
			rng.Start = s
		}
		if rng.End.IsZero() || e.After(rng.End) {
			rng.End = e
		}
	}
	return rng
}

// clipSeries keeps only the points inside rng. An unusable range clips to
// nothing, matching the empty bucket output for the same range.
func clipSeries(series []app.WorkloadPoint, rng app.DateRange) []app.WorkloadPoint {
	if !rng.Valid() {
		return nil
	}
	var out []app.WorkloadPoint
	for _, pt := range series {
		if rng.Contains(pt.Date) {
			out = append(out, pt)
		}
	}
	return out
}

func views(projects []domain.Project) []app.ProjectView {
	out := make([]app.ProjectView, len(projects))
	for i, p := range projects {
		out[i] = app.NewProjectView(p)
	}
	return out
}
