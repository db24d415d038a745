package workload

import (
	"sort"
	"time"

	"github.com/arqdariogomez/dashboard-carga-sub001/internal/app"
	"github.com/arqdariogomez/dashboard-carga-sub001/internal/domain"
)

// AggregateByPeriod folds a person's daily series into display buckets over
// [rng.Start, rng.End]. Week buckets are Monday-anchored and month buckets
// calendar-anchored, both clipped to the range so the sequence tiles it with
// no gaps or overlaps. Day granularity emits one bucket per working day.
// projects are the person's projects, used for the per-bucket contribution
// breakdowns. An empty or inverted range yields no buckets.
func AggregateByPeriod(series []app.WorkloadPoint, projects []domain.Project, granularity domain.Granularity, rng app.DateRange, cfg domain.Config) []app.PeriodBucket {
	if rng.Start.IsZero() || rng.End.IsZero() {
		return nil
	}
	start, end := day(rng.Start), day(rng.End)
	if start.After(end) {
		return nil
	}

	cal := NewCalendar(cfg)
	mode := cfg.Mode()

	totals := make(map[time.Time]float64, len(series))
	for _, pt := range series {
		totals[day(pt.Date)] = pt.TotalLoad
	}

	// Rates computed once; contribution rows reuse them per bucket.
	scheduled := make([]domain.Project, 0, len(projects))
	for _, p := range projects {
		if !p.HasSchedule() {
			continue
		}
		scheduled = append(scheduled, computeFields(p, cal, mode))
	}

	var buckets []app.PeriodBucket
	switch granularity {
	case domain.GranularityDay:
		// Non-working days carry no load slot at day granularity.
		for _, d := range cal.WorkingDays(start, end) {
			buckets = append(buckets, app.PeriodBucket{
				Start:    d,
				End:      d,
				AvgLoad:  totals[d],
				Projects: contributions(scheduled, cal, d, d),
			})
		}
	case domain.GranularityWeek:
		for ws := weekStart(start); !ws.After(end); ws = ws.AddDate(0, 0, 7) {
			buckets = append(buckets, buildBucket(ws, ws.AddDate(0, 0, 6), start, end, cal, totals, scheduled))
		}
	case domain.GranularityMonth:
		for ms := monthStart(start); !ms.After(end); ms = ms.AddDate(0, 1, 0) {
			buckets = append(buckets, buildBucket(ms, ms.AddDate(0, 1, -1), start, end, cal, totals, scheduled))
		}
	}
	return buckets
}

// buildBucket clips an anchor-aligned span to the requested range and
// averages the daily totals over its working days, sparse days counting as
// zero. Zero working days leave AvgLoad at 0 with no contributions.
func buildBucket(anchorStart, anchorEnd, rangeStart, rangeEnd time.Time, cal Calendar, totals map[time.Time]float64, projects []domain.Project) app.PeriodBucket {
	bs := maxDay(anchorStart, rangeStart)
	be := minDay(anchorEnd, rangeEnd)
	b := app.PeriodBucket{Start: bs, End: be}

	days := cal.WorkingDays(bs, be)
	if len(days) == 0 {
		return b
	}
	var sum float64
	for _, d := range days {
		sum += totals[d]
	}
	b.AvgLoad = sum / float64(len(days))
	b.Projects = contributions(projects, cal, bs, be)
	return b
}

// contributions lists the projects active on at least one working day inside
// [bucketStart, bucketEnd], each with its per-day rate (not a period total),
// ordered by descending rate then name.
func contributions(projects []domain.Project, cal Calendar, bucketStart, bucketEnd time.Time) []app.ProjectContribution {
	var out []app.ProjectContribution
	for _, p := range projects {
		s := maxDay(day(*p.StartDate), bucketStart)
		e := minDay(day(*p.EndDate), bucketEnd)
		if s.After(e) || cal.CountWorkingDays(s, e) == 0 {
			continue
		}
		out = append(out, app.ProjectContribution{
			ProjectID:   p.ID,
			ProjectName: p.Name,
			DailyLoad:   p.DailyLoad,
		})
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].DailyLoad != out[j].DailyLoad {
			return out[i].DailyLoad > out[j].DailyLoad
		}
		return out[i].ProjectName < out[j].ProjectName
	})
	return out
}

// weekStart returns the Monday opening the week containing d.
func weekStart(d time.Time) time.Time {
	offset := (int(d.Weekday()) + 6) % 7
	return d.AddDate(0, 0, -offset)
}

func monthStart(d time.Time) time.Time {
	return time.Date(d.Year(), d.Month(), 1, 0, 0, 0, 0, time.UTC)
}

func minDay(a, b time.Time) time.Time {
	if a.Before(b) {
		return a
	}
	return b
}

func maxDay(a, b time.Time) time.Time {
	if a.After(b) {
		return a
	}
	return b
}
