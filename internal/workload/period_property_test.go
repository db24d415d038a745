package workload

import (
	"fmt"
	"math/rand"
	"testing"
	"time"

	"github.com/arqdariogomez/dashboard-carga-sub001/internal/app"
	"github.com/arqdariogomez/dashboard-carga-sub001/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func randomProjects(rng *rand.Rand, base time.Time) []domain.Project {
	people := []string{"ana", "ben", "carla", "dmitri"}
	n := rng.Intn(7)
	projects := make([]domain.Project, 0, n)
	for i := 0; i < n; i++ {
		p := domain.Project{
			ID:           fmt.Sprintf("p-%d", i),
			Name:         fmt.Sprintf("Project %c", 'A'+i),
			Assignees:    []string{people[rng.Intn(len(people))]},
			DaysRequired: float64(rng.Intn(40)) / 2,
		}
		if rng.Intn(10) < 8 { // most projects carry dates
			start := base.AddDate(0, 0, rng.Intn(60))
			end := start.AddDate(0, 0, rng.Intn(40))
			p.StartDate = &start
			p.EndDate = &end
		}
		projects = append(projects, p)
	}
	return projects
}

func randomConfig(rng *rand.Rand, base time.Time) domain.Config {
	cfg := domain.DefaultConfig()
	for i := 0; i < rng.Intn(4); i++ {
		cfg.Holidays = append(cfg.Holidays, domain.Holiday{
			Date:      base.AddDate(0, 0, rng.Intn(90)),
			Reason:    "generated",
			Recurring: rng.Intn(2) == 1,
		})
	}
	return cfg
}

// TestAggregateByPeriod_Invariants_BucketsTileRange property-tests the core
// bucketing invariant: week and month bucket spans concatenate to exactly
// the requested range, no gaps, no overlaps, regardless of series sparsity.
func TestAggregateByPeriod_Invariants_BucketsTileRange(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	base := date(2025, 1, 6)

	for trial := 0; trial < 200; trial++ {
		cfg := randomConfig(rng, base)
		projects := randomProjects(rng, base)
		person := "ana"
		series := BuildPersonSeries(projects, person, cfg)

		start := base.AddDate(0, 0, rng.Intn(70))
		end := start.AddDate(0, 0, rng.Intn(80))
		r := app.DateRange{Start: start, End: end}

		for _, g := range []domain.Granularity{domain.GranularityWeek, domain.GranularityMonth} {
			buckets := AggregateByPeriod(series, AssignedProjects(projects, person), g, r, cfg)
			require.NotEmpty(t, buckets, "trial %d %s: a valid range produces buckets", trial, g)

			assert.True(t, buckets[0].Start.Equal(start),
				"trial %d %s: first bucket starts the range", trial, g)
			assert.True(t, buckets[len(buckets)-1].End.Equal(end),
				"trial %d %s: last bucket ends the range", trial, g)

			for i, b := range buckets {
				assert.False(t, b.Start.After(b.End),
					"trial %d %s bucket %d: start ≤ end", trial, g, i)
				assert.GreaterOrEqual(t, b.AvgLoad, 0.0,
					"trial %d %s bucket %d: load is never negative", trial, g, i)
				if i > 0 {
					gap := buckets[i-1].End.AddDate(0, 0, 1)
					assert.True(t, b.Start.Equal(gap),
						"trial %d %s bucket %d: contiguous with previous", trial, g, i)
				}
			}
		}
	}
}

// TestAggregateByPeriod_Invariants_DayBucketsAreWorkingDays checks that day
// granularity enumerates exactly the range's working days, one bucket each.
func TestAggregateByPeriod_Invariants_DayBucketsAreWorkingDays(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	base := date(2025, 1, 6)

	for trial := 0; trial < 200; trial++ {
		cfg := randomConfig(rng, base)
		projects := randomProjects(rng, base)
		series := BuildPersonSeries(projects, "ana", cfg)

		start := base.AddDate(0, 0, rng.Intn(70))
		end := start.AddDate(0, 0, rng.Intn(30))
		r := app.DateRange{Start: start, End: end}

		buckets := AggregateByPeriod(series, AssignedProjects(projects, "ana"), domain.GranularityDay, r, cfg)
		want := NewCalendar(cfg).WorkingDays(start, end)

		require.Len(t, buckets, len(want), "trial %d: one bucket per working day", trial)
		for i, b := range buckets {
			assert.True(t, b.Start.Equal(want[i]), "trial %d bucket %d date", trial, i)
			assert.True(t, b.End.Equal(want[i]), "trial %d bucket %d is a single day", trial, i)
		}
	}
}

// TestBuildPersonSeries_Invariants_AscendingUniqueWorkingDays checks the
// series shape: strictly ascending unique dates, every one a working day,
// totals matching an independent per-date recomputation.
func TestBuildPersonSeries_Invariants_AscendingUniqueWorkingDays(t *testing.T) {
	rng := rand.New(rand.NewSource(99))
	base := date(2025, 1, 6)

	for trial := 0; trial < 200; trial++ {
		cfg := randomConfig(rng, base)
		projects := randomProjects(rng, base)
		person := "ana"

		series := BuildPersonSeries(projects, person, cfg)
		cal := NewCalendar(cfg)
		computed := ComputeAllFields(projects, cfg)

		for i, pt := range series {
			if i > 0 {
				assert.True(t, series[i-1].Date.Before(pt.Date),
					"trial %d point %d: strictly ascending", trial, i)
			}
			assert.True(t, cal.IsWorkingDay(pt.Date),
				"trial %d point %d: series only holds working days", trial, i)

			var want float64
			for _, p := range computed {
				if !p.IsAssignedTo(person) || !p.HasSchedule() {
					continue
				}
				if !pt.Date.Before(*p.StartDate) && !pt.Date.After(*p.EndDate) {
					want += p.DailyLoad
				}
			}
			assert.InDelta(t, want, pt.TotalLoad, 1e-9,
				"trial %d point %d: total is the sum of active project rates", trial, i)
		}
	}
}
