package service

import (
	"context"
	"fmt"
	"time"

	"github.com/arqdariogomez/dashboard-carga-sub001/internal/app"
	"github.com/arqdariogomez/dashboard-carga-sub001/internal/domain"
	"github.com/arqdariogomez/dashboard-carga-sub001/internal/repository"
	"github.com/arqdariogomez/dashboard-carga-sub001/internal/workload"
)

type workloadService struct {
	projects repository.ProjectRepo
	config   ConfigProvider
	observer UseCaseObserver
}

func NewWorkloadService(projects repository.ProjectRepo, config ConfigProvider, observers ...UseCaseObserver) WorkloadService {
	return &workloadService{
		projects: projects,
		config:   config,
		observer: useCaseObserverOrNoop(observers),
	}
}

func (s *workloadService) PersonTimeline(ctx context.Context, req app.TimelineRequest) (resp *app.TimelineResponse, err error) {
	startedAt := time.Now().UTC()
	fields := map[string]any{
		"person":      req.Person,
		"granularity": string(req.Granularity),
	}
	defer func() {
		s.observer.ObserveUseCase(ctx, UseCaseEvent{
			Name:      "person-timeline",
			StartedAt: startedAt,
			Duration:  time.Since(startedAt),
			Success:   err == nil,
			Err:       err,
			Fields:    fields,
		})
	}()

	if req.Person == "" {
		return nil, fmt.Errorf("person is required")
	}
	granularity := req.Granularity
	if granularity == "" {
		granularity = domain.GranularityWeek
	}

	cfg, items, err := loadPass(ctx, s.projects, s.config)
	if err != nil {
		return nil, err
	}

	series := workload.BuildPersonSeries(items, req.Person, cfg)
	rng := resolveRange(req.From, req.To, seriesSpan(series))
	mine := workload.ComputeAllFields(workload.AssignedProjects(items, req.Person), cfg)
	fields["points"] = len(series)
	fields["projects"] = len(mine)

	resp = &app.TimelineResponse{
		Person:      req.Person,
		Range:       rng,
		Granularity: granularity,
		Series:      clipSeries(series, rng),
		Buckets:     workload.AggregateByPeriod(series, mine, granularity, rng, cfg),
		Projects:    views(mine),
	}
	return resp, nil
}

func (s *workloadService) ComputedProjects(ctx context.Context) ([]app.ProjectView, error) {
	cfg, items, err := loadPass(ctx, s.projects, s.config)
	if err != nil {
		return nil, err
	}
	return views(workload.ComputeAllFields(items, cfg)), nil
}

func (s *workloadService) TeamOverview(ctx context.Context, req app.TeamRequest) (resp *app.TeamSummary, err error) {
	startedAt := time.Now().UTC()
	fields := map[string]any{}
	defer func() {
		s.observer.ObserveUseCase(ctx, UseCaseEvent{
			Name:      "team-overview",
			StartedAt: startedAt,
			Duration:  time.Since(startedAt),
			Success:   err == nil,
			Err:       err,
			Fields:    fields,
		})
	}()

	cfg, items, err := loadPass(ctx, s.projects, s.config)
	if err != nil {
		return nil, err
	}

	rng := resolveRange(req.From, req.To, projectsSpan(items))
	persons := workload.Persons(items)
	fields["persons"] = len(persons)

	summaries := make([]app.PersonSummary, 0, len(persons))
	for _, person := range persons {
		series := clipSeries(workload.BuildPersonSeries(items, person, cfg), rng)
		sum := app.PersonSummary{
			Name:         person,
			ProjectCount: len(workload.AssignedProjects(items, person)),
		}
		var total float64
		for _, pt := range series {
			total += pt.TotalLoad
			if pt.TotalLoad > sum.PeakLoad {
				sum.PeakLoad = pt.TotalLoad
			}
			// Strictly above one person-day counts as overload.
			if pt.TotalLoad > 1.0 {
				sum.OverloadedDays++
			}
		}
		if len(series) > 0 {
			sum.AvgLoad = total / float64(len(series))
		}
		summaries = append(summaries, sum)
	}

	resp = &app.TeamSummary{Range: rng, Persons: summaries}
	return resp, nil
}
