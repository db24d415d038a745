package testutil

import (
	"time"

	"github.com/google/uuid"

	"github.com/arqdariogomez/dashboard-carga-sub001/internal/domain"
)

// Project options
type ProjectOption func(*domain.Project)

// WithDates schedules the project across the given span (inclusive).
func WithDates(start, end time.Time) ProjectOption {
	return func(p *domain.Project) {
		p.StartDate = &start
		p.EndDate = &end
	}
}

// WithStartDate sets only the start; the project stays unschedulable until
// the end date shows up too.
func WithStartDate(d time.Time) ProjectOption {
	return func(p *domain.Project) {
		p.StartDate = &d
	}
}

func WithAssignees(people ...string) ProjectOption {
	return func(p *domain.Project) {
		p.Assignees = people
	}
}

func WithDaysRequired(days float64) ProjectOption {
	return func(p *domain.Project) {
		p.DaysRequired = days
	}
}

func WithPriority(pr domain.Priority) ProjectOption {
	return func(p *domain.Project) {
		p.Priority = pr
	}
}

func WithParent(id string) ProjectOption {
	return func(p *domain.Project) {
		p.ParentID = &id
	}
}

func WithReportedLoad(load float64) ProjectOption {
	return func(p *domain.Project) {
		p.ReportedLoad = &load
	}
}

func WithBranch(branch string) ProjectOption {
	return func(p *domain.Project) {
		p.Branch = branch
	}
}

func WithType(t string) ProjectOption {
	return func(p *domain.Project) {
		p.Type = t
	}
}

func WithCollapsed() ProjectOption {
	return func(p *domain.Project) {
		p.IsExpanded = false
	}
}

// WithCreatedAt pins the creation timestamp, for tests that assert on
// listing order.
func WithCreatedAt(t time.Time) ProjectOption {
	return func(p *domain.Project) {
		p.CreatedAt = t
		p.UpdatedAt = t
	}
}

// NewTestProject builds an unscheduled project with sensible defaults.
// Without WithDates it carries no dates and therefore no load.
func NewTestProject(name string, opts ...ProjectOption) *domain.Project {
	now := time.Now().UTC()
	p := &domain.Project{
		ID:         uuid.New().String(),
		Name:       name,
		Branch:     "test",
		IsExpanded: true,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}
