package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/arqdariogomez/dashboard-carga-sub001/internal/domain"
	"github.com/arqdariogomez/dashboard-carga-sub001/internal/repository"
)

type projectService struct {
	projects repository.ProjectRepo
}

func NewProjectService(projects repository.ProjectRepo) ProjectService {
	return &projectService{projects: projects}
}

func (s *projectService) Create(ctx context.Context, p *domain.Project) error {
	if err := validateProject(p); err != nil {
		return err
	}
	if p.ID == "" {
		p.ID = uuid.New().String()
	}
	now := time.Now().UTC()
	p.CreatedAt = now
	p.UpdatedAt = now
	// New rows start expanded in the tree view.
	p.IsExpanded = true
	return s.projects.Create(ctx, p)
}

func (s *projectService) GetByID(ctx context.Context, id string) (*domain.Project, error) {
	return s.projects.GetByID(ctx, id)
}

func (s *projectService) List(ctx context.Context) ([]*domain.Project, error) {
	return s.projects.List(ctx)
}

func (s *projectService) ListPersons(ctx context.Context) ([]string, error) {
	return s.projects.ListPersons(ctx)
}

func (s *projectService) Update(ctx context.Context, p *domain.Project) error {
	if err := validateProject(p); err != nil {
		return err
	}
	p.UpdatedAt = time.Now().UTC()
	return s.projects.Update(ctx, p)
}

func (s *projectService) SetExpanded(ctx context.Context, id string, expanded bool) error {
	return s.projects.SetExpanded(ctx, id, expanded)
}

func (s *projectService) Delete(ctx context.Context, id string) error {
	// Children of a deleted parent become roots; no cascade beyond assignees.
	return s.projects.Delete(ctx, id)
}

func validateProject(p *domain.Project) error {
	if p.Name == "" {
		return fmt.Errorf("project name is required")
	}
	if p.StartDate != nil && p.EndDate != nil && p.StartDate.After(*p.EndDate) {
		return fmt.Errorf("start date %s is after end date %s",
			p.StartDate.Format("2006-01-02"), p.EndDate.Format("2006-01-02"))
	}
	if p.DaysRequired < 0 {
		return fmt.Errorf("days required must not be negative, got %v", p.DaysRequired)
	}
	if p.Priority != "" && !domain.ValidPriorities[string(p.Priority)] {
		return fmt.Errorf("invalid priority %q (expected low, medium or high)", p.Priority)
	}
	if p.ReportedLoad != nil && (*p.ReportedLoad < 0 || *p.ReportedLoad > 2) {
		return fmt.Errorf("reported load must be between 0 and 2, got %v", *p.ReportedLoad)
	}
	if p.ParentID != nil && *p.ParentID == p.ID {
		return fmt.Errorf("project cannot be its own parent")
	}
	return nil
}
