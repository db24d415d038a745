package service

import (
	"context"

	"github.com/arqdariogomez/dashboard-carga-sub001/internal/app"
	"github.com/arqdariogomez/dashboard-carga-sub001/internal/domain"
)

// ConfigProvider supplies the engine configuration for a computation pass.
// Implementations may re-read a file so edits apply without a restart.
type ConfigProvider interface {
	Config(ctx context.Context) (domain.Config, error)
}

// ProjectService handles CRUD on the stored project list. Derived fields are
// never stored; the workload and tree services recompute them per request.
type ProjectService interface {
	Create(ctx context.Context, p *domain.Project) error
	GetByID(ctx context.Context, id string) (*domain.Project, error)
	List(ctx context.Context) ([]*domain.Project, error)
	ListPersons(ctx context.Context) ([]string, error)
	Update(ctx context.Context, p *domain.Project) error
	SetExpanded(ctx context.Context, id string, expanded bool) error
	Delete(ctx context.Context, id string) error
}

// WorkloadService bundles the computation-pass use cases declared in
// internal/app: person timeline, team overview and the computed flat list.
type WorkloadService interface {
	app.TimelineUseCase
	app.TeamUseCase
	app.ProjectsUseCase
}

// TreeService renders the project hierarchy with parent rows rolled up from
// their descendants.
type TreeService interface {
	app.TreeUseCase
}

// ImportService loads a project list file into the store.
type ImportService interface {
	app.ImportUseCase
}
