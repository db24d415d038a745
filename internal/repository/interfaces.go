package repository

import (
	"context"
	"errors"

	"github.com/arqdariogomez/dashboard-carga-sub001/internal/domain"
)

// ErrNotFound marks lookups of rows that do not exist. Call sites wrap it
// with the entity kind so errors.Is works across layers.
var ErrNotFound = errors.New("not found")

type ProjectRepo interface {
	Create(ctx context.Context, p *domain.Project) error
	GetByID(ctx context.Context, id string) (*domain.Project, error)
	// List returns every project ordered by creation time, assignees in
	// stored position order. This is the input list the engine consumes.
	List(ctx context.Context) ([]*domain.Project, error)
	// ListPersons returns the distinct assignee names, sorted.
	ListPersons(ctx context.Context) ([]string, error)
	Update(ctx context.Context, p *domain.Project) error
	SetExpanded(ctx context.Context, id string, expanded bool) error
	Delete(ctx context.Context, id string) error
	// DeleteAll clears the project list; import's replace mode runs it
	// inside a transaction together with the re-inserts.
	DeleteAll(ctx context.Context) error
}
