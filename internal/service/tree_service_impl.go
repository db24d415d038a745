package service

import (
	"context"
	"time"

	"github.com/arqdariogomez/dashboard-carga-sub001/internal/app"
	"github.com/arqdariogomez/dashboard-carga-sub001/internal/domain"
	"github.com/arqdariogomez/dashboard-carga-sub001/internal/repository"
	"github.com/arqdariogomez/dashboard-carga-sub001/internal/workload"
)

type treeService struct {
	projects repository.ProjectRepo
	config   ConfigProvider
	observer UseCaseObserver
}

func NewTreeService(projects repository.ProjectRepo, config ConfigProvider, observers ...UseCaseObserver) TreeService {
	return &treeService{
		projects: projects,
		config:   config,
		observer: useCaseObserverOrNoop(observers),
	}
}

func (s *treeService) Tree(ctx context.Context) (resp *app.TreeResponse, err error) {
	startedAt := time.Now().UTC()
	fields := map[string]any{}
	defer func() {
		s.observer.ObserveUseCase(ctx, UseCaseEvent{
			Name:      "project-tree",
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
	fields["projects"] = len(items)

	// A cyclic parent chain is corrupt input the user must fix, not
	// something to render around.
	if err = workload.CheckHierarchy(items); err != nil {
		return nil, err
	}

	forest := workload.BuildHierarchy(items)
	roots := make([]*app.TreeNode, 0, len(forest))
	for _, node := range forest {
		roots = append(roots, buildNode(node, items, cfg))
	}

	resp = &app.TreeResponse{Roots: roots}
	return resp, nil
}

// buildNode converts one hierarchy node to its response form. Parent rows
// are synthetic: their dates, required days and derived fields come from the
// rollup, not from whatever schedule the stored row carries.
func buildNode(node *workload.Node, items []domain.Project, cfg domain.Config) *app.TreeNode {
	out := &app.TreeNode{}
	if len(node.Children) > 0 {
		rolled := workload.AggregateFromChildren(node.Project.ID, items, cfg)
		out.Project = app.NewProjectView(rolled)
		out.Rollup = true
	} else {
		out.Project = app.NewProjectView(workload.ComputeFields(node.Project, cfg))
	}
	for _, child := range node.Children {
		out.Children = append(out.Children, buildNode(child, items, cfg))
	}
	return out
}
