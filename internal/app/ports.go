// Package app defines the use-case ports and view types shared by every
// frontend. CLI commands, TUI views and HTTP handlers all speak these types;
// the service layer implements the ports.
package app

import "context"

// TimelineUseCase produces one person's workload timeline.
type TimelineUseCase interface {
	PersonTimeline(ctx context.Context, req TimelineRequest) (*TimelineResponse, error)
}

// TeamUseCase produces the per-person team overview.
type TeamUseCase interface {
	TeamOverview(ctx context.Context, req TeamRequest) (*TeamSummary, error)
}

// ProjectsUseCase produces the flat project list with derived fields
// populated, in stored order.
type ProjectsUseCase interface {
	ComputedProjects(ctx context.Context) ([]ProjectView, error)
}

// TreeUseCase produces the rolled-up project hierarchy.
type TreeUseCase interface {
	Tree(ctx context.Context) (*TreeResponse, error)
}

// ImportUseCase loads a project list from a CSV or JSON file.
type ImportUseCase interface {
	ImportFile(ctx context.Context, path string, replace bool) (*ImportResult, error)
}
