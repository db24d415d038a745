package service

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/arqdariogomez/dashboard-carga-sub001/internal/app"
	"github.com/arqdariogomez/dashboard-carga-sub001/internal/db"
	"github.com/arqdariogomez/dashboard-carga-sub001/internal/domain"
	"github.com/arqdariogomez/dashboard-carga-sub001/internal/importer"
	"github.com/arqdariogomez/dashboard-carga-sub001/internal/repository"
	"github.com/arqdariogomez/dashboard-carga-sub001/internal/workload"
)

type importService struct {
	uow      db.UnitOfWork
	observer UseCaseObserver
}

func NewImportService(uow db.UnitOfWork, observers ...UseCaseObserver) ImportService {
	return &importService{
		uow:      uow,
		observer: useCaseObserverOrNoop(observers),
	}
}

func (s *importService) ImportFile(ctx context.Context, path string, replace bool) (result *app.ImportResult, err error) {
	startedAt := time.Now().UTC()
	fields := map[string]any{
		"file":    filepath.Base(path),
		"replace": replace,
	}
	defer func() {
		s.observer.ObserveUseCase(ctx, UseCaseEvent{
			Name:      "import-projects",
			StartedAt: startedAt,
			Duration:  time.Since(startedAt),
			Success:   err == nil,
			Err:       err,
			Fields:    fields,
		})
	}()

	schema, err := importer.LoadImportFile(path)
	if err != nil {
		return nil, fmt.Errorf("loading import file: %w", err)
	}
	if errs := importer.ValidateImportSchema(schema); len(errs) > 0 {
		return nil, formatValidationErrors(errs)
	}

	projects := importer.Convert(schema)

	// Replace mode swaps the whole list atomically: a failed file never
	// leaves the store half-loaded.
	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		txRepo := repository.NewSQLiteProjectRepo(tx)
		if replace {
			if err := txRepo.DeleteAll(ctx); err != nil {
				return fmt.Errorf("clearing previous list: %w", err)
			}
		}
		for _, p := range projects {
			if err := txRepo.Create(ctx, p); err != nil {
				return fmt.Errorf("creating project %q: %w", p.Name, err)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	values := make([]domain.Project, len(projects))
	for i, p := range projects {
		values[i] = *p
	}
	result = &app.ImportResult{
		ProjectCount: len(projects),
		PersonCount:  len(workload.Persons(values)),
		Replaced:     replace,
	}
	fields["project_count"] = result.ProjectCount
	return result, nil
}

func formatValidationErrors(errs []error) error {
	msg := fmt.Sprintf("import validation failed (%d errors):", len(errs))
	for _, e := range errs {
		msg += "\n  - " + e.Error()
	}
	return fmt.Errorf("%s", msg)
}
