package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/mattn/go-isatty"

	"github.com/arqdariogomez/dashboard-carga-sub001/internal/cli"
	"github.com/arqdariogomez/dashboard-carga-sub001/internal/config"
	"github.com/arqdariogomez/dashboard-carga-sub001/internal/db"
	"github.com/arqdariogomez/dashboard-carga-sub001/internal/repository"
	"github.com/arqdariogomez/dashboard-carga-sub001/internal/service"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// A project-local .env may carry CARGA_DB/CARGA_CONFIG; absence is fine.
	for _, p := range []string{".env", "../.env"} {
		if _, err := os.Stat(p); err == nil {
			_ = godotenv.Load(p)
			break
		}
	}

	dbPath, err := resolvePath("CARGA_DB", "carga.db")
	if err != nil {
		return err
	}
	configPath, err := resolvePath("CARGA_CONFIG", "config.yaml")
	if err != nil {
		return err
	}

	database, err := db.OpenDB(dbPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	repo := repository.NewSQLiteProjectRepo(database)
	uow := db.NewSQLiteUnitOfWork(database)
	cfg := config.File{Path: configPath}

	// CARGA_LOG=1 streams use-case telemetry to stderr.
	var observers []service.UseCaseObserver
	if os.Getenv("CARGA_LOG") != "" {
		observers = append(observers, service.NewLogUseCaseObserver(os.Stderr))
	}

	app := &cli.App{
		Projects:   service.NewProjectService(repo),
		Workload:   service.NewWorkloadService(repo, cfg, observers...),
		Tree:       service.NewTreeService(repo, cfg, observers...),
		Import:     service.NewImportService(uow, observers...),
		Config:     cfg,
		ConfigPath: configPath,
	}

	// Running carga with no arguments on a terminal opens the TUI.
	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	return cli.NewRootCmd(app).Execute()
}

// resolvePath returns the env override or ~/.carga/<file>.
func resolvePath(envVar, file string) (string, error) {
	if v := os.Getenv(envVar); v != "" {
		return v, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("finding home directory: %w", err)
	}
	return filepath.Join(home, ".carga", file), nil
}
