package service

import (
	"database/sql"
	"testing"
	"time"

	"github.com/arqdariogomez/dashboard-carga-sub001/internal/config"
	"github.com/arqdariogomez/dashboard-carga-sub001/internal/domain"
	"github.com/arqdariogomez/dashboard-carga-sub001/internal/repository"
	"github.com/arqdariogomez/dashboard-carga-sub001/internal/testutil"
)

func setupRepo(t *testing.T) (*sql.DB, repository.ProjectRepo) {
	t.Helper()
	database := testutil.NewTestDB(t)
	return database, repository.NewSQLiteProjectRepo(database)
}

func defaultCfg() ConfigProvider {
	return config.Static(domain.DefaultConfig())
}

func reportedCfg() ConfigProvider {
	cfg := domain.DefaultConfig()
	cfg.LoadMode = domain.LoadReported
	return config.Static(cfg)
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func timePtr(t time.Time) *time.Time { return &t }
