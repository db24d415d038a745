package db

import (
	"database/sql"
	"fmt"
	"strings"
)

// Migrate runs the full schema migration list. Statements are idempotent;
// the list only ever grows, so re-running on an up-to-date database is a
// no-op.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			// ALTER TABLE statements re-run on every start; an already
			// applied column addition is fine.
			if strings.Contains(err.Error(), "duplicate column name") {
				continue
			}
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}

var migrations = []string{
	`CREATE TABLE IF NOT EXISTS projects (
		id            TEXT PRIMARY KEY,
		name          TEXT NOT NULL,
		branch        TEXT NOT NULL DEFAULT '',
		start_date    TEXT,
		end_date      TEXT,
		days_required REAL NOT NULL DEFAULT 0,
		priority      TEXT NOT NULL DEFAULT ''
		              CHECK(priority IN ('','low','medium','high')),
		type          TEXT NOT NULL DEFAULT '',
		blocked_by    TEXT NOT NULL DEFAULT '',
		blocks_to     TEXT NOT NULL DEFAULT '',
		parent_id     TEXT REFERENCES projects(id) ON DELETE SET NULL,
		created_at    TEXT NOT NULL,
		updated_at    TEXT NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_projects_parent ON projects(parent_id)`,

	`CREATE TABLE IF NOT EXISTS project_assignees (
		project_id TEXT NOT NULL REFERENCES projects(id) ON DELETE CASCADE,
		person     TEXT NOT NULL,
		position   INTEGER NOT NULL DEFAULT 0,
		PRIMARY KEY (project_id, person)
	)`,

	`CREATE INDEX IF NOT EXISTS idx_assignees_person ON project_assignees(person)`,

	// Reported load mode: manually observed daily load overrides the formula.
	`ALTER TABLE projects ADD COLUMN reported_load REAL`,

	// Tree view expansion state, persisted so collapse survives restarts.
	`ALTER TABLE projects ADD COLUMN is_expanded INTEGER NOT NULL DEFAULT 1`,
}
