package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/arqdariogomez/dashboard-carga-sub001/internal/db"
	"github.com/arqdariogomez/dashboard-carga-sub001/internal/domain"
)

const dateLayout = "2006-01-02"

// projectColumns is the canonical SELECT column list for projects.
const projectColumns = `id, name, branch, start_date, end_date, days_required,
		priority, type, blocked_by, blocks_to, reported_load, parent_id,
		is_expanded, created_at, updated_at`

// SQLiteProjectRepo implements ProjectRepo over a DBTX, so the same type
// serves plain queries and transaction-scoped work.
type SQLiteProjectRepo struct {
	db db.DBTX
}

func NewSQLiteProjectRepo(conn db.DBTX) *SQLiteProjectRepo {
	return &SQLiteProjectRepo{db: conn}
}

func (r *SQLiteProjectRepo) Create(ctx context.Context, p *domain.Project) error {
	query := `INSERT INTO projects (id, name, branch, start_date, end_date, days_required,
		priority, type, blocked_by, blocks_to, reported_load, parent_id,
		is_expanded, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		p.ID,
		p.Name,
		p.Branch,
		nullableTimeToString(p.StartDate, dateLayout),
		nullableTimeToString(p.EndDate, dateLayout),
		p.DaysRequired,
		string(p.Priority),
		p.Type,
		p.BlockedBy,
		p.BlocksTo,
		nullableFloatToValue(p.ReportedLoad),
		p.ParentID, // *string: nil becomes SQL NULL
		boolToInt(p.IsExpanded),
		p.CreatedAt.Format(time.RFC3339),
		p.UpdatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting project: %w", err)
	}
	return r.replaceAssignees(ctx, p.ID, p.Assignees)
}

func (r *SQLiteProjectRepo) GetByID(ctx context.Context, id string) (*domain.Project, error) {
	query := `SELECT ` + projectColumns + ` FROM projects WHERE id = ?`
	p, err := r.scanProject(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		return nil, err
	}
	assignees, err := r.loadAssignees(ctx, id)
	if err != nil {
		return nil, err
	}
	p.Assignees = assignees
	return p, nil
}

func (r *SQLiteProjectRepo) List(ctx context.Context) ([]*domain.Project, error) {
	// rowid breaks created_at ties in insertion order, so bulk imports
	// inside one second keep their file order.
	query := `SELECT ` + projectColumns + ` FROM projects ORDER BY created_at, rowid`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing projects: %w", err)
	}
	defer rows.Close()

	projects, err := r.scanProjects(rows)
	if err != nil {
		return nil, err
	}
	if len(projects) == 0 {
		return projects, nil
	}

	// One pass over the assignee table instead of a query per project.
	byProject := make(map[string]*domain.Project, len(projects))
	for _, p := range projects {
		byProject[p.ID] = p
	}
	aRows, err := r.db.QueryContext(ctx,
		`SELECT project_id, person FROM project_assignees ORDER BY project_id, position`)
	if err != nil {
		return nil, fmt.Errorf("listing assignees: %w", err)
	}
	defer aRows.Close()
	for aRows.Next() {
		var projectID, person string
		if err := aRows.Scan(&projectID, &person); err != nil {
			return nil, fmt.Errorf("scanning assignee row: %w", err)
		}
		if p, ok := byProject[projectID]; ok {
			p.Assignees = append(p.Assignees, person)
		}
	}
	if err := aRows.Err(); err != nil {
		return nil, fmt.Errorf("iterating assignees: %w", err)
	}
	return projects, nil
}

func (r *SQLiteProjectRepo) ListPersons(ctx context.Context) ([]string, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT DISTINCT person FROM project_assignees ORDER BY person`)
	if err != nil {
		return nil, fmt.Errorf("listing persons: %w", err)
	}
	defer rows.Close()

	var persons []string
	for rows.Next() {
		var person string
		if err := rows.Scan(&person); err != nil {
			return nil, fmt.Errorf("scanning person: %w", err)
		}
		persons = append(persons, person)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating persons: %w", err)
	}
	return persons, nil
}

func (r *SQLiteProjectRepo) Update(ctx context.Context, p *domain.Project) error {
	query := `UPDATE projects SET name = ?, branch = ?, start_date = ?, end_date = ?,
		days_required = ?, priority = ?, type = ?, blocked_by = ?, blocks_to = ?,
		reported_load = ?, parent_id = ?, is_expanded = ?, updated_at = ?
		WHERE id = ?`
	res, err := r.db.ExecContext(ctx, query,
		p.Name,
		p.Branch,
		nullableTimeToString(p.StartDate, dateLayout),
		nullableTimeToString(p.EndDate, dateLayout),
		p.DaysRequired,
		string(p.Priority),
		p.Type,
		p.BlockedBy,
		p.BlocksTo,
		nullableFloatToValue(p.ReportedLoad),
		p.ParentID,
		boolToInt(p.IsExpanded),
		p.UpdatedAt.Format(time.RFC3339),
		p.ID,
	)
	if err != nil {
		return fmt.Errorf("updating project: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return fmt.Errorf("project %s: %w", p.ID, ErrNotFound)
	}
	return r.replaceAssignees(ctx, p.ID, p.Assignees)
}

func (r *SQLiteProjectRepo) SetExpanded(ctx context.Context, id string, expanded bool) error {
	query := `UPDATE projects SET is_expanded = ?, updated_at = ? WHERE id = ?`
	res, err := r.db.ExecContext(ctx, query, boolToInt(expanded), nowUTC(), id)
	if err != nil {
		return fmt.Errorf("setting expansion state: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return fmt.Errorf("project %s: %w", id, ErrNotFound)
	}
	return nil
}

func (r *SQLiteProjectRepo) Delete(ctx context.Context, id string) error {
	// Assignee rows cascade; children get their parent_id nulled by the FK.
	if _, err := r.db.ExecContext(ctx, `DELETE FROM projects WHERE id = ?`, id); err != nil {
		return fmt.Errorf("deleting project: %w", err)
	}
	return nil
}

func (r *SQLiteProjectRepo) DeleteAll(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM projects`); err != nil {
		return fmt.Errorf("clearing projects: %w", err)
	}
	return nil
}

func (r *SQLiteProjectRepo) loadAssignees(ctx context.Context, projectID string) ([]string, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT person FROM project_assignees WHERE project_id = ? ORDER BY position`, projectID)
	if err != nil {
		return nil, fmt.Errorf("loading assignees: %w", err)
	}
	defer rows.Close()

	var assignees []string
	for rows.Next() {
		var person string
		if err := rows.Scan(&person); err != nil {
			return nil, fmt.Errorf("scanning assignee: %w", err)
		}
		assignees = append(assignees, person)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating assignee rows: %w", err)
	}
	return assignees, nil
}

func (r *SQLiteProjectRepo) replaceAssignees(ctx context.Context, projectID string, people []string) error {
	if _, err := r.db.ExecContext(ctx,
		`DELETE FROM project_assignees WHERE project_id = ?`, projectID); err != nil {
		return fmt.Errorf("clearing assignees: %w", err)
	}
	for i, person := range people {
		if person == "" {
			continue
		}
		if _, err := r.db.ExecContext(ctx,
			`INSERT OR IGNORE INTO project_assignees (project_id, person, position) VALUES (?, ?, ?)`,
			projectID, person, i); err != nil {
			return fmt.Errorf("inserting assignee %q: %w", person, err)
		}
	}
	return nil
}

// scanProject scans a single project from a *sql.Row.
func (r *SQLiteProjectRepo) scanProject(row *sql.Row) (*domain.Project, error) {
	var p domain.Project
	var startStr, endStr, parentStr sql.NullString
	var reported sql.NullFloat64
	var priorityStr, createdAtStr, updatedAtStr string
	var expandedInt int

	err := row.Scan(
		&p.ID, &p.Name, &p.Branch, &startStr, &endStr, &p.DaysRequired,
		&priorityStr, &p.Type, &p.BlockedBy, &p.BlocksTo, &reported, &parentStr,
		&expandedInt, &createdAtStr, &updatedAtStr,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("project: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("scanning project: %w", err)
	}
	return r.populateProject(&p, startStr, endStr, parentStr, reported, priorityStr,
		createdAtStr, updatedAtStr, expandedInt)
}

// scanProjects scans multiple projects from *sql.Rows.
func (r *SQLiteProjectRepo) scanProjects(rows *sql.Rows) ([]*domain.Project, error) {
	var projects []*domain.Project
	for rows.Next() {
		var p domain.Project
		var startStr, endStr, parentStr sql.NullString
		var reported sql.NullFloat64
		var priorityStr, createdAtStr, updatedAtStr string
		var expandedInt int

		err := rows.Scan(
			&p.ID, &p.Name, &p.Branch, &startStr, &endStr, &p.DaysRequired,
			&priorityStr, &p.Type, &p.BlockedBy, &p.BlocksTo, &reported, &parentStr,
			&expandedInt, &createdAtStr, &updatedAtStr,
		)
		if err != nil {
			return nil, fmt.Errorf("scanning project row: %w", err)
		}
		proj, err := r.populateProject(&p, startStr, endStr, parentStr, reported,
			priorityStr, createdAtStr, updatedAtStr, expandedInt)
		if err != nil {
			return nil, err
		}
		projects = append(projects, proj)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating projects: %w", err)
	}
	return projects, nil
}

func (r *SQLiteProjectRepo) populateProject(p *domain.Project,
	startStr, endStr, parentStr sql.NullString, reported sql.NullFloat64,
	priorityStr, createdAtStr, updatedAtStr string, expandedInt int,
) (*domain.Project, error) {
	p.Priority = domain.Priority(priorityStr)
	p.StartDate = parseNullableTime(startStr, dateLayout)
	p.EndDate = parseNullableTime(endStr, dateLayout)
	if parentStr.Valid && parentStr.String != "" {
		parent := parentStr.String
		p.ParentID = &parent
	}
	if reported.Valid {
		v := reported.Float64
		p.ReportedLoad = &v
	}
	p.IsExpanded = intToBool(expandedInt)

	var parseErr error
	p.CreatedAt, parseErr = time.Parse(time.RFC3339, createdAtStr)
	if parseErr != nil {
		return nil, fmt.Errorf("parsing created_at: %w", parseErr)
	}
	p.UpdatedAt, parseErr = time.Parse(time.RFC3339, updatedAtStr)
	if parseErr != nil {
		return nil, fmt.Errorf("parsing updated_at: %w", parseErr)
	}
	return p, nil
}
