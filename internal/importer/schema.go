package importer

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
)

const (
	dateLayout = "2006-01-02"
	// Spreadsheet exports from the team arrive with day-first dates.
	altDateLayout = "02/01/2006"
)

// ImportSchema is the top-level structure for a project-list import.
type ImportSchema struct {
	Projects []ProjectImport `json:"projects"`
}

// ProjectImport defines one project row in the import file. Refs are local to
// the file and exist only so rows can point at their parent; they never reach
// the database.
type ProjectImport struct {
	Ref          string   `json:"ref,omitempty"`
	Name         string   `json:"name"`
	Branch       string   `json:"branch,omitempty"`
	StartDate    *string  `json:"start_date,omitempty"`
	EndDate      *string  `json:"end_date,omitempty"`
	Assignees    []string `json:"assignees,omitempty"`
	DaysRequired float64  `json:"days_required,omitempty"`
	Priority     string   `json:"priority,omitempty"`
	Type         string   `json:"type,omitempty"`
	BlockedBy    string   `json:"blocked_by,omitempty"`
	BlocksTo     string   `json:"blocks_to,omitempty"`
	ReportedLoad *float64 `json:"reported_load,omitempty"`
	ParentRef    *string  `json:"parent_ref,omitempty"`
}

// LoadImportFile reads a project list from path, picking the parser by file
// extension (.json or .csv).
func LoadImportFile(path string) (*ImportSchema, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return LoadJSON(path)
	case ".csv":
		return LoadCSV(path)
	default:
		return nil, fmt.Errorf("unsupported import format %q (expected .json or .csv)", filepath.Ext(path))
	}
}

// LoadJSON reads and parses a JSON project-list file.
func LoadJSON(path string) (*ImportSchema, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var schema ImportSchema
	if err := json.Unmarshal(data, &schema); err != nil {
		return nil, fmt.Errorf("parsing import file: %w", err)
	}
	return &schema, nil
}

// parseFlexibleDate accepts both supported date layouts and returns the
// parsed date, normalized to UTC midnight.
func parseFlexibleDate(s string) (time.Time, error) {
	for _, layout := range []string{dateLayout, altDateLayout} {
		if t, err := time.Parse(layout, s); err == nil {
			return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC), nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid date %q (expected YYYY-MM-DD or DD/MM/YYYY)", s)
}
