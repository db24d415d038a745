package domain

import (
	"strings"
	"time"
)

// Project is one row of the imported project list. StartDate and EndDate are
// nil when the source sheet left them blank; a project without both dates
// contributes no load. The derived fields at the bottom are computed by the
// workload engine and are zero until ComputeFields has run.
type Project struct {
	ID           string
	Name         string
	Branch       string
	StartDate    *time.Time
	EndDate      *time.Time
	Assignees    []string
	DaysRequired float64
	Priority     Priority
	Type         string
	BlockedBy    string
	BlocksTo     string
	ReportedLoad *float64
	ParentID     *string
	IsExpanded   bool
	CreatedAt    time.Time
	UpdatedAt    time.Time

	// Derived scheduling fields.
	DailyLoad    float64
	AssignedDays int
	BalanceDays  float64
}

// HasSchedule reports whether both dates are present, i.e. whether the
// project can contribute load at all.
func (p *Project) HasSchedule() bool {
	return p.StartDate != nil && p.EndDate != nil
}

// IsAssignedTo reports whether the named person appears in Assignees.
// Matching is case-insensitive; importers trim whitespace on the way in.
func (p *Project) IsAssignedTo(person string) bool {
	for _, a := range p.Assignees {
		if strings.EqualFold(a, person) {
			return true
		}
	}
	return false
}

// DisplayID returns the best short identifier for display: the UUID
// truncated to 8 characters.
func (p *Project) DisplayID() string {
	if len(p.ID) >= 8 {
		return p.ID[:8]
	}
	return p.ID
}
