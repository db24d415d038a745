package app

import (
	"time"

	"github.com/arqdariogomez/dashboard-carga-sub001/internal/domain"
)

const dateLayout = "2006-01-02"

// WorkloadPoint is one working day of a person's load series. TotalLoad is
// the sum of daily loads across every project active for the person on that
// date; values above 1.0 mean overcommitment and are expected output.
type WorkloadPoint struct {
	Date      time.Time `json:"date"`
	TotalLoad float64   `json:"total_load"`
}

// ProjectContribution is one project's share inside a period bucket.
// DailyLoad is the per-day rate, not a period total.
type ProjectContribution struct {
	ProjectID   string  `json:"project_id"`
	ProjectName string  `json:"project_name"`
	DailyLoad   float64 `json:"daily_load"`
}

// PeriodBucket is one display slot of a bucketed series. Start and End are
// inclusive dates clipped to the requested range.
type PeriodBucket struct {
	Start    time.Time             `json:"start"`
	End      time.Time             `json:"end"`
	AvgLoad  float64               `json:"avg_load"`
	Projects []ProjectContribution `json:"projects"`
}

// DateRange is an inclusive span of calendar dates.
type DateRange struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// Valid reports whether the range has both endpoints in order.
func (r DateRange) Valid() bool {
	return !r.Start.IsZero() && !r.End.IsZero() && !r.Start.After(r.End)
}

// Contains reports whether d falls inside the range, endpoints included.
func (r DateRange) Contains(d time.Time) bool {
	return !d.Before(r.Start) && !d.After(r.End)
}

// ProjectView is the presentation form of a computed project: dates as
// YYYY-MM-DD strings, derived fields included. Consumers must not mutate it
// back into the store.
type ProjectView struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	Branch       string   `json:"branch,omitempty"`
	StartDate    *string  `json:"start_date,omitempty"`
	EndDate      *string  `json:"end_date,omitempty"`
	Assignees    []string `json:"assignees"`
	DaysRequired float64  `json:"days_required"`
	Priority     string   `json:"priority,omitempty"`
	Type         string   `json:"type,omitempty"`
	BlockedBy    string   `json:"blocked_by,omitempty"`
	BlocksTo     string   `json:"blocks_to,omitempty"`
	ReportedLoad *float64 `json:"reported_load,omitempty"`
	ParentID     *string  `json:"parent_id,omitempty"`
	IsExpanded   bool     `json:"is_expanded"`
	DailyLoad    float64  `json:"daily_load"`
	AssignedDays int      `json:"assigned_days"`
	BalanceDays  float64  `json:"balance_days"`
}

// NewProjectView projects a domain record into its presentation form.
func NewProjectView(p domain.Project) ProjectView {
	v := ProjectView{
		ID:           p.ID,
		Name:         p.Name,
		Branch:       p.Branch,
		Assignees:    p.Assignees,
		DaysRequired: p.DaysRequired,
		Priority:     string(p.Priority),
		Type:         p.Type,
		BlockedBy:    p.BlockedBy,
		BlocksTo:     p.BlocksTo,
		ReportedLoad: p.ReportedLoad,
		ParentID:     p.ParentID,
		IsExpanded:   p.IsExpanded,
		DailyLoad:    p.DailyLoad,
		AssignedDays: p.AssignedDays,
		BalanceDays:  p.BalanceDays,
	}
	if p.StartDate != nil {
		s := p.StartDate.Format(dateLayout)
		v.StartDate = &s
	}
	if p.EndDate != nil {
		s := p.EndDate.Format(dateLayout)
		v.EndDate = &s
	}
	return v
}

// TimelineRequest asks for one person's bucketed workload. Nil From/To
// default to the span of the person's dated projects.
type TimelineRequest struct {
	Person      string
	Granularity domain.Granularity
	From        *time.Time
	To          *time.Time
}

// TimelineResponse carries everything a timeline renderer needs for one
// person: the raw daily series, the display buckets and the contributing
// projects with derived fields populated.
type TimelineResponse struct {
	Person      string             `json:"person"`
	Range       DateRange          `json:"range"`
	Granularity domain.Granularity `json:"granularity"`
	Series      []WorkloadPoint    `json:"series"`
	Buckets     []PeriodBucket     `json:"buckets"`
	Projects    []ProjectView      `json:"projects"`
}

// TeamRequest asks for the per-person overview. Nil From/To default to the
// span of all dated projects.
type TeamRequest struct {
	From *time.Time
	To   *time.Time
}

// PersonSummary is one dashboard row: how loaded a person is over the
// observed range.
type PersonSummary struct {
	Name           string  `json:"name"`
	ProjectCount   int     `json:"project_count"`
	PeakLoad       float64 `json:"peak_load"`
	AvgLoad        float64 `json:"avg_load"`
	OverloadedDays int     `json:"overloaded_days"`
}

// TeamSummary is the whole-team overview for the dashboard and /api/team.
type TeamSummary struct {
	Range   DateRange       `json:"range"`
	Persons []PersonSummary `json:"persons"`
}

// TreeNode is the response form of the project hierarchy. Parent rows carry
// rolled-up dates, required days and derived fields; Rollup marks them as
// synthetic.
type TreeNode struct {
	Project  ProjectView `json:"project"`
	Rollup   bool        `json:"rollup"`
	Children []*TreeNode `json:"children,omitempty"`
}

// TreeResponse is the full forest of root nodes.
type TreeResponse struct {
	Roots []*TreeNode `json:"roots"`
}

// ImportResult summarizes a completed project-list import.
type ImportResult struct {
	ProjectCount int  `json:"project_count"`
	PersonCount  int  `json:"person_count"`
	Replaced     bool `json:"replaced"`
}
