package importer

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/arqdariogomez/dashboard-carga-sub001/internal/domain"
)

// Convert transforms a validated ImportSchema into domain projects ready for
// persistence. Call ValidateImportSchema first; Convert assumes the schema is
// valid. Rows keep their file order so the stored list matches the sheet.
func Convert(schema *ImportSchema) []*domain.Project {
	now := time.Now().UTC()

	// First pass assigns IDs so parent refs resolve regardless of row order.
	refMap := make(map[string]string) // ref -> UUID
	ids := make([]string, len(schema.Projects))
	for i, p := range schema.Projects {
		ids[i] = uuid.New().String()
		if p.Ref != "" {
			refMap[p.Ref] = ids[i]
		}
	}

	projects := make([]*domain.Project, 0, len(schema.Projects))
	for i, p := range schema.Projects {
		var parentID *string
		if p.ParentRef != nil && *p.ParentRef != "" && *p.ParentRef != p.Ref {
			if pid, ok := refMap[*p.ParentRef]; ok {
				parentID = &pid
			}
		}

		proj := &domain.Project{
			ID:           ids[i],
			Name:         strings.TrimSpace(p.Name),
			Branch:       strings.TrimSpace(p.Branch),
			StartDate:    parseOptionalDate(p.StartDate),
			EndDate:      parseOptionalDate(p.EndDate),
			Assignees:    cleanPeople(p.Assignees),
			DaysRequired: p.DaysRequired,
			Priority:     domain.Priority(strings.ToLower(p.Priority)),
			Type:         strings.TrimSpace(p.Type),
			BlockedBy:    strings.TrimSpace(p.BlockedBy),
			BlocksTo:     strings.TrimSpace(p.BlocksTo),
			ReportedLoad: p.ReportedLoad,
			ParentID:     parentID,
			IsExpanded:   true,
			CreatedAt:    now,
			UpdatedAt:    now,
		}
		projects = append(projects, proj)
	}
	return projects
}

func parseOptionalDate(s *string) *time.Time {
	if s == nil || *s == "" {
		return nil
	}
	t, err := parseFlexibleDate(*s)
	if err != nil {
		return nil
	}
	return &t
}

// cleanPeople trims each assignee and drops duplicates, keeping first
// occurrence order.
func cleanPeople(people []string) []string {
	var out []string
	seen := make(map[string]bool)
	for _, p := range people {
		name := strings.TrimSpace(p)
		if name == "" {
			continue
		}
		key := strings.ToLower(name)
		if seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, name)
	}
	return out
}
