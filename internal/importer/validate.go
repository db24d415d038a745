package importer

import (
	"fmt"
)

var validPriorities = map[string]bool{"": true, "low": true, "medium": true, "high": true}

// reportedLoadCeiling caps plausible manual overrides; anything above two
// full days of load per day is a typo, not a workload.
const reportedLoadCeiling = 2.0

// ValidateImportSchema checks the import schema for errors before conversion.
// Returns a slice of all validation errors found.
func ValidateImportSchema(schema *ImportSchema) []error {
	var errs []error

	if len(schema.Projects) == 0 {
		return []error{fmt.Errorf("import file contains no projects")}
	}

	refs := make(map[string]bool)
	for i, p := range schema.Projects {
		prefix := fmt.Sprintf("projects[%d]", i)

		if p.Name == "" {
			errs = append(errs, fmt.Errorf("%s.name is required", prefix))
		}
		if p.Ref != "" {
			if refs[p.Ref] {
				errs = append(errs, fmt.Errorf("%s.ref: duplicate ref %q", prefix, p.Ref))
			}
			refs[p.Ref] = true
		}

		errs = append(errs, validateOptionalDate(prefix+".start_date", p.StartDate)...)
		errs = append(errs, validateOptionalDate(prefix+".end_date", p.EndDate)...)
		if p.StartDate != nil && p.EndDate != nil {
			start, startErr := parseFlexibleDate(*p.StartDate)
			end, endErr := parseFlexibleDate(*p.EndDate)
			if startErr == nil && endErr == nil && start.After(end) {
				errs = append(errs, fmt.Errorf("%s: start_date %q is after end_date %q", prefix, *p.StartDate, *p.EndDate))
			}
		}

		if p.DaysRequired < 0 {
			errs = append(errs, fmt.Errorf("%s.days_required must not be negative (got %v)", prefix, p.DaysRequired))
		}
		if !validPriorities[p.Priority] {
			errs = append(errs, fmt.Errorf("%s.priority: invalid value %q", prefix, p.Priority))
		}
		if p.ReportedLoad != nil && (*p.ReportedLoad < 0 || *p.ReportedLoad > reportedLoadCeiling) {
			errs = append(errs, fmt.Errorf("%s.reported_load must be between 0 and %v (got %v)", prefix, reportedLoadCeiling, *p.ReportedLoad))
		}
	}

	errs = append(errs, validateParentRefs(schema.Projects, refs)...)
	return errs
}

func validateParentRefs(projects []ProjectImport, refs map[string]bool) []error {
	var errs []error

	for i, p := range projects {
		if p.ParentRef == nil || *p.ParentRef == "" {
			continue
		}
		prefix := fmt.Sprintf("projects[%d]", i)
		if !refs[*p.ParentRef] {
			errs = append(errs, fmt.Errorf("%s.parent_ref: ref %q not found in file", prefix, *p.ParentRef))
			continue
		}
		if p.Ref != "" && *p.ParentRef == p.Ref {
			errs = append(errs, fmt.Errorf("%s: project is its own parent (ref %q)", prefix, p.Ref))
		}
	}

	errs = append(errs, detectParentCycles(projects)...)
	return errs
}

// detectParentCycles walks the parent_ref graph with a three-color DFS and
// reports any loop. A cyclic file would otherwise only surface later, when
// the tree view refuses to render it.
func detectParentCycles(projects []ProjectImport) []error {
	parent := make(map[string]string)
	for _, p := range projects {
		if p.Ref == "" || p.ParentRef == nil || *p.ParentRef == "" || *p.ParentRef == p.Ref {
			continue
		}
		parent[p.Ref] = *p.ParentRef
	}

	const (
		white = 0 // unvisited
		gray  = 1 // in current path
		black = 2 // fully processed
	)

	color := make(map[string]int)
	var errs []error

	var visit func(ref string) bool
	visit = func(ref string) bool {
		color[ref] = gray
		if up, ok := parent[ref]; ok {
			if color[up] == gray {
				errs = append(errs, fmt.Errorf("circular parent chain detected involving %q and %q", ref, up))
				return true
			}
			if color[up] == white {
				if visit(up) {
					return true
				}
			}
		}
		color[ref] = black
		return false
	}

	for ref := range parent {
		if color[ref] == white {
			visit(ref)
		}
	}

	return errs
}

func validateOptionalDate(field string, dateStr *string) []error {
	if dateStr == nil || *dateStr == "" {
		return nil
	}
	if _, err := parseFlexibleDate(*dateStr); err != nil {
		return []error{fmt.Errorf("%s: %v", field, err)}
	}
	return nil
}
