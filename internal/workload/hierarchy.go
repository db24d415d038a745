package workload

import (
	"errors"
	"fmt"
	"time"

	"github.com/arqdariogomez/dashboard-carga-sub001/internal/domain"
)

// ErrCyclicHierarchy reports a parent chain that loops back on itself.
var ErrCyclicHierarchy = errors.New("cyclic project hierarchy")

// Node is one project in the hierarchy forest with its nested children.
type Node struct {
	Project  domain.Project
	Children []*Node
}

// BuildHierarchy arranges the projects into a forest. Roots are projects
// with no parent or an unresolvable one; sibling order preserves input
// order. The build is total: members of a parent cycle are promoted to
// roots instead of looping the traversal.
func BuildHierarchy(projects []domain.Project) []*Node {
	byID := indexByID(projects)
	kids := childIndex(projects, byID)

	visited := make(map[string]bool, len(projects))
	var attach func(n *Node)
	attach = func(n *Node) {
		for _, child := range kids[n.Project.ID] {
			if visited[child.ID] {
				continue
			}
			visited[child.ID] = true
			cn := &Node{Project: child}
			attach(cn)
			n.Children = append(n.Children, cn)
		}
	}

	var roots []*Node
	for _, p := range projects {
		if p.ParentID != nil {
			if _, ok := byID[*p.ParentID]; ok {
				continue
			}
		}
		if visited[p.ID] {
			continue
		}
		visited[p.ID] = true
		root := &Node{Project: p}
		attach(root)
		roots = append(roots, root)
	}

	// Anything still unvisited hangs off a cycle. Promote the first member
	// encountered; its chain attaches underneath and terminates there.
	for _, p := range projects {
		if visited[p.ID] {
			continue
		}
		visited[p.ID] = true
		root := &Node{Project: p}
		attach(root)
		roots = append(roots, root)
	}
	return roots
}

// CheckHierarchy walks every parent chain and returns ErrCyclicHierarchy,
// wrapped with an offending project id, if any chain loops. Unresolvable
// parents are not an error here; BuildHierarchy treats them as roots.
func CheckHierarchy(projects []domain.Project) error {
	byID := indexByID(projects)
	state := make(map[string]int, len(projects)) // 0 unseen, 1 on chain, 2 clear
	for _, p := range projects {
		id := p.ID
		var chain []string
		for {
			if state[id] == 2 {
				break
			}
			if state[id] == 1 {
				return fmt.Errorf("%w: project %s", ErrCyclicHierarchy, id)
			}
			state[id] = 1
			chain = append(chain, id)
			cur, ok := byID[id]
			if !ok || cur.ParentID == nil {
				break
			}
			id = *cur.ParentID
		}
		for _, c := range chain {
			state[c] = 2
		}
	}
	return nil
}

// IsParent reports whether any project lists id as its parent.
func IsParent(id string, projects []domain.Project) bool {
	for _, p := range projects {
		if p.ParentID != nil && *p.ParentID == id {
			return true
		}
	}
	return false
}

// AggregateFromChildren rolls a parent's subtree up into one pseudo-project:
// earliest child start, latest child end, summed required days, derived
// fields recomputed over that merged schedule. Children that are themselves
// parents contribute their own rolled-up values rather than stored ones. A
// non-parent id degrades to the project's own computed fields; an unknown id
// yields a zero record.
func AggregateFromChildren(parentID string, projects []domain.Project, cfg domain.Config) domain.Project {
	cal := NewCalendar(cfg)
	mode := cfg.Mode()
	byID := indexByID(projects)
	kids := childIndex(projects, byID)

	base, known := byID[parentID]
	if !known {
		base = domain.Project{ID: parentID}
	}
	if len(kids[parentID]) == 0 {
		return computeFields(base, cal, mode)
	}

	visited := map[string]bool{parentID: true}
	start, end, required := rollupSchedule(parentID, kids, visited)

	merged := base
	merged.StartDate = copyDate(start)
	merged.EndDate = copyDate(end)
	merged.DaysRequired = required
	return computeFields(merged, cal, mode)
}

// rollupSchedule merges the schedules of id's children recursively. The
// visited set bounds traversal under cyclic input; a node whose children all
// loop back up the chain counts as a leaf so its stored schedule survives.
func rollupSchedule(id string, kids map[string][]domain.Project, visited map[string]bool) (start, end *time.Time, required float64) {
	for _, child := range kids[id] {
		if visited[child.ID] {
			continue
		}
		visited[child.ID] = true

		cs, ce, cr := child.StartDate, child.EndDate, child.DaysRequired
		if hasUnvisited(kids[child.ID], visited) {
			cs, ce, cr = rollupSchedule(child.ID, kids, visited)
		}
		if cs != nil && (start == nil || cs.Before(*start)) {
			start = cs
		}
		if ce != nil && (end == nil || ce.After(*end)) {
			end = ce
		}
		required += cr
	}
	return start, end, required
}

func hasUnvisited(children []domain.Project, visited map[string]bool) bool {
	for _, c := range children {
		if !visited[c.ID] {
			return true
		}
	}
	return false
}

func copyDate(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	d := day(*t)
	return &d
}

func indexByID(projects []domain.Project) map[string]domain.Project {
	byID := make(map[string]domain.Project, len(projects))
	for _, p := range projects {
		byID[p.ID] = p
	}
	return byID
}

// childIndex groups projects under their resolvable parents, preserving
// input order among siblings.
func childIndex(projects []domain.Project, byID map[string]domain.Project) map[string][]domain.Project {
	kids := make(map[string][]domain.Project)
	for _, p := range projects {
		if p.ParentID == nil {
			continue
		}
		if _, ok := byID[*p.ParentID]; !ok {
			continue
		}
		kids[*p.ParentID] = append(kids[*p.ParentID], p)
	}
	return kids
}
