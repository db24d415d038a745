package workload

import (
	"errors"
	"testing"

	"github.com/arqdariogomez/dashboard-carga-sub001/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func TestBuildHierarchy_ForestWithNesting(t *testing.T) {
	projects := []domain.Project{
		{ID: "epic", Name: "Epic"},
		{ID: "c-1", Name: "First child", ParentID: strPtr("epic")},
		{ID: "solo", Name: "Standalone"},
		{ID: "c-2", Name: "Second child", ParentID: strPtr("epic")},
		{ID: "gc-1", Name: "Grandchild", ParentID: strPtr("c-1")},
	}

	roots := BuildHierarchy(projects)

	require.Len(t, roots, 2)
	assert.Equal(t, "epic", roots[0].Project.ID)
	assert.Equal(t, "solo", roots[1].Project.ID)

	require.Len(t, roots[0].Children, 2)
	assert.Equal(t, "c-1", roots[0].Children[0].Project.ID, "sibling order follows input order")
	assert.Equal(t, "c-2", roots[0].Children[1].Project.ID)

	require.Len(t, roots[0].Children[0].Children, 1)
	assert.Equal(t, "gc-1", roots[0].Children[0].Children[0].Project.ID)
}

func TestBuildHierarchy_UnresolvableParentBecomesRoot(t *testing.T) {
	projects := []domain.Project{
		{ID: "orphan", Name: "Orphan", ParentID: strPtr("deleted-elsewhere")},
	}

	roots := BuildHierarchy(projects)

	require.Len(t, roots, 1)
	assert.Equal(t, "orphan", roots[0].Project.ID)
	assert.Empty(t, roots[0].Children)
}

func TestBuildHierarchy_CycleMembersPromotedToRoots(t *testing.T) {
	projects := []domain.Project{
		{ID: "a", Name: "A", ParentID: strPtr("b")},
		{ID: "b", Name: "B", ParentID: strPtr("a")},
		{ID: "solo", Name: "Standalone"},
	}

	roots := BuildHierarchy(projects)

	// The build stays total: the first cycle member becomes a root and the
	// chain hangs beneath it exactly once.
	require.Len(t, roots, 2)
	assert.Equal(t, "solo", roots[0].Project.ID)
	assert.Equal(t, "a", roots[1].Project.ID)
	require.Len(t, roots[1].Children, 1)
	assert.Equal(t, "b", roots[1].Children[0].Project.ID)
	assert.Empty(t, roots[1].Children[0].Children, "the loop back to a is cut")
}

func TestBuildHierarchy_SelfParent(t *testing.T) {
	projects := []domain.Project{
		{ID: "a", Name: "A", ParentID: strPtr("a")},
	}

	roots := BuildHierarchy(projects)

	require.Len(t, roots, 1)
	assert.Empty(t, roots[0].Children)
}

func TestBuildHierarchy_EmptyInput(t *testing.T) {
	assert.Empty(t, BuildHierarchy(nil))
}

func TestCheckHierarchy_CleanForest(t *testing.T) {
	projects := []domain.Project{
		{ID: "epic"},
		{ID: "c-1", ParentID: strPtr("epic")},
		{ID: "gc-1", ParentID: strPtr("c-1")},
	}

	assert.NoError(t, CheckHierarchy(projects))
}

func TestCheckHierarchy_UnresolvableParentIsFine(t *testing.T) {
	projects := []domain.Project{
		{ID: "orphan", ParentID: strPtr("gone")},
	}

	assert.NoError(t, CheckHierarchy(projects))
}

func TestCheckHierarchy_DetectsCycle(t *testing.T) {
	projects := []domain.Project{
		{ID: "a", ParentID: strPtr("b")},
		{ID: "b", ParentID: strPtr("c")},
		{ID: "c", ParentID: strPtr("a")},
	}

	err := CheckHierarchy(projects)

	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrCyclicHierarchy))
}

func TestCheckHierarchy_DetectsSelfParent(t *testing.T) {
	projects := []domain.Project{
		{ID: "a", ParentID: strPtr("a")},
	}

	assert.True(t, errors.Is(CheckHierarchy(projects), ErrCyclicHierarchy))
}

func TestIsParent(t *testing.T) {
	projects := []domain.Project{
		{ID: "epic"},
		{ID: "c-1", ParentID: strPtr("epic")},
	}

	assert.True(t, IsParent("epic", projects))
	assert.False(t, IsParent("c-1", projects))
	assert.False(t, IsParent("missing", projects))
}

func TestAggregateFromChildren_MergesChildSchedules(t *testing.T) {
	projects := []domain.Project{
		{ID: "epic", Name: "Epic"},
		{
			ID: "c-1", Name: "Phase one", ParentID: strPtr("epic"),
			StartDate: datePtr(2025, 3, 10), EndDate: datePtr(2025, 3, 14),
			DaysRequired: 2,
		},
		{
			ID: "c-2", Name: "Phase two", ParentID: strPtr("epic"),
			StartDate: datePtr(2025, 3, 17), EndDate: datePtr(2025, 3, 21),
			DaysRequired: 3,
		},
	}

	got := AggregateFromChildren("epic", projects, domain.DefaultConfig())

	assert.Equal(t, "epic", got.ID)
	assert.Equal(t, "Epic", got.Name, "identity fields come from the parent")
	require.NotNil(t, got.StartDate)
	require.NotNil(t, got.EndDate)
	assert.Equal(t, date(2025, 3, 10), *got.StartDate, "earliest child start")
	assert.Equal(t, date(2025, 3, 21), *got.EndDate, "latest child end")
	assert.InDelta(t, 5.0, got.DaysRequired, 1e-9, "summed over children")
	assert.Equal(t, 10, got.AssignedDays, "derived over the merged span")
	assert.InDelta(t, 0.5, got.DailyLoad, 1e-9)
	assert.InDelta(t, 5.0, got.BalanceDays, 1e-9)
}

func TestAggregateFromChildren_ParentStoredScheduleIgnored(t *testing.T) {
	projects := []domain.Project{
		{
			ID: "epic", Name: "Epic",
			StartDate: datePtr(2024, 1, 1), EndDate: datePtr(2024, 1, 2),
			DaysRequired: 99,
		},
		{
			ID: "c-1", Name: "Only child", ParentID: strPtr("epic"),
			StartDate: datePtr(2025, 3, 10), EndDate: datePtr(2025, 3, 14),
			DaysRequired: 2,
		},
	}

	got := AggregateFromChildren("epic", projects, domain.DefaultConfig())

	assert.Equal(t, date(2025, 3, 10), *got.StartDate, "children define the span, not the parent row")
	assert.InDelta(t, 2.0, got.DaysRequired, 1e-9)
}

func TestAggregateFromChildren_NestedParentsRollUpRecursively(t *testing.T) {
	projects := []domain.Project{
		{ID: "g", Name: "Grand"},
		{
			// Mid-level parent with a bogus stored schedule: its rolled-up
			// values must flow upward instead.
			ID: "mid", Name: "Mid", ParentID: strPtr("g"),
			StartDate: datePtr(2020, 1, 1), EndDate: datePtr(2020, 1, 1),
			DaysRequired: 50,
		},
		{
			ID: "leaf-1", Name: "Leaf one", ParentID: strPtr("mid"),
			StartDate: datePtr(2025, 3, 10), EndDate: datePtr(2025, 3, 14),
			DaysRequired: 2,
		},
		{
			ID: "leaf-2", Name: "Leaf two", ParentID: strPtr("mid"),
			StartDate: datePtr(2025, 3, 17), EndDate: datePtr(2025, 3, 21),
			DaysRequired: 3,
		},
	}

	got := AggregateFromChildren("g", projects, domain.DefaultConfig())

	assert.Equal(t, date(2025, 3, 10), *got.StartDate)
	assert.Equal(t, date(2025, 3, 21), *got.EndDate)
	assert.InDelta(t, 5.0, got.DaysRequired, 1e-9, "mid's stored 50 never leaks into the rollup")
}

func TestAggregateFromChildren_UndatedChildrenStillSumDays(t *testing.T) {
	projects := []domain.Project{
		{ID: "epic", Name: "Epic"},
		{ID: "c-1", ParentID: strPtr("epic"), DaysRequired: 2},
		{
			ID: "c-2", ParentID: strPtr("epic"),
			StartDate: datePtr(2025, 3, 10), EndDate: datePtr(2025, 3, 14),
			DaysRequired: 3,
		},
	}

	got := AggregateFromChildren("epic", projects, domain.DefaultConfig())

	assert.Equal(t, date(2025, 3, 10), *got.StartDate, "only dated children shape the span")
	assert.Equal(t, date(2025, 3, 14), *got.EndDate)
	assert.InDelta(t, 5.0, got.DaysRequired, 1e-9, "every child counts toward required days")
}

func TestAggregateFromChildren_AllChildrenUndated(t *testing.T) {
	projects := []domain.Project{
		{ID: "epic", Name: "Epic"},
		{ID: "c-1", ParentID: strPtr("epic"), DaysRequired: 2},
		{ID: "c-2", ParentID: strPtr("epic"), DaysRequired: 4},
	}

	got := AggregateFromChildren("epic", projects, domain.DefaultConfig())

	assert.Nil(t, got.StartDate)
	assert.Nil(t, got.EndDate)
	assert.InDelta(t, 6.0, got.DaysRequired, 1e-9)
	assert.Zero(t, got.DailyLoad, "no merged schedule, no load")
	assert.Zero(t, got.AssignedDays)
}

func TestAggregateFromChildren_NonParentReturnsOwnComputedFields(t *testing.T) {
	projects := []domain.Project{
		{
			ID: "solo", Name: "Standalone",
			StartDate: datePtr(2025, 3, 10), EndDate: datePtr(2025, 3, 14),
			DaysRequired: 4,
		},
	}

	got := AggregateFromChildren("solo", projects, domain.DefaultConfig())

	assert.Equal(t, "solo", got.ID)
	assert.Equal(t, 5, got.AssignedDays)
	assert.InDelta(t, 0.8, got.DailyLoad, 1e-9)
}

func TestAggregateFromChildren_UnknownIDYieldsZeroRecord(t *testing.T) {
	got := AggregateFromChildren("nope", nil, domain.DefaultConfig())

	assert.Equal(t, "nope", got.ID)
	assert.Nil(t, got.StartDate)
	assert.Zero(t, got.DailyLoad)
}

func TestAggregateFromChildren_SurvivesCyclicInput(t *testing.T) {
	projects := []domain.Project{
		{ID: "a", Name: "A", ParentID: strPtr("b"), DaysRequired: 1},
		{
			ID: "b", Name: "B", ParentID: strPtr("a"),
			StartDate: datePtr(2025, 3, 10), EndDate: datePtr(2025, 3, 14),
			DaysRequired: 2,
		},
	}

	// Must terminate and produce something sane for either member.
	got := AggregateFromChildren("a", projects, domain.DefaultConfig())

	assert.Equal(t, "a", got.ID)
	assert.InDelta(t, 2.0, got.DaysRequired, 1e-9, "the chain is followed once, never looped")
}
