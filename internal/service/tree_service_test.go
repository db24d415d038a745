package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arqdariogomez/dashboard-carga-sub001/internal/testutil"
	"github.com/arqdariogomez/dashboard-carga-sub001/internal/workload"
)

func TestTree_ParentRollsUpChildren(t *testing.T) {
	_, projects := setupRepo(t)
	ctx := context.Background()

	// The parent carries its own (stale) schedule; the rollup must ignore it.
	parent := testutil.NewTestProject("Programa",
		testutil.WithDates(date(2025, 3, 1), date(2025, 3, 2)),
		testutil.WithDaysRequired(99),
	)
	require.NoError(t, projects.Create(ctx, parent))

	design := testutil.NewTestProject("Fase diseño",
		testutil.WithDates(date(2025, 3, 10), date(2025, 3, 14)),
		testutil.WithDaysRequired(3),
		testutil.WithParent(parent.ID),
	)
	require.NoError(t, projects.Create(ctx, design))

	works := testutil.NewTestProject("Fase obras",
		testutil.WithDates(date(2025, 3, 17), date(2025, 3, 21)),
		testutil.WithDaysRequired(4),
		testutil.WithParent(parent.ID),
	)
	require.NoError(t, projects.Create(ctx, works))

	svc := NewTreeService(projects, defaultCfg())
	resp, err := svc.Tree(ctx)
	require.NoError(t, err)

	require.Len(t, resp.Roots, 1)
	root := resp.Roots[0]
	assert.True(t, root.Rollup, "a row with children is synthetic")
	assert.Equal(t, "Programa", root.Project.Name, "identity stays the parent's own")

	require.NotNil(t, root.Project.StartDate)
	require.NotNil(t, root.Project.EndDate)
	assert.Equal(t, "2025-03-10", *root.Project.StartDate, "earliest child start, not the stored one")
	assert.Equal(t, "2025-03-21", *root.Project.EndDate, "latest child end")
	assert.InDelta(t, 7.0, root.Project.DaysRequired, 1e-9, "required days sum over children")
	assert.Equal(t, 10, root.Project.AssignedDays)
	assert.InDelta(t, 0.7, root.Project.DailyLoad, 1e-9)
	assert.InDelta(t, 3.0, root.Project.BalanceDays, 1e-9)

	require.Len(t, root.Children, 2)
	assert.Equal(t, "Fase diseño", root.Children[0].Project.Name, "siblings keep list order")
	assert.False(t, root.Children[0].Rollup)
	assert.InDelta(t, 0.6, root.Children[0].Project.DailyLoad, 1e-9)
	assert.Equal(t, "Fase obras", root.Children[1].Project.Name)
}

func TestTree_LeafKeepsOwnSchedule(t *testing.T) {
	_, projects := setupRepo(t)
	ctx := context.Background()

	leaf := testutil.NewTestProject("Suelto",
		testutil.WithDates(date(2025, 3, 10), date(2025, 3, 14)),
		testutil.WithDaysRequired(3),
	)
	require.NoError(t, projects.Create(ctx, leaf))

	svc := NewTreeService(projects, defaultCfg())
	resp, err := svc.Tree(ctx)
	require.NoError(t, err)

	require.Len(t, resp.Roots, 1)
	root := resp.Roots[0]
	assert.False(t, root.Rollup)
	assert.Equal(t, "2025-03-10", *root.Project.StartDate)
	assert.InDelta(t, 0.6, root.Project.DailyLoad, 1e-9)
	assert.InDelta(t, 2.0, root.Project.BalanceDays, 1e-9)
	assert.Empty(t, root.Children)
}

func TestTree_NestedRollupUsesGrandchildSchedules(t *testing.T) {
	_, projects := setupRepo(t)
	ctx := context.Background()

	grand := testutil.NewTestProject("Cartera")
	require.NoError(t, projects.Create(ctx, grand))

	mid := testutil.NewTestProject("Programa", testutil.WithParent(grand.ID))
	require.NoError(t, projects.Create(ctx, mid))

	leaf := testutil.NewTestProject("Redacción",
		testutil.WithDates(date(2025, 3, 10), date(2025, 3, 14)),
		testutil.WithDaysRequired(3),
		testutil.WithParent(mid.ID),
	)
	require.NoError(t, projects.Create(ctx, leaf))

	direct := testutil.NewTestProject("Licencias",
		testutil.WithDates(date(2025, 3, 24), date(2025, 3, 28)),
		testutil.WithDaysRequired(2),
		testutil.WithParent(grand.ID),
	)
	require.NoError(t, projects.Create(ctx, direct))

	svc := NewTreeService(projects, defaultCfg())
	resp, err := svc.Tree(ctx)
	require.NoError(t, err)

	require.Len(t, resp.Roots, 1)
	root := resp.Roots[0]
	assert.True(t, root.Rollup)
	assert.Equal(t, "2025-03-10", *root.Project.StartDate)
	assert.Equal(t, "2025-03-28", *root.Project.EndDate)
	assert.InDelta(t, 5.0, root.Project.DaysRequired, 1e-9)
	assert.Equal(t, 15, root.Project.AssignedDays, "three full working weeks")

	require.Len(t, root.Children, 2)
	middle := root.Children[0]
	assert.Equal(t, "Programa", middle.Project.Name)
	assert.True(t, middle.Rollup, "an undated middle layer rolls up too")
	assert.Equal(t, "2025-03-10", *middle.Project.StartDate)
	assert.Equal(t, "2025-03-14", *middle.Project.EndDate)
	require.Len(t, middle.Children, 1)
	assert.Equal(t, "Redacción", middle.Children[0].Project.Name)
}

func TestTree_ReportedLoadSurvivesRollup(t *testing.T) {
	_, projects := setupRepo(t)
	ctx := context.Background()

	parent := testutil.NewTestProject("Programa", testutil.WithReportedLoad(0.5))
	require.NoError(t, projects.Create(ctx, parent))

	child := testutil.NewTestProject("Fase",
		testutil.WithDates(date(2025, 3, 10), date(2025, 3, 14)),
		testutil.WithDaysRequired(3),
		testutil.WithParent(parent.ID),
	)
	require.NoError(t, projects.Create(ctx, child))

	svc := NewTreeService(projects, reportedCfg())
	resp, err := svc.Tree(ctx)
	require.NoError(t, err)

	require.Len(t, resp.Roots, 1)
	root := resp.Roots[0]
	assert.InDelta(t, 0.5, root.Project.DailyLoad, 1e-9, "the parent's reported value outranks the rolled-up rate")
	require.Len(t, root.Children, 1)
	assert.InDelta(t, 0.6, root.Children[0].Project.DailyLoad, 1e-9, "unreported child falls back to calculated")
}

func TestTree_DeletedParentPromotesChildren(t *testing.T) {
	_, projects := setupRepo(t)
	ctx := context.Background()

	parent := testutil.NewTestProject("Temporal")
	require.NoError(t, projects.Create(ctx, parent))

	child := testutil.NewTestProject("Huérfano",
		testutil.WithDates(date(2025, 3, 10), date(2025, 3, 14)),
		testutil.WithParent(parent.ID),
	)
	require.NoError(t, projects.Create(ctx, child))
	require.NoError(t, projects.Delete(ctx, parent.ID))

	svc := NewTreeService(projects, defaultCfg())
	resp, err := svc.Tree(ctx)
	require.NoError(t, err)

	require.Len(t, resp.Roots, 1)
	assert.Equal(t, "Huérfano", resp.Roots[0].Project.Name)
	assert.False(t, resp.Roots[0].Rollup)
}

func TestTree_RootsKeepListOrder(t *testing.T) {
	_, projects := setupRepo(t)
	ctx := context.Background()

	for _, name := range []string{"Zeta", "Alfa", "Media"} {
		require.NoError(t, projects.Create(ctx, testutil.NewTestProject(name)))
	}

	svc := NewTreeService(projects, defaultCfg())
	resp, err := svc.Tree(ctx)
	require.NoError(t, err)

	require.Len(t, resp.Roots, 3)
	assert.Equal(t, "Zeta", resp.Roots[0].Project.Name, "insertion order, not alphabetical")
	assert.Equal(t, "Alfa", resp.Roots[1].Project.Name)
	assert.Equal(t, "Media", resp.Roots[2].Project.Name)
}

func TestTree_CycleIsRejected(t *testing.T) {
	_, projects := setupRepo(t)
	ctx := context.Background()

	a := testutil.NewTestProject("A")
	require.NoError(t, projects.Create(ctx, a))
	b := testutil.NewTestProject("B", testutil.WithParent(a.ID))
	require.NoError(t, projects.Create(ctx, b))

	// Close the loop after both rows exist so the FK holds at every step.
	a.ParentID = &b.ID
	require.NoError(t, projects.Update(ctx, a))

	svc := NewTreeService(projects, defaultCfg())
	_, err := svc.Tree(ctx)
	require.Error(t, err)
	assert.True(t, errors.Is(err, workload.ErrCyclicHierarchy))
}

func TestTree_EmptyStore(t *testing.T) {
	_, projects := setupRepo(t)
	ctx := context.Background()

	svc := NewTreeService(projects, defaultCfg())
	resp, err := svc.Tree(ctx)
	require.NoError(t, err)
	assert.Empty(t, resp.Roots)
}
