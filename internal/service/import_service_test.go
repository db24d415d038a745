package service

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arqdariogomez/dashboard-carga-sub001/internal/domain"
	"github.com/arqdariogomez/dashboard-carga-sub001/internal/testutil"
)

func writeImportFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

const twoProjectJSON = `{
  "projects": [
    {
      "name": "Plan director",
      "branch": "Urbanismo",
      "start_date": "2025-03-10",
      "end_date": "2025-03-14",
      "assignees": ["Ana", "Bruno"],
      "days_required": 3,
      "priority": "high"
    },
    {
      "name": "Memoria anual",
      "start_date": "2025-03-17",
      "end_date": "2025-03-21",
      "assignees": ["Ana"],
      "days_required": 2
    }
  ]
}`

func TestImport_JSONAppendsToExistingList(t *testing.T) {
	database, projects := setupRepo(t)
	ctx := context.Background()

	require.NoError(t, projects.Create(ctx, testutil.NewTestProject("Ya existente")))

	svc := NewImportService(testutil.NewTestUoW(database))
	path := writeImportFile(t, "carga.json", twoProjectJSON)

	result, err := svc.ImportFile(ctx, path, false)
	require.NoError(t, err)
	assert.Equal(t, 2, result.ProjectCount)
	assert.Equal(t, 2, result.PersonCount, "Ana appears twice but counts once")
	assert.False(t, result.Replaced)

	list, err := projects.List(ctx)
	require.NoError(t, err)
	assert.Len(t, list, 3, "append mode keeps what was there")
}

func TestImport_ReplaceSwapsWholeList(t *testing.T) {
	database, projects := setupRepo(t)
	ctx := context.Background()

	require.NoError(t, projects.Create(ctx, testutil.NewTestProject("Viejo 1")))
	require.NoError(t, projects.Create(ctx, testutil.NewTestProject("Viejo 2")))

	svc := NewImportService(testutil.NewTestUoW(database))
	path := writeImportFile(t, "carga.json", twoProjectJSON)

	result, err := svc.ImportFile(ctx, path, true)
	require.NoError(t, err)
	assert.True(t, result.Replaced)

	list, err := projects.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "Plan director", list[0].Name)
	assert.Equal(t, "Memoria anual", list[1].Name)
	assert.Equal(t, []string{"Ana", "Bruno"}, list[0].Assignees)
}

func TestImport_ParentRefsLinkAcrossRows(t *testing.T) {
	database, projects := setupRepo(t)
	ctx := context.Background()

	// The child appears before its parent; refs must still resolve.
	content := `{
  "projects": [
    {"ref": "fase", "name": "Fase obras", "parent_ref": "programa"},
    {"ref": "programa", "name": "Programa"}
  ]
}`
	svc := NewImportService(testutil.NewTestUoW(database))
	_, err := svc.ImportFile(ctx, writeImportFile(t, "arbol.json", content), false)
	require.NoError(t, err)

	list, err := projects.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)

	byName := make(map[string]*domain.Project, len(list))
	for _, p := range list {
		byName[p.Name] = p
	}
	require.NotNil(t, byName["Fase obras"].ParentID)
	assert.Equal(t, byName["Programa"].ID, *byName["Fase obras"].ParentID)
}

func TestImport_ValidationReportsEveryProblem(t *testing.T) {
	database, projects := setupRepo(t)
	ctx := context.Background()

	require.NoError(t, projects.Create(ctx, testutil.NewTestProject("Intacto")))

	content := `{
  "projects": [
    {"name": "", "days_required": 1},
    {"name": "Negativo", "days_required": -2}
  ]
}`
	svc := NewImportService(testutil.NewTestUoW(database))
	_, err := svc.ImportFile(ctx, writeImportFile(t, "malo.json", content), true)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "import validation failed (2 errors)")
	assert.Contains(t, err.Error(), "projects[0].name is required")
	assert.Contains(t, err.Error(), "projects[1].days_required must not be negative")

	list, err := projects.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1, "a rejected file changes nothing, even in replace mode")
	assert.Equal(t, "Intacto", list[0].Name)
}

func TestImport_ReplaceRollsBackOnFailure(t *testing.T) {
	database, projects := setupRepo(t)
	ctx := context.Background()

	require.NoError(t, projects.Create(ctx, testutil.NewTestProject("Superviviente")))

	// Exec calls in replace mode: #1 = delete all, then per project
	// insert + assignee delete + one insert per assignee. With two
	// single-assignee projects, #5 is the second project's insert: the
	// first project is already in and the old list already wiped.
	failUoW := &testutil.FailOnNthExecUoW{
		DB:     database,
		FailOn: 5,
		Err:    fmt.Errorf("injected insert failure"),
	}
	svc := NewImportService(failUoW)

	content := `{
  "projects": [
    {"name": "Primero", "assignees": ["Ana"]},
    {"name": "Segundo", "assignees": ["Bruno"]}
  ]
}`
	_, err := svc.ImportFile(ctx, writeImportFile(t, "parcial.json", content), true)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "injected insert failure")

	list, err := projects.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1, "rollback must restore the pre-import list")
	assert.Equal(t, "Superviviente", list[0].Name)
}

func TestImport_CSVRoundTrip(t *testing.T) {
	database, projects := setupRepo(t)
	ctx := context.Background()

	content := "name,start_date,end_date,assignees,days_required\n" +
		"Expediente 12,2025-03-10,2025-03-14,\"Ana; Carla\",3\n" +
		"Expediente 13,2025-03-17,2025-03-21,Bruno,\"2,5\"\n"

	svc := NewImportService(testutil.NewTestUoW(database))
	result, err := svc.ImportFile(ctx, writeImportFile(t, "expedientes.csv", content), false)
	require.NoError(t, err)
	assert.Equal(t, 2, result.ProjectCount)
	assert.Equal(t, 3, result.PersonCount)

	list, err := projects.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, []string{"Ana", "Carla"}, list[0].Assignees)
	assert.InDelta(t, 2.5, list[1].DaysRequired, 1e-9, "decimal comma parsed")
}

func TestImport_UnsupportedExtension(t *testing.T) {
	database, _ := setupRepo(t)
	ctx := context.Background()

	svc := NewImportService(testutil.NewTestUoW(database))
	_, err := svc.ImportFile(ctx, writeImportFile(t, "carga.txt", "whatever"), false)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported import format")
}

func TestImport_MissingFile(t *testing.T) {
	database, _ := setupRepo(t)
	ctx := context.Background()

	svc := NewImportService(testutil.NewTestUoW(database))
	_, err := svc.ImportFile(ctx, filepath.Join(t.TempDir(), "no-existe.json"), false)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "loading import file")
}
