package db_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/arqdariogomez/dashboard-carga-sub001/internal/db"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openUOW(t *testing.T) *db.SQLiteUnitOfWork {
	t.Helper()
	database, err := db.OpenDB(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { database.Close() })
	return db.NewSQLiteUnitOfWork(database)
}

func insertProject(ctx context.Context, tx db.DBTX, id, name string) error {
	_, err := tx.ExecContext(ctx, `INSERT INTO projects (id, name, created_at, updated_at)
		VALUES (?, ?, '2025-01-01T00:00:00Z', '2025-01-01T00:00:00Z')`, id, name)
	return err
}

func projectExists(uow *db.SQLiteUnitOfWork, id string) bool {
	var found bool
	_ = uow.WithinTx(context.Background(), func(ctx context.Context, tx db.DBTX) error {
		var name string
		row := tx.QueryRowContext(ctx, `SELECT name FROM projects WHERE id = ?`, id)
		if err := row.Scan(&name); err == nil {
			found = true
		}
		return nil
	})
	return found
}

func TestWithinTx_CommitOnSuccess(t *testing.T) {
	uow := openUOW(t)

	err := uow.WithinTx(context.Background(), func(ctx context.Context, tx db.DBTX) error {
		return insertProject(ctx, tx, "p1", "Committed")
	})
	require.NoError(t, err)

	assert.True(t, projectExists(uow, "p1"), "row should exist after commit")
}

func TestWithinTx_RollbackOnError(t *testing.T) {
	uow := openUOW(t)

	err := uow.WithinTx(context.Background(), func(ctx context.Context, tx db.DBTX) error {
		if err := insertProject(ctx, tx, "p2", "Doomed"); err != nil {
			return err
		}
		return fmt.Errorf("deliberate failure")
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "deliberate failure")

	assert.False(t, projectExists(uow, "p2"), "row should not exist after rollback")
}

func TestWithinTx_RollbackOnPanic(t *testing.T) {
	uow := openUOW(t)

	assert.Panics(t, func() {
		_ = uow.WithinTx(context.Background(), func(ctx context.Context, tx db.DBTX) error {
			_ = insertProject(ctx, tx, "p3", "Panicked")
			panic("boom")
		})
	})

	assert.False(t, projectExists(uow, "p3"), "row should not exist after panic rollback")
}
