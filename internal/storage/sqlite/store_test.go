package sqlite_test

import (
	"context"
	"io"
	"log/slog"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"taskflow/internal/models"
	"taskflow/internal/storage/sqlite"
)

func newTestStore(t *testing.T) *sqlite.Store {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	store, err := sqlite.Open(filepath.Join(t.TempDir(), "test.db"), logger)
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func TestOpenEmptyPath(t *testing.T) {
	_, err := sqlite.Open("", nil)
	require.Error(t, err)
}

func TestCreateTaskDefaults(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	task, err := store.CreateTask(ctx, "Buy milk", "", "")
	require.NoError(t, err)

	assert.NotZero(t, task.ID)
	assert.Equal(t, "Buy milk", task.Title)
	assert.Empty(t, task.Description)
	assert.Equal(t, models.StatusPending, task.Status)
	assert.True(t, task.UpdatedAt.Equal(task.CreatedAt), "fresh task must have created_at = updated_at")
}

func TestCreateTaskBlankTitle(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	_, err := store.CreateTask(ctx, "   ", "", "")
	require.Error(t, err)

	tasks, err := store.ListTasks(ctx)
	require.NoError(t, err)
	assert.Empty(t, tasks, "a rejected create must persist no row")
}

func TestCreateTaskStatusPassthrough(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	task, err := store.CreateTask(ctx, "Write report", "quarterly numbers", models.StatusInProgress)
	require.NoError(t, err)
	assert.Equal(t, models.StatusInProgress, task.Status)
	assert.Equal(t, "quarterly numbers", task.Description)
}

func TestListTasksNewestFirst(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	var ids []int64
	for _, title := range []string{"first", "second", "third"} {
		task, err := store.CreateTask(ctx, title, "", "")
		require.NoError(t, err)
		ids = append(ids, task.ID)
	}

	tasks, err := store.ListTasks(ctx)
	require.NoError(t, err)
	require.Len(t, tasks, 3)

	assert.Equal(t, ids[2], tasks[0].ID)
	assert.Equal(t, ids[1], tasks[1].ID)
	assert.Equal(t, ids[0], tasks[2].ID)
	for i := 1; i < len(tasks); i++ {
		assert.False(t, tasks[i-1].CreatedAt.Before(tasks[i].CreatedAt))
	}
}

func TestGetTaskNotFound(t *testing.T) {
	store := newTestStore(t)

	_, err := store.GetTask(context.Background(), 999999)
	assert.ErrorIs(t, err, sqlite.ErrTaskNotFound)
}

func TestUpdateTask(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	created, err := store.CreateTask(ctx, "Buy milk", "", "")
	require.NoError(t, err)

	updated, err := store.UpdateTask(ctx, created.ID, "Buy milk", "2%", models.StatusCompleted)
	require.NoError(t, err)

	assert.Equal(t, created.ID, updated.ID)
	assert.Equal(t, "Buy milk", updated.Title)
	assert.Equal(t, "2%", updated.Description)
	assert.Equal(t, models.StatusCompleted, updated.Status)
	assert.True(t, updated.CreatedAt.Equal(created.CreatedAt), "created_at is immutable")
	assert.False(t, updated.UpdatedAt.Before(updated.CreatedAt), "updated_at must not precede created_at")
}

func TestUpdateTaskNotFound(t *testing.T) {
	store := newTestStore(t)

	_, err := store.UpdateTask(context.Background(), 42, "title", "", models.StatusPending)
	assert.ErrorIs(t, err, sqlite.ErrTaskNotFound)
}

func TestDeleteTaskReturnsPriorRow(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	created, err := store.CreateTask(ctx, "Buy milk", "2%", "")
	require.NoError(t, err)

	deleted, err := store.DeleteTask(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, deleted.ID)
	assert.Equal(t, "Buy milk", deleted.Title)
	assert.Equal(t, "2%", deleted.Description)

	_, err = store.GetTask(ctx, created.ID)
	assert.ErrorIs(t, err, sqlite.ErrTaskNotFound)
}

func TestDeleteTaskNotFound(t *testing.T) {
	store := newTestStore(t)

	_, err := store.DeleteTask(context.Background(), 42)
	assert.ErrorIs(t, err, sqlite.ErrTaskNotFound)
}
