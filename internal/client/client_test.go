package client_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"taskflow/internal/client"
	"taskflow/internal/models"
)

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

func TestListTasksUnwrapsEnvelope(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/api/tasks", r.URL.Path)
		writeJSON(w, http.StatusOK, map[string]any{
			"success": true,
			"data": []map[string]any{
				{"id": 2, "title": "second", "status": "pending"},
				{"id": 1, "title": "first", "status": "completed"},
			},
		})
	}))
	defer srv.Close()

	c := client.New(srv.URL)
	tasks, err := c.ListTasks(context.Background())
	require.NoError(t, err)
	require.Len(t, tasks, 2)
	assert.Equal(t, int64(2), tasks[0].ID)
	assert.Equal(t, "first", tasks[1].Title)
}

func TestCreateTaskSendsFields(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/tasks", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var in client.TaskInput
		require.NoError(t, json.NewDecoder(r.Body).Decode(&in))
		assert.Equal(t, "Buy milk", in.Title)
		assert.Equal(t, models.StatusPending, in.Status)

		writeJSON(w, http.StatusCreated, map[string]any{
			"success": true,
			"data":    models.Task{ID: 7, Title: in.Title, Status: in.Status},
			"message": "Task created successfully",
		})
	}))
	defer srv.Close()

	c := client.New(srv.URL)
	task, err := c.CreateTask(context.Background(), client.TaskInput{Title: "Buy milk", Status: models.StatusPending})
	require.NoError(t, err)
	assert.Equal(t, int64(7), task.ID)
}

func TestNotFoundBecomesAPIError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusNotFound, map[string]any{
			"success": false,
			"error":   "Task not found",
		})
	}))
	defer srv.Close()

	c := client.New(srv.URL)
	_, err := c.GetTask(context.Background(), 999999)
	require.Error(t, err)
	assert.True(t, client.IsNotFound(err))

	var apiErr *client.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusNotFound, apiErr.Status)
	assert.Equal(t, "Task not found", apiErr.Message)
}

func TestServerErrorBecomesAPIError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusInternalServerError, map[string]any{
			"success": false,
			"error":   "Failed to get tasks",
		})
	}))
	defer srv.Close()

	c := client.New(srv.URL)
	_, err := c.ListTasks(context.Background())
	require.Error(t, err)
	assert.False(t, client.IsNotFound(err))

	var apiErr *client.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusInternalServerError, apiErr.Status)
}

func TestTransportFailureIsNotAPIError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()

	c := client.New(srv.URL)
	_, err := c.ListTasks(context.Background())
	require.Error(t, err)

	var apiErr *client.APIError
	assert.False(t, client.IsNotFound(err))
	assert.False(t, errors.As(err, &apiErr))
}

func TestDeleteTaskReturnsPriorRow(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		assert.Equal(t, "/api/tasks/3", r.URL.Path)
		writeJSON(w, http.StatusOK, map[string]any{
			"success": true,
			"data":    models.Task{ID: 3, Title: "old", Status: models.StatusCompleted},
			"message": "Task deleted successfully",
		})
	}))
	defer srv.Close()

	c := client.New(srv.URL)
	task, err := c.DeleteTask(context.Background(), 3)
	require.NoError(t, err)
	assert.Equal(t, "old", task.Title)
}
