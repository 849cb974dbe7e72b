package server

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"taskflow/internal/models"
	"taskflow/internal/storage/sqlite"
)

type taskRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Status      string `json:"status"`
}

// handleListTasks returns every task, newest first.
func (s *Server) handleListTasks(c *gin.Context) {
	tasks, err := s.store.ListTasks(c.Request.Context())
	if err != nil {
		s.respondError(c, http.StatusInternalServerError, "Failed to get tasks", err)
		return
	}
	if tasks == nil {
		tasks = []models.Task{}
	}
	respondData(c, http.StatusOK, tasks)
}

// handleGetTask returns a single task by id.
func (s *Server) handleGetTask(c *gin.Context) {
	id, ok := s.parseID(c, "id")
	if !ok {
		return
	}

	task, err := s.store.GetTask(c.Request.Context(), id)
	if errors.Is(err, sqlite.ErrTaskNotFound) {
		s.respondError(c, http.StatusNotFound, "Task not found", nil)
		return
	}
	if err != nil {
		s.respondError(c, http.StatusInternalServerError, "Failed to get task", err)
		return
	}
	respondData(c, http.StatusOK, task)
}

// handleCreateTask inserts a new task. Title is the only required field;
// status defaults to pending when omitted.
func (s *Server) handleCreateTask(c *gin.Context) {
	var req taskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		s.respondError(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}
	if strings.TrimSpace(req.Title) == "" {
		s.respondError(c, http.StatusBadRequest, "Title is required", nil)
		return
	}

	task, err := s.store.CreateTask(c.Request.Context(), req.Title, req.Description, req.Status)
	if err != nil {
		s.respondError(c, http.StatusInternalServerError, "Failed to create task", err)
		return
	}
	respondMessage(c, http.StatusCreated, task, "Task created successfully")
}

// handleUpdateTask overwrites title, description and status of an existing
// task. The existence check happens before the write so a missing id is a
// 404, never a silent no-op.
func (s *Server) handleUpdateTask(c *gin.Context) {
	id, ok := s.parseID(c, "id")
	if !ok {
		return
	}

	var req taskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		s.respondError(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	task, err := s.store.UpdateTask(c.Request.Context(), id, req.Title, req.Description, req.Status)
	if errors.Is(err, sqlite.ErrTaskNotFound) {
		s.respondError(c, http.StatusNotFound, "Task not found", nil)
		return
	}
	if err != nil {
		s.respondError(c, http.StatusInternalServerError, "Failed to update task", err)
		return
	}
	respondMessage(c, http.StatusOK, task, "Task updated successfully")
}

// handleDeleteTask removes a task and echoes its prior content back as
// confirmation.
func (s *Server) handleDeleteTask(c *gin.Context) {
	id, ok := s.parseID(c, "id")
	if !ok {
		return
	}

	task, err := s.store.DeleteTask(c.Request.Context(), id)
	if errors.Is(err, sqlite.ErrTaskNotFound) {
		s.respondError(c, http.StatusNotFound, "Task not found", nil)
		return
	}
	if err != nil {
		s.respondError(c, http.StatusInternalServerError, "Failed to delete task", err)
		return
	}
	respondMessage(c, http.StatusOK, task, "Task deleted successfully")
}
