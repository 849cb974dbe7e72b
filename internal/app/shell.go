// Package app holds the client-side application state: the transient task
// collection, the active view, and the task being edited. The collection is
// advisory; the store reached through the API remains the source of truth,
// and every mutation reconciles local state from the service response.
package app

import (
	"context"

	"taskflow/internal/client"
	"taskflow/internal/models"
)

// View names the two screens the client toggles between.
type View string

const (
	ViewList View = "list"
	ViewForm View = "form"
)

// API is the slice of the task service the shell depends on. *client.Client
// satisfies it; tests substitute a fake.
type API interface {
	ListTasks(ctx context.Context) ([]models.Task, error)
	GetTask(ctx context.Context, id int64) (models.Task, error)
	CreateTask(ctx context.Context, in client.TaskInput) (models.Task, error)
	UpdateTask(ctx context.Context, id int64, in client.TaskInput) (models.Task, error)
	DeleteTask(ctx context.Context, id int64) (models.Task, error)
}

// Shell routes user intent to the API and reconciles local state from the
// responses.
type Shell struct {
	api     API
	tasks   []models.Task
	loading bool
	errMsg  string
	editing *models.Task
	view    View
}

// NewShell builds a shell starting on the list view with an empty collection.
func NewShell(api API) *Shell {
	return &Shell{api: api, view: ViewList}
}

// Tasks returns the current local collection.
func (s *Shell) Tasks() []models.Task { return s.tasks }

// Loading reports whether a list fetch is in flight.
func (s *Shell) Loading() bool { return s.loading }

// ErrorMessage returns the current error banner text, empty when none.
func (s *Shell) ErrorMessage() string { return s.errMsg }

// CurrentView returns the active screen.
func (s *Shell) CurrentView() View { return s.view }

// Editing returns the task being edited, nil when the form is in create mode.
func (s *Shell) Editing() *models.Task { return s.editing }

// Counts derives the summary numbers shown in the list header.
func (s *Shell) Counts() models.Counts { return models.Count(s.tasks) }

// Load replaces the local collection from the service. On failure the stale
// collection is kept and the error banner is set instead.
func (s *Shell) Load(ctx context.Context) error {
	s.loading = true
	defer func() { s.loading = false }()

	tasks, err := s.api.ListTasks(ctx)
	if err != nil {
		s.errMsg = "Failed to load tasks"
		return err
	}
	s.tasks = tasks
	s.errMsg = ""
	return nil
}

// Fetch retrieves a single task straight from the service, bypassing the
// local collection.
func (s *Shell) Fetch(ctx context.Context, id int64) (models.Task, error) {
	return s.api.GetTask(ctx, id)
}

// ShowForm switches to the form in create mode.
func (s *Shell) ShowForm() {
	s.editing = nil
	s.view = ViewForm
}

// StartEdit switches to the form pre-populated with the target task. The
// target must be present in the local collection.
func (s *Shell) StartEdit(id int64) bool {
	for i := range s.tasks {
		if s.tasks[i].ID == id {
			t := s.tasks[i]
			s.editing = &t
			s.view = ViewForm
			return true
		}
	}
	return false
}

// CancelEdit returns to the list without touching the store.
func (s *Shell) CancelEdit() {
	s.editing = nil
	s.view = ViewList
}

// FormValues returns the initial form state: the editing target's fields, or
// blank fields with the pending status for a new task.
func (s *Shell) FormValues() client.TaskInput {
	if s.editing != nil {
		return client.TaskInput{
			Title:       s.editing.Title,
			Description: s.editing.Description,
			Status:      s.editing.Status,
		}
	}
	return client.TaskInput{Status: models.StatusPending}
}

// Submit routes the form to create or update depending on the editing target.
// On success the collection is reconciled in place and the view returns to
// the list.
func (s *Shell) Submit(ctx context.Context, in client.TaskInput) (models.Task, error) {
	if s.editing == nil {
		return s.create(ctx, in)
	}
	return s.update(ctx, s.editing.ID, in)
}

func (s *Shell) create(ctx context.Context, in client.TaskInput) (models.Task, error) {
	task, err := s.api.CreateTask(ctx, in)
	if err != nil {
		s.errMsg = "Failed to create task"
		return models.Task{}, err
	}
	s.tasks = append([]models.Task{task}, s.tasks...)
	s.errMsg = ""
	s.view = ViewList
	return task, nil
}

func (s *Shell) update(ctx context.Context, id int64, in client.TaskInput) (models.Task, error) {
	task, err := s.api.UpdateTask(ctx, id, in)
	if err != nil {
		s.errMsg = "Failed to update task"
		return models.Task{}, err
	}
	for i := range s.tasks {
		if s.tasks[i].ID == id {
			s.tasks[i] = task
			break
		}
	}
	s.editing = nil
	s.errMsg = ""
	s.view = ViewList
	return task, nil
}

// Delete removes a task through the API and drops it from the collection,
// returning the deleted row for the confirmation message.
func (s *Shell) Delete(ctx context.Context, id int64) (models.Task, error) {
	task, err := s.api.DeleteTask(ctx, id)
	if err != nil {
		s.errMsg = "Failed to delete task"
		return models.Task{}, err
	}
	kept := s.tasks[:0]
	for _, t := range s.tasks {
		if t.ID != id {
			kept = append(kept, t)
		}
	}
	s.tasks = kept
	s.errMsg = ""
	return task, nil
}
