package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"taskflow/internal/models"
)

// TaskInput carries the writable task fields for create and update calls.
type TaskInput struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Status      string `json:"status"`
}

// APIError is a non-2xx response from the task service, carrying the HTTP
// status and the envelope's error string. Callers branch on Status, not on
// the message text.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error (status %d): %s", e.Status, e.Message)
}

// IsNotFound reports whether err is an APIError with a 404 status.
func IsNotFound(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.Status == http.StatusNotFound
}

// Client is a thin transport wrapper over the task service REST surface. It
// unwraps the response envelope and applies no business logic of its own.
type Client struct {
	baseURL string
	http    *http.Client
}

// New builds a client for the service at baseURL, e.g. "http://localhost:5000".
func New(baseURL string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{},
	}
}

type wireEnvelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   string          `json:"error"`
	Message string          `json:"message"`
}

// do performs the HTTP exchange and decodes the envelope. Transport failures
// surface as wrapped errors; non-2xx responses become an *APIError.
func (c *Client) do(ctx context.Context, method, path string, body any) (wireEnvelope, error) {
	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return wireEnvelope{}, fmt.Errorf("encode request: %w", err)
		}
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return wireEnvelope{}, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return wireEnvelope{}, fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	var env wireEnvelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		return wireEnvelope{}, fmt.Errorf("decode response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		message := env.Error
		if message == "" {
			message = resp.Status
		}
		return wireEnvelope{}, &APIError{Status: resp.StatusCode, Message: message}
	}
	return env, nil
}

// ListTasks fetches all tasks, newest first.
func (c *Client) ListTasks(ctx context.Context) ([]models.Task, error) {
	env, err := c.do(ctx, http.MethodGet, "/api/tasks", nil)
	if err != nil {
		return nil, err
	}
	var tasks []models.Task
	if err := json.Unmarshal(env.Data, &tasks); err != nil {
		return nil, fmt.Errorf("decode tasks: %w", err)
	}
	return tasks, nil
}

// GetTask fetches a single task by id.
func (c *Client) GetTask(ctx context.Context, id int64) (models.Task, error) {
	return c.taskCall(ctx, http.MethodGet, fmt.Sprintf("/api/tasks/%d", id), nil)
}

// CreateTask creates a new task and returns it with the assigned id and
// timestamps.
func (c *Client) CreateTask(ctx context.Context, in TaskInput) (models.Task, error) {
	return c.taskCall(ctx, http.MethodPost, "/api/tasks", in)
}

// UpdateTask overwrites a task's fields and returns the updated row.
func (c *Client) UpdateTask(ctx context.Context, id int64, in TaskInput) (models.Task, error) {
	return c.taskCall(ctx, http.MethodPut, fmt.Sprintf("/api/tasks/%d", id), in)
}

// DeleteTask removes a task and returns its content as it stood before the
// delete.
func (c *Client) DeleteTask(ctx context.Context, id int64) (models.Task, error) {
	return c.taskCall(ctx, http.MethodDelete, fmt.Sprintf("/api/tasks/%d", id), nil)
}

func (c *Client) taskCall(ctx context.Context, method, path string, body any) (models.Task, error) {
	env, err := c.do(ctx, method, path, body)
	if err != nil {
		return models.Task{}, err
	}
	var task models.Task
	if err := json.Unmarshal(env.Data, &task); err != nil {
		return models.Task{}, fmt.Errorf("decode task: %w", err)
	}
	return task, nil
}
