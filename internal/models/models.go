package models

import "time"

// Task is the single persisted entity: a unit of work tracked by the user.
type Task struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// Statuses a task moves through. The store defaults new tasks to pending.
const (
	StatusPending    = "pending"
	StatusInProgress = "in-progress"
	StatusCompleted  = "completed"
)

// ValidStatuses enumerates the statuses the client UI offers.
var ValidStatuses = map[string]struct{}{
	StatusPending:    {},
	StatusInProgress: {},
	StatusCompleted:  {},
}

// Counts summarizes a task collection for the stats header.
type Counts struct {
	Total      int
	Pending    int
	InProgress int
	Completed  int
}

// Count tallies tasks per status.
func Count(tasks []Task) Counts {
	c := Counts{Total: len(tasks)}
	for _, t := range tasks {
		switch t.Status {
		case StatusPending:
			c.Pending++
		case StatusInProgress:
			c.InProgress++
		case StatusCompleted:
			c.Completed++
		}
	}
	return c
}
