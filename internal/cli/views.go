package cli

import (
	"fmt"
	"io"
	"strings"
	"time"

	"taskflow/internal/models"
)

// statusMarker returns the list marker for a task status.
func statusMarker(status string) string {
	switch status {
	case models.StatusCompleted:
		return "[x]"
	case models.StatusInProgress:
		return "[~]"
	default:
		return "[ ]"
	}
}

// formatAge renders a timestamp relative to now: Today, Yesterday, N days
// ago, then a short date.
func formatAge(t, now time.Time) string {
	days := int(now.Sub(t).Hours() / 24)
	switch {
	case days <= 0:
		return "Today"
	case days == 1:
		return "Yesterday"
	case days < 7:
		return fmt.Sprintf("%d days ago", days)
	default:
		return t.Format("Jan 2")
	}
}

// renderList writes the stats header and one row per task.
func renderList(w io.Writer, tasks []models.Task, now time.Time) {
	counts := models.Count(tasks)
	fmt.Fprintf(w, "Tasks: %d total | %d pending | %d in progress | %d completed\n",
		counts.Total, counts.Pending, counts.InProgress, counts.Completed)

	if len(tasks) == 0 {
		fmt.Fprintln(w, "No tasks yet. Add one with: add")
		return
	}

	for _, t := range tasks {
		fmt.Fprintf(w, "  %s #%d %s (%s, %s)\n",
			statusMarker(t.Status), t.ID, t.Title, t.Status, formatAge(t.CreatedAt, now))
		if t.Description != "" {
			fmt.Fprintf(w, "      %s\n", t.Description)
		}
	}
}

// renderTask writes the full detail of a single task.
func renderTask(w io.Writer, t models.Task, now time.Time) {
	fmt.Fprintf(w, "#%d %s\n", t.ID, t.Title)
	fmt.Fprintf(w, "  status:  %s\n", t.Status)
	if t.Description != "" {
		fmt.Fprintf(w, "  notes:   %s\n", t.Description)
	}
	fmt.Fprintf(w, "  created: %s\n", formatAge(t.CreatedAt, now))
	if !t.UpdatedAt.Equal(t.CreatedAt) {
		fmt.Fprintf(w, "  updated: %s\n", formatAge(t.UpdatedAt, now))
	}
}

// confirmed reports whether an answer to a y/N prompt is affirmative.
func confirmed(answer string) bool {
	switch strings.ToLower(strings.TrimSpace(answer)) {
	case "y", "yes":
		return true
	}
	return false
}
