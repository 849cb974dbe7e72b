package cli

import (
	"errors"
	"fmt"
	"strings"

	"taskflow/internal/client"
	"taskflow/internal/models"
)

// errFormCancelled signals that the user backed out of the form.
var errFormCancelled = errors.New("form cancelled")

// lineReader reads one line of input with a prompt and an editable prefill.
// The readline instance satisfies it; tests use a scripted reader.
type lineReader interface {
	ReadLine(prompt, prefill string) (string, error)
}

// runForm walks the user through the task fields, starting from the given
// values (blank for create, the target task's fields for edit). The title is
// re-asked until non-empty; any unknown status text is accepted as typed, an
// empty answer keeps the prefill.
func runForm(r lineReader, initial client.TaskInput) (client.TaskInput, error) {
	out := initial

	for {
		title, err := r.ReadLine("Title: ", initial.Title)
		if err != nil {
			return client.TaskInput{}, errFormCancelled
		}
		if strings.TrimSpace(title) != "" {
			out.Title = strings.TrimSpace(title)
			break
		}
		fmt.Println("A title is required.")
	}

	description, err := r.ReadLine("Description (optional): ", initial.Description)
	if err != nil {
		return client.TaskInput{}, errFormCancelled
	}
	out.Description = strings.TrimSpace(description)

	statusPrompt := fmt.Sprintf("Status [%s|%s|%s]: ",
		models.StatusPending, models.StatusInProgress, models.StatusCompleted)
	status, err := r.ReadLine(statusPrompt, initial.Status)
	if err != nil {
		return client.TaskInput{}, errFormCancelled
	}
	if s := strings.TrimSpace(status); s != "" {
		out.Status = s
	}

	return out, nil
}
