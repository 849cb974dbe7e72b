package models_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"taskflow/internal/models"
)

func TestCount(t *testing.T) {
	tasks := []models.Task{
		{Status: models.StatusPending},
		{Status: models.StatusPending},
		{Status: models.StatusInProgress},
		{Status: models.StatusCompleted},
		{Status: "something else"},
	}

	c := models.Count(tasks)
	assert.Equal(t, 5, c.Total)
	assert.Equal(t, 2, c.Pending)
	assert.Equal(t, 1, c.InProgress)
	assert.Equal(t, 1, c.Completed)
}

func TestCountEmpty(t *testing.T) {
	assert.Equal(t, models.Counts{}, models.Count(nil))
}
