package valueobjects

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatus_CanTransitionTo(t *testing.T) {
	tests := []struct {
		from    Status
		to      Status
		allowed bool
	}{
		{StatusOpen, StatusAssigned, true},
		{StatusOpen, StatusInProgress, true},
		{StatusOpen, StatusCompleted, false},
		{StatusAssigned, StatusInProgress, true},
		{StatusAssigned, StatusAssigned, false},
		{StatusInProgress, StatusCompleted, true},
		{StatusInProgress, StatusClosed, false},
		{StatusCompleted, StatusClosed, true},
		{StatusCompleted, StatusInProgress, false},
		{StatusClosed, StatusOpen, false},
		{StatusCanceled, StatusOpen, false},
	}

	for _, tt := range tests {
		t.Run(string(tt.from)+"_to_"+string(tt.to), func(t *testing.T) {
			assert.Equal(t, tt.allowed, tt.from.CanTransitionTo(tt.to))
		})
	}
}

func TestStatus_Guards(t *testing.T) {
	assert.True(t, StatusOpen.CanBeAssigned())
	assert.False(t, StatusAssigned.CanBeAssigned())

	assert.True(t, StatusOpen.CanBeStarted())
	assert.True(t, StatusAssigned.CanBeStarted())
	assert.False(t, StatusInProgress.CanBeStarted())

	assert.True(t, StatusInProgress.CanBeCompleted())
	assert.False(t, StatusCompleted.CanBeCompleted())

	assert.True(t, StatusCompleted.CanBeClosed())
	assert.False(t, StatusInProgress.CanBeClosed())
}

func TestNewStatus(t *testing.T) {
	s, err := NewStatus("in_progress")
	assert.NoError(t, err)
	assert.Equal(t, StatusInProgress, s)

	_, err = NewStatus("pending")
	assert.Error(t, err)
}

func TestStatus_IsTerminal(t *testing.T) {
	assert.True(t, StatusClosed.IsTerminal())
	assert.True(t, StatusCanceled.IsTerminal())
	assert.False(t, StatusCompleted.IsTerminal())
}
