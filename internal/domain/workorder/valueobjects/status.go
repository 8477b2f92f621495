package valueobjects

import "fmt"

// Status is the work order lifecycle state.
type Status string

const (
	StatusOpen       Status = "open"
	StatusAssigned   Status = "assigned"
	StatusInProgress Status = "in_progress"
	StatusCompleted  Status = "completed"
	StatusClosed     Status = "closed"
	// StatusCanceled is a terminal state kept for data compatibility; no
	// modeled transition produces it.
	StatusCanceled Status = "canceled"
)

var validStatuses = map[Status]bool{
	StatusOpen:       true,
	StatusAssigned:   true,
	StatusInProgress: true,
	StatusCompleted:  true,
	StatusClosed:     true,
	StatusCanceled:   true,
}

var statusTransitions = map[Status][]Status{
	StatusOpen: {
		StatusAssigned,
		StatusInProgress,
	},
	StatusAssigned: {
		StatusInProgress,
	},
	StatusInProgress: {
		StatusCompleted,
	},
	StatusCompleted: {
		StatusClosed,
	},
	StatusClosed:   {},
	StatusCanceled: {},
}

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	return validStatuses[s]
}

func (s Status) CanTransitionTo(newStatus Status) bool {
	for _, allowed := range statusTransitions[s] {
		if allowed == newStatus {
			return true
		}
	}
	return false
}

// CanBeAssigned reports whether assignment is allowed. Re-assigning an
// already assigned order is rejected: only open orders take an assignee.
func (s Status) CanBeAssigned() bool {
	return s == StatusOpen
}

// CanBeStarted reports whether work can start. Assignment is optional; an
// open order may be started directly.
func (s Status) CanBeStarted() bool {
	return s == StatusOpen || s == StatusAssigned
}

func (s Status) CanBeCompleted() bool {
	return s == StatusInProgress
}

func (s Status) CanBeClosed() bool {
	return s == StatusCompleted
}

func (s Status) IsTerminal() bool {
	return s == StatusClosed || s == StatusCanceled
}

func NewStatus(s string) (Status, error) {
	status := Status(s)
	if !status.IsValid() {
		return "", fmt.Errorf("invalid work order status: %s", s)
	}
	return status, nil
}
