package valueobjects

import "fmt"

// Status is the lifecycle state of a piece of equipment.
type Status string

const (
	StatusActive      Status = "active"
	StatusInactive    Status = "inactive"
	StatusRetired     Status = "retired"
	StatusMaintenance Status = "maintenance"
)

var validStatuses = map[Status]bool{
	StatusActive:      true,
	StatusInactive:    true,
	StatusRetired:     true,
	StatusMaintenance: true,
}

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	return validStatuses[s]
}

func NewStatus(s string) (Status, error) {
	status := Status(s)
	if !status.IsValid() {
		return "", fmt.Errorf("invalid asset status: %s", s)
	}
	return status, nil
}
