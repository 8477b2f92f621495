package valueobjects

import "fmt"

// TriggerType selects which field group of a plan drives due-date checks.
type TriggerType string

const (
	TriggerTime    TriggerType = "time"
	TriggerCounter TriggerType = "counter"
)

func (t TriggerType) String() string {
	return string(t)
}

func (t TriggerType) IsValid() bool {
	return t == TriggerTime || t == TriggerCounter
}

func NewTriggerType(s string) (TriggerType, error) {
	t := TriggerType(s)
	if !t.IsValid() {
		return "", fmt.Errorf("invalid trigger type: %s", s)
	}
	return t, nil
}
