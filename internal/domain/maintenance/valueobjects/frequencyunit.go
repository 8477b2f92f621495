package valueobjects

import "fmt"

// FrequencyUnit is the calendar unit of a time-triggered plan.
type FrequencyUnit string

const (
	UnitDay     FrequencyUnit = "day"
	UnitWeek    FrequencyUnit = "week"
	UnitMonth   FrequencyUnit = "month"
	UnitQuarter FrequencyUnit = "quarter"
	UnitYear    FrequencyUnit = "year"
)

var validFrequencyUnits = map[FrequencyUnit]bool{
	UnitDay:     true,
	UnitWeek:    true,
	UnitMonth:   true,
	UnitQuarter: true,
	UnitYear:    true,
}

func (u FrequencyUnit) String() string {
	return string(u)
}

func (u FrequencyUnit) IsValid() bool {
	return validFrequencyUnits[u]
}

func NewFrequencyUnit(s string) (FrequencyUnit, error) {
	u := FrequencyUnit(s)
	if !u.IsValid() {
		return "", fmt.Errorf("invalid frequency unit: %s", s)
	}
	return u, nil
}
