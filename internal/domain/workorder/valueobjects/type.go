package valueobjects

import "fmt"

// Type distinguishes preventive, corrective and inspection work orders.
type Type string

const (
	TypePM         Type = "PM"
	TypeCM         Type = "CM"
	TypeInspection Type = "inspection"
)

var validTypes = map[Type]bool{
	TypePM:         true,
	TypeCM:         true,
	TypeInspection: true,
}

func (t Type) String() string {
	return string(t)
}

func (t Type) IsValid() bool {
	return validTypes[t]
}

func NewType(s string) (Type, error) {
	t := Type(s)
	if !t.IsValid() {
		return "", fmt.Errorf("invalid work order type: %s", s)
	}
	return t, nil
}
