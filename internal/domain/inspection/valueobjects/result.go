package valueobjects

// Result is the outcome of a single inspection point.
type Result string

const (
	ResultOK Result = "ok"
	ResultNG Result = "ng"
)

func (r Result) IsValid() bool {
	return r == ResultOK || r == ResultNG
}

func (r Result) IsPass() bool {
	return r == ResultOK
}

func (r Result) String() string {
	return string(r)
}
