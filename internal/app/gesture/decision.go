package gesture

// Decision is the outcome of interpreting one gesture
type Decision int

const (
	None Decision = iota
	Next
	Previous
)

// String returns the string representation of the decision
func (d Decision) String() string {
	switch d {
	case Next:
		return "next"
	case Previous:
		return "previous"
	default:
		return "none"
	}
}

// Delta returns the step the decision asks the navigator for
func (d Decision) Delta() int {
	switch d {
	case Next:
		return 1
	case Previous:
		return -1
	default:
		return 0
	}
}
