package types

// Outcome is the result of a confirm/deny dialog.
type Outcome int

const (
	// Declined is the zero value so an unanswered dialog never reads as accepted.
	Declined Outcome = iota
	Accepted
)

// String returns a human readable outcome name.
func (o Outcome) String() string {
	if o == Accepted {
		return "accepted"
	}
	return "declined"
}
