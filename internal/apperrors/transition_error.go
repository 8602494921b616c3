package apperrors

import "fmt"

// TransitionError carries the context of a failed workflow transition so the
// caller can render a precise message: which record, what was attempted, and
// what the transition required.
type TransitionError struct {
	Entity   string // "maintenance", "transfer", "auction", "disposal"
	RecordID string
	From     string // status at the time of the attempt
	Action   string
	Required string // required role set or location, when relevant
	Err      error  // one of the sentinel errors above
}

func (e *TransitionError) Error() string {
	if e.Required != "" {
		return fmt.Sprintf("%s %s: action %q from status %q: %v (requires %s)",
			e.Entity, e.RecordID, e.Action, e.From, e.Err, e.Required)
	}
	return fmt.Sprintf("%s %s: action %q from status %q: %v",
		e.Entity, e.RecordID, e.Action, e.From, e.Err)
}

func (e *TransitionError) Unwrap() error {
	return e.Err
}
