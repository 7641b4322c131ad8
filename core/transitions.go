package core

// transitions is the lifecycle legality table. A status maps to the set
// of statuses it may move to. Completed is terminal: re-analysis of a
// completed unit must be rejected as a conflict, never silently rerun.
var transitions = map[Status][]Status{
	StatusCreated:    {StatusPending},
	StatusPending:    {StatusProcessing},
	StatusProcessing: {StatusCompleted, StatusFailed},
	StatusFailed:     {StatusProcessing}, // retry re-entry
	StatusCompleted:  {},
}

// CanTransition reports whether moving from one status to another is legal.
func CanTransition(from, to Status) bool {
	for _, next := range transitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// CheckTransition returns a descriptive error for an illegal transition.
// A transition out of Completed is reported as ErrAlreadyCompleted so
// callers can surface it as a conflict.
func CheckTransition(from, to Status) error {
	if CanTransition(from, to) {
		return nil
	}
	if from == StatusCompleted {
		return ErrAlreadyCompleted
	}
	return ErrInvalidTransition
}
