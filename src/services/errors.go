package services

import "errors"

var (
	ErrNotFound  = errors.New("not found")
	ErrForbidden = errors.New("forbidden")
)

// ValidationError rejects a specific request with a reason meant for the
// client. It is an expected business outcome, not a server failure.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string {
	return e.Reason
}

// CapacityError reports an acceptance that lost the slot race or a job
// already at capacity. Callers should treat it as ordinary capacity
// exhaustion, not a conflict worth retrying.
type CapacityError struct {
	Reason string
}

func (e *CapacityError) Error() string {
	return e.Reason
}
