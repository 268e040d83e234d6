package wizard

import "errors"

var (
	// ErrInvalidTransition is returned when an operation is not allowed in
	// the current state (advance past step 3, retreat before step 1, submit
	// outside the review step, any navigation after submit).
	ErrInvalidTransition = errors.New("transition not allowed in current state")

	// ErrSinkFailed wraps errors returned by the submission sink.
	ErrSinkFailed = errors.New("submission sink failed")
)
