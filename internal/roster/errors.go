package roster

import "errors"

var (
	// ErrStaleRoster rejects a ranking or assignment result captured
	// against a roster version that has since advanced.
	ErrStaleRoster = errors.New("roster changed since request was issued")

	// ErrNotRanked rejects assignment results when no current ranking exists.
	ErrNotRanked = errors.New("roster has not been ranked")

	// ErrEmptyRoster rejects operations that need at least one employee.
	ErrEmptyRoster = errors.New("roster is empty")
)
