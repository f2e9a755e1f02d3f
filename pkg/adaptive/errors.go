package adaptive

import "errors"

var (
	// ErrInvalidArgument reports a value rejected at assignment time.
	ErrInvalidArgument = errors.New("adaptive: invalid argument")
	// ErrMissingField reports a required field that was never provided.
	ErrMissingField = errors.New("adaptive: missing required field")
)
