package analysis

import "errors"

var (
	// ErrInvalidInput is for an empty or whitespace-only sequence where one is required.
	ErrInvalidInput = errors.New("please enter a DNA sequence")

	// ErrMissingSecond is for an operation that needs a second sequence but only got one.
	// Callers should ask for the second sequence rather than treat this as a failure.
	ErrMissingSecond = errors.New("a second sequence is required")

	// ErrComputation wraps failures inside an algorithm, like a k below one.
	ErrComputation = errors.New("error processing sequence")

	// ErrUnknownOperation is for an operation name that isn't registered.
	ErrUnknownOperation = errors.New("invalid analysis type")
)
