package validator

import "errors"

var (
	// ErrValidationFailed matches any ValidationErrors via errors.Is.
	ErrValidationFailed = errors.New("validation failed")

	// ErrNilResolver is returned by Render when no resolver is given.
	ErrNilResolver = errors.New("nil message resolver")

	// ErrRenderFailed wraps the resolver error that aborted rendering.
	ErrRenderFailed = errors.New("failed to render validation errors")
)
