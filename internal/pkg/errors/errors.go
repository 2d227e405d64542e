package errors

import "errors"

var (
	// ErrNotFound is a generic sentinel for missing resources.
	ErrNotFound = errors.New("not found")
	// ErrInvalidArgument is a generic sentinel for invalid input.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrEnrichment marks a failed or unusable AI analysis. It never reaches
	// an HTTP response; the analysis guard absorbs it into a fallback.
	ErrEnrichment = errors.New("enrichment failed")
)
