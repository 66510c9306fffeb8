package speech

import "errors"

// Domain-specific errors for the speech package.
var (
	ErrEmptyText            = errors.New("input text is empty")
	ErrUnknownIntent        = errors.New("could not determine intent")
	ErrClassification       = errors.New("classification failed")
	ErrMissingContactFields = errors.New("contact requires a name and phone number")
	ErrMissingTaskFields    = errors.New("task requires a description")
)
