package query

import "errors"

// Domain-specific errors for the query package.
var (
	ErrEmptyQuery       = errors.New("query text is empty")
	ErrInvalidExpertise = errors.New("unknown expertise level")
	ErrInvalidPhase     = errors.New("unknown project phase")
	ErrInvalidFeedback  = errors.New("feedback requires a model name")
)
