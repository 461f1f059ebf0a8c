package http

import (
	"errors"
	"net/http"

	"hardware-ai-orchestrator/internal/query"
)

// mapError translates domain errors into HTTP status codes. Unknown
// errors become 500 without leaking details.
func (h *handler) mapError(err error) int {
	switch {
	case errors.Is(err, query.ErrEmptyQuery),
		errors.Is(err, query.ErrInvalidExpertise),
		errors.Is(err, query.ErrInvalidPhase),
		errors.Is(err, query.ErrInvalidFeedback):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
