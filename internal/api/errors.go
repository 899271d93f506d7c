package api

import (
	"errors"
	"net/http"

	"github.com/epiday/epiday/internal/model"
)

// statusFor maps a failure class to its caller-visible HTTP status:
// bad input 400, upstream unreachable 503, everything else (portal refusals,
// shape drift) 500.
func statusFor(err error) int {
	switch {
	case errors.Is(err, model.ErrInvalidInput):
		return http.StatusBadRequest
	case errors.Is(err, model.ErrUpstreamUnavailable):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}
