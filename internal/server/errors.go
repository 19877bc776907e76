// Package server provides the HTTP REST API for the plan advisor.
package server

import (
	"errors"
	"net/http"

	"github.com/plan4you/plan-advisor/internal/recommend"
)

// ErrValidation indicates request validation failure.
type ErrValidation struct {
	Message string
}

func (e *ErrValidation) Error() string {
	return "validation error: " + e.Message
}

// ErrStoreUnavailable indicates the catalog store could not serve a query.
type ErrStoreUnavailable struct {
	Err error
}

func (e *ErrStoreUnavailable) Error() string {
	return "catalog store unavailable: " + e.Err.Error()
}

func (e *ErrStoreUnavailable) Unwrap() error {
	return e.Err
}

// HTTPStatus returns the appropriate HTTP status code for an error.
func HTTPStatus(err error) int {
	var validationErr *ErrValidation
	var storeErr *ErrStoreUnavailable
	switch {
	case errors.As(err, &validationErr):
		return http.StatusBadRequest
	case errors.As(err, &storeErr):
		return http.StatusBadGateway
	case errors.Is(err, recommend.ErrNoPlans):
		return http.StatusOK
	default:
		return http.StatusInternalServerError
	}
}
