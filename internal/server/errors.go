// Package server provides the HTTP REST API for the resume studio.
package server

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/jonathan/resume-studio/internal/keywords"
	"github.com/jonathan/resume-studio/internal/rendering"
	"github.com/jonathan/resume-studio/internal/studio"
)

// ErrValidation indicates request validation failure
type ErrValidation struct {
	Field   string
	Message string
}

func (e *ErrValidation) Error() string {
	return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
}

// HTTPStatus returns the appropriate HTTP status code for an error
func HTTPStatus(err error) int {
	var (
		notFound        *studio.JobNotFoundError
		invalidRecord   *keywords.InvalidKeywordRecordError
		invalidRequest  *ErrValidation
		validationError validator.ValidationErrors
	)

	switch {
	case errors.As(err, &notFound):
		return http.StatusNotFound
	case errors.Is(err, studio.ErrAutoUpdateInProgress):
		return http.StatusConflict
	case errors.Is(err, studio.ErrNothingToUpdate):
		return http.StatusUnprocessableEntity
	case errors.As(err, &invalidRecord), errors.As(err, &invalidRequest), errors.As(err, &validationError):
		return http.StatusBadRequest
	case errors.Is(err, rendering.ErrCompilerUnavailable):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}
