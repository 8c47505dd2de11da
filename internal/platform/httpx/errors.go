// Package httpx provides HTTP response utilities.
package httpx

import (
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/hkdtax/hkdtax/internal/shared"
)

// RespondError maps domain errors to HTTP responses using RFC7807.
func RespondError(w http.ResponseWriter, err error) {
	var fieldErrs validator.ValidationErrors
	switch {
	case errors.As(err, &fieldErrs):
		fields := make(map[string]string, len(fieldErrs))
		for _, fe := range fieldErrs {
			fields[fe.Field()] = fe.Tag()
		}
		ValidationProblem(w, err.Error(), fields)
	case errors.Is(err, shared.ErrNotFound):
		Problem(w, http.StatusNotFound, "Not Found", err.Error())
	case errors.Is(err, shared.ErrUnknownBook):
		Problem(w, http.StatusNotFound, "Unknown Book", err.Error())
	case errors.Is(err, shared.ErrInvalidPeriod):
		Problem(w, http.StatusBadRequest, "Invalid Period", err.Error())
	case errors.Is(err, shared.ErrAlreadySubmitted):
		Problem(w, http.StatusConflict, "Already Submitted", err.Error())
	default:
		Problem(w, http.StatusInternalServerError, "Internal Error", "")
	}
}
