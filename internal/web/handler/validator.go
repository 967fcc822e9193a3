package handler

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
)

type (
	// ErrorResponse represents a validation error response.
	ErrorResponse struct {
		Error       bool        `json:"error"`
		FailedField string      `json:"failedField"`
		Tag         string      `json:"tag"`
		Value       interface{} `json:"value"`
	}

	// XValidator validates request structs with go-playground/validator.
	XValidator struct{}

	// GlobalErrorHandlerResp represents a global error response structure.
	GlobalErrorHandlerResp struct {
		Success bool            `json:"success"`
		Message string          `json:"message"`
		Errors  []ErrorResponse `json:"errors,omitempty"`
	}
)

var validate = validator.New() //nolint:gochecknoglobals

// Validate performs validation on the provided data and returns a slice of ErrorResponse.
func (v XValidator) Validate(data interface{}) []ErrorResponse {
	var (
		validationErrors []ErrorResponse
		errs             validator.ValidationErrors
	)

	if !errors.As(validate.Struct(data), &errs) {
		return nil
	}

	for _, err := range errs {
		validationErrors = append(validationErrors, ErrorResponse{
			Error:       true,
			FailedField: err.Field(),
			Tag:         err.Tag(),
			Value:       err.Value(),
		})
	}

	return validationErrors
}

// Message joins the failed fields of errs into one line.
func Message(errs []ErrorResponse) string {
	msgs := make([]string, 0, len(errs))
	for _, e := range errs {
		msgs = append(msgs, e.FailedField+" failed on "+e.Tag)
	}

	return "invalid request: " + strings.Join(msgs, ", ")
}
