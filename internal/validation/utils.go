// Package validation contains the logic for binding and validating
// request data.
//
// Payloads implement Validatable. Rules are plain functions that return
// CustomValidationErrors, which are converted into field errors the
// client can understand.
package validation

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/deppfellow/cpf-validator/internal/errs"
	"github.com/labstack/echo/v4"
)

// Validatable is implemented by request payload types that know how to validate themselves.
type Validatable interface {
	Validate() error
}

// CustomValidationError represents a single validation issue for a specific field.
type CustomValidationError struct {
	Field   string
	Message string
}

// CustomValidationErrors is a slice of custom validation errors that satisfies error.
type CustomValidationErrors []CustomValidationError

func (c CustomValidationErrors) Error() string {
	return errs.MessageValidation
}

var jsonNull = []byte("null")

// BindAndValidate decodes the JSON request body into payload and validates it.
//
// Flow:
//  1. An empty or blank body is rejected.
//  2. A literal JSON null is rejected.
//  3. The body must hold exactly one JSON value that decodes into payload,
//     regardless of Content-Type; syntax errors, type errors and trailing
//     content are rejected.
//  4. payload.Validate() applies the field rules.
//
// Every rejection is an *errs.HTTPError with status 400.
//
// NOTE: payload must be a pointer so decoding can populate it.
func BindAndValidate(c echo.Context, payload Validatable) error {
	req := c.Request()
	if req.Body == nil {
		return errs.NewBadRequestError(errs.MessageEmptyBody, false, nil, nil)
	}

	body, err := io.ReadAll(req.Body)
	if err != nil {
		return fmt.Errorf("failed to read request body: %w", err)
	}

	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 {
		return errs.NewBadRequestError(errs.MessageEmptyBody, false, nil, nil)
	}
	if bytes.Equal(trimmed, jsonNull) {
		return errs.NewBadRequestError(errs.MessageNullBody, false, nil, nil)
	}

	if err := decodeSingleValue(body, payload); err != nil {
		return errs.NewBadRequestError(errs.MessageInvalidJSON, false, nil, nil)
	}

	if fieldErrors := validateStruct(payload); fieldErrors != nil {
		return errs.NewValidationError(fieldErrors)
	}

	return nil
}

// decodeSingleValue decodes body into v and fails unless only whitespace
// follows the first JSON value.
func decodeSingleValue(body []byte, v interface{}) error {
	dec := json.NewDecoder(bytes.NewReader(body))
	if err := dec.Decode(v); err != nil {
		return err
	}

	if err := dec.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		return errors.New("unexpected content after JSON value")
	}

	return nil
}

// validateStruct calls v.Validate() and extracts field errors if validation fails.
func validateStruct(v Validatable) []errs.FieldError {
	if err := v.Validate(); err != nil {
		return extractValidationError(err)
	}
	return nil
}

func extractValidationError(err error) []errs.FieldError {
	var customValidationErrors CustomValidationErrors
	if !errors.As(err, &customValidationErrors) {
		// Anything else still counts as a failed validation, without a field.
		return []errs.FieldError{{Error: err.Error()}}
	}

	fieldErrors := make([]errs.FieldError, 0, len(customValidationErrors))
	for _, e := range customValidationErrors {
		fieldErrors = append(fieldErrors, errs.FieldError{
			Field: e.Field,
			Error: e.Message,
		})
	}
	return fieldErrors
}
