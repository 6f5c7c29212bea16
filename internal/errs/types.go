package errs

import (
	"net/http"
)

// Messages for failures detected before the CPF itself is looked at.
const (
	MessageEmptyBody    = "Request body is invalid"
	MessageNullBody     = "Invalid request data"
	MessageInvalidJSON  = "Invalid JSON format"
	MessageValidation   = "Validation failed"
	MessageInternal     = "Internal error while processing the request"
	MessageRouteMissing = "Route not found"
)

// NewBadRequestError creates a 400 Bad Request HTTPError.
//
// This supports extra payload:
//   - code: optional custom code string (if nil, defaults to "BAD_REQUEST")
//   - errors: optional slice of field errors (validation errors)
func NewBadRequestError(message string, override bool, code *string, errors []FieldError) *HTTPError {
	// http.StatusText(400) => "Bad Request" => "BAD_REQUEST"
	formattedCode := MakeUpperCaseWithUnderscores(http.StatusText(http.StatusBadRequest))

	// The caller is expected to have formatted a custom code already.
	if code != nil {
		formattedCode = *code
	}

	return &HTTPError{
		Code:     formattedCode,
		Message:  message,
		Status:   http.StatusBadRequest,
		Override: override,
		Errors:   errors,
	}
}

// NewNotFoundError creates a 404 Not Found HTTPError.
func NewNotFoundError(message string, override bool, code *string) *HTTPError {
	formattedCode := MakeUpperCaseWithUnderscores(http.StatusText(http.StatusNotFound))

	if code != nil {
		formattedCode = *code
	}

	return &HTTPError{
		Code:     formattedCode,
		Message:  message,
		Status:   http.StatusNotFound,
		Override: override,
	}
}

// NewInternalServerError creates a 500 Internal Server Error HTTPError.
//
// The message is generic on purpose: clients never see the underlying cause.
func NewInternalServerError() *HTTPError {
	return &HTTPError{
		Code:     MakeUpperCaseWithUnderscores(http.StatusText(http.StatusInternalServerError)),
		Message:  MessageInternal,
		Status:   http.StatusInternalServerError,
		Override: false,
	}
}

// NewValidationError converts field errors into a 400 "Validation failed" HTTPError.
func NewValidationError(fieldErrors []FieldError) *HTTPError {
	return NewBadRequestError(MessageValidation, true, nil, fieldErrors)
}
