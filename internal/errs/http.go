// Package errs defines the error shape returned to API clients.
//
// Every failure the HTTP layer reports, whether a malformed payload,
// a CPF that fails validation, or an unexpected internal fault, is
// rendered as an HTTPError so clients always receive the same envelope:
//
//	{
//	  "success": false,
//	  "code": "BAD_REQUEST",
//	  "message": "Validation failed",
//	  "status": 400,
//	  "errors": [{"propertyName": "Cpf", "errorMessage": "CPF is invalid"}]
//	}
package errs

import "strings"

// FieldError represents a field-level validation error.
type FieldError struct {
	// Field is the property the error relates to (e.g. "Cpf").
	Field string `json:"propertyName"`

	// Error is the human-readable error message.
	Error string `json:"errorMessage"`
}

// HTTPError is the main custom error type for API responses.
//
// It implements the `error` interface via Error() and is serialized
// directly to JSON by the global error handler.
// Fields:
//   - Code: machine-friendly error code (e.g. "BAD_REQUEST").
//   - Message: human-friendly message.
//   - Status: HTTP status code.
//   - Override: the message is safe to show as-is and must not be replaced.
//   - Errors: list of per-field errors (validation).
type HTTPError struct {
	Success  bool   `json:"success"`
	Code     string `json:"code"`
	Message  string `json:"message"`
	Status   int    `json:"status"`
	Override bool   `json:"override"`

	// Errors holds field-level validation errors.
	Errors []FieldError `json:"errors,omitempty"`
}

// Error makes *HTTPError satisfy the built-in `error` interface.
func (e *HTTPError) Error() string {
	return e.Message
}

// Is reports whether target is also an *HTTPError.
//
// It does NOT compare Code/Status; it only matches the type.
func (e *HTTPError) Is(target error) bool {
	_, ok := target.(*HTTPError)

	return ok
}

// MakeUpperCaseWithUnderscores converts a string into an UPPER_CASE_WITH_UNDERSCORES format.
//
// Example:
//
//	"Bad Request" -> "BAD_REQUEST"
func MakeUpperCaseWithUnderscores(str string) string {
	return strings.ToUpper(strings.ReplaceAll(str, " ", "_"))
}
