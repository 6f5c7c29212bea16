package cpf

import "strings"

// FieldName is the property name reported in validation errors.
const FieldName = "Cpf"

// Messages reported for the CPF field.
const (
	MessageRequired = "CPF is required"
	MessageInvalid  = "CPF is invalid"
)

// Request is the candidate submitted for validation.
type Request struct {
	CPF string
}

// FieldError names the field that failed and why.
type FieldError struct {
	Field   string
	Message string
}

// Outcome is the result of validating a Request. Errors is empty when
// Valid is true.
type Outcome struct {
	Valid  bool
	Errors []FieldError
}

// Validate checks that the CPF is present and carries correct check digits.
// A blank CPF is reported as required and never reaches the checksum.
func Validate(req Request) Outcome {
	var fieldErrors []FieldError

	switch {
	case strings.TrimSpace(req.CPF) == "":
		fieldErrors = append(fieldErrors, FieldError{Field: FieldName, Message: MessageRequired})
	case !IsValid(req.CPF):
		fieldErrors = append(fieldErrors, FieldError{Field: FieldName, Message: MessageInvalid})
	}

	return Outcome{
		Valid:  len(fieldErrors) == 0,
		Errors: fieldErrors,
	}
}
