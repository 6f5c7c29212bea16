// Package model holds the request and response payloads of the HTTP API.
package model

import (
	"github.com/deppfellow/cpf-validator/internal/cpf"
	"github.com/deppfellow/cpf-validator/internal/validation"
	"github.com/rs/zerolog"
)

// MessageCPFValid is returned with a successful validation.
const MessageCPFValid = "CPF is valid"

// ValidateCPFRequest is the body of POST /api/cpf/validate.
type ValidateCPFRequest struct {
	CPF string `json:"cpf"`
}

// Validate runs the CPF request rules and reports failures as field errors.
func (r *ValidateCPFRequest) Validate() error {
	outcome := cpf.Validate(cpf.Request{CPF: r.CPF})
	if outcome.Valid {
		return nil
	}

	fieldErrors := make(validation.CustomValidationErrors, 0, len(outcome.Errors))
	for _, e := range outcome.Errors {
		fieldErrors = append(fieldErrors, validation.CustomValidationError{
			Field:   e.Field,
			Message: e.Message,
		})
	}
	return fieldErrors
}

// MarshalZerologObject logs the CPF masked.
func (r *ValidateCPFRequest) MarshalZerologObject(e *zerolog.Event) {
	e.Str("cpf", cpf.Mask(r.CPF))
}

// ValidateCPFResponse is returned when the CPF is valid. CPF echoes the
// value exactly as submitted.
type ValidateCPFResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	CPF     string `json:"cpf"`
}
