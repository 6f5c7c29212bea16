package validation

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/deppfellow/cpf-validator/internal/errs"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// documentPayload uses plain-function rules.
type documentPayload struct {
	Number string `json:"number"`
}

func (p *documentPayload) Validate() error {
	if strings.TrimSpace(p.Number) == "" {
		return CustomValidationErrors{{Field: "Number", Message: "Number is required"}}
	}
	return nil
}

type brokenPayload struct{}

func (p *brokenPayload) Validate() error {
	return errors.New("rule engine unavailable")
}

func newContext(body string) echo.Context {
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	return e.NewContext(req, httptest.NewRecorder())
}

func requireHTTPError(t *testing.T, err error) *errs.HTTPError {
	t.Helper()

	var httpErr *errs.HTTPError
	require.True(t, errors.As(err, &httpErr), "expected *errs.HTTPError, got %T", err)
	return httpErr
}

func TestBindAndValidate_Success(t *testing.T) {
	payload := &documentPayload{}

	err := BindAndValidate(newContext(`{"number": "529.982.247-25"}`), payload)

	require.NoError(t, err)
	assert.Equal(t, "529.982.247-25", payload.Number)
}

func TestBindAndValidate_IgnoresContentType(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"number": "1"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMETextPlain)
	c := e.NewContext(req, httptest.NewRecorder())

	payload := &documentPayload{}
	require.NoError(t, BindAndValidate(c, payload))
	assert.Equal(t, "1", payload.Number)
}

func TestBindAndValidate_PayloadErrors(t *testing.T) {
	tests := []struct {
		name        string
		body        string
		wantMessage string
	}{
		{name: "empty body", body: "", wantMessage: errs.MessageEmptyBody},
		{name: "blank body", body: " \n\t ", wantMessage: errs.MessageEmptyBody},
		{name: "null body", body: "null", wantMessage: errs.MessageNullBody},
		{name: "null body with spaces", body: "  null \n", wantMessage: errs.MessageNullBody},
		{name: "syntax error", body: `{"number": `, wantMessage: errs.MessageInvalidJSON},
		{name: "not an object", body: `"52998224725"`, wantMessage: errs.MessageInvalidJSON},
		{name: "wrong field type", body: `{"number": 52998224725}`, wantMessage: errs.MessageInvalidJSON},
		{name: "array", body: `[]`, wantMessage: errs.MessageInvalidJSON},
		{name: "trailing garbage", body: `{"number": "1"} garbage`, wantMessage: errs.MessageInvalidJSON},
		{name: "second object", body: `{"number": "1"}{}`, wantMessage: errs.MessageInvalidJSON},
		{name: "second value", body: `{"number": "1"} "x"`, wantMessage: errs.MessageInvalidJSON},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := BindAndValidate(newContext(tt.body), &documentPayload{})

			httpErr := requireHTTPError(t, err)
			assert.Equal(t, http.StatusBadRequest, httpErr.Status)
			assert.Equal(t, tt.wantMessage, httpErr.Message)
			assert.Empty(t, httpErr.Errors)
		})
	}
}

func TestBindAndValidate_CustomErrors(t *testing.T) {
	err := BindAndValidate(newContext(`{"number": "  "}`), &documentPayload{})

	httpErr := requireHTTPError(t, err)
	assert.Equal(t, http.StatusBadRequest, httpErr.Status)
	assert.Equal(t, errs.MessageValidation, httpErr.Message)
	assert.True(t, httpErr.Override)
	assert.Equal(t, []errs.FieldError{{Field: "Number", Error: "Number is required"}}, httpErr.Errors)
}

func TestBindAndValidate_NullField(t *testing.T) {
	err := BindAndValidate(newContext(`{"number": null}`), &documentPayload{})

	httpErr := requireHTTPError(t, err)
	assert.Equal(t, errs.MessageValidation, httpErr.Message)
}

func TestBindAndValidate_TrailingWhitespace(t *testing.T) {
	payload := &documentPayload{}

	require.NoError(t, BindAndValidate(newContext("{\"number\": \"1\"}\n\t "), payload))
	assert.Equal(t, "1", payload.Number)
}

func TestBindAndValidate_UnknownValidateError(t *testing.T) {
	err := BindAndValidate(newContext(`{}`), &brokenPayload{})

	httpErr := requireHTTPError(t, err)
	require.Len(t, httpErr.Errors, 1)
	assert.Equal(t, "rule engine unavailable", httpErr.Errors[0].Error)
}

func TestExtractValidationError_Custom(t *testing.T) {
	fieldErrors := extractValidationError(CustomValidationErrors{
		{Field: "Number", Message: "Number is required"},
		{Field: "Kind", Message: "Kind is unknown"},
	})

	assert.Equal(t, []errs.FieldError{
		{Field: "Number", Error: "Number is required"},
		{Field: "Kind", Error: "Kind is unknown"},
	}, fieldErrors)
}
