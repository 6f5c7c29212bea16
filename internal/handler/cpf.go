package handler

import (
	"github.com/deppfellow/cpf-validator/internal/cpf"
	"github.com/deppfellow/cpf-validator/internal/middleware"
	"github.com/deppfellow/cpf-validator/internal/model"
	"github.com/deppfellow/cpf-validator/internal/server"
	"github.com/labstack/echo/v4"
)

// CPFHandler serves CPF validation.
type CPFHandler struct {
	Handler
}

// NewCPFHandler constructs a CPFHandler.
func NewCPFHandler(s *server.Server) *CPFHandler {
	return &CPFHandler{
		Handler: NewHandler(s),
	}
}

// NewValidateCPFRequest allocates the payload for one request.
func NewValidateCPFRequest() *model.ValidateCPFRequest {
	return &model.ValidateCPFRequest{}
}

// ValidateCPF runs after the payload passed validation, so the CPF is known
// to be valid here. It echoes the CPF as submitted.
func (h *CPFHandler) ValidateCPF(c echo.Context, req *model.ValidateCPFRequest) (*model.ValidateCPFResponse, error) {
	middleware.GetLogger(c).Info().
		Str("cpf", cpf.Mask(req.CPF)).
		Msg(model.MessageCPFValid)

	return &model.ValidateCPFResponse{
		Success: true,
		Message: model.MessageCPFValid,
		CPF:     req.CPF,
	}, nil
}
