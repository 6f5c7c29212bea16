package router

import (
	"net/http"

	"github.com/deppfellow/cpf-validator/internal/handler"
	"github.com/labstack/echo/v4"
)

func registerCPFRoutes(api *echo.Group, h *handler.Handlers) {
	cpf := api.Group("/cpf")

	cpf.POST("/validate", handler.Handle(
		h.CPF.Handler,
		h.CPF.ValidateCPF,
		http.StatusOK,
		handler.NewValidateCPFRequest,
	))
}
