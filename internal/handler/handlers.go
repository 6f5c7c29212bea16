package handler

import (
	"github.com/deppfellow/cpf-validator/internal/server"
)

// Handlers is a container that groups all HTTP handlers, so router setup
// receives one object instead of many.
type Handlers struct {
	Health  *HealthHandler  // Health serves the liveness endpoint.
	OpenAPI *OpenAPIHandler // OpenAPI serves API documentation.
	CPF     *CPFHandler     // CPF serves CPF validation.
}

// NewHandlers constructs the handler container.
func NewHandlers(s *server.Server) *Handlers {
	return &Handlers{
		Health:  NewHealthHandler(s),
		OpenAPI: NewOpenAPIHandler(s),
		CPF:     NewCPFHandler(s),
	}
}
