package population

import (
	"log/slog"

	"worldpop/internal/population/handler"
	"worldpop/internal/population/service"
)

// Service exposes the population reports.
type Service = service.Service

// Handler wires HTTP endpoints to the population service.
type Handler = handler.Handler

// NewService constructs the population service over an injected record source.
func NewService(source service.RecordSource, opts ...service.Option) (*Service, error) {
	return service.New(source, opts...)
}

// NewHandler constructs an HTTP handler for the population routes.
func NewHandler(s *Service, logger *slog.Logger) *Handler {
	return handler.New(s, logger)
}
