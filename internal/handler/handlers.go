package handler

import (
	"github.com/deppfellow/barbershop-api/internal/server"
	"github.com/deppfellow/barbershop-api/internal/service"
	"github.com/deppfellow/barbershop-api/static"
)

// Handlers groups all HTTP handlers.
type Handlers struct {
	Health  *HealthHandler
	OpenAPI *OpenAPIHandler
	Booking *BookingHandler
	Catalog *CatalogHandler
	User    *UserHandler
}

func NewHandlers(s *server.Server, services *service.Services) *Handlers {
	return &Handlers{
		Health:  NewHealthHandlerFromServer(s),
		OpenAPI: NewOpenAPIHandler(s, static.Files),
		Booking: NewBookingHandler(s, services.Booking),
		Catalog: NewCatalogHandler(s, services.Catalog),
		User:    NewUserHandler(s, services.User),
	}
}
