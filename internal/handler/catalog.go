package handler

import (
	"context"
	"encoding/json"

	"github.com/labstack/echo/v4"

	"github.com/deppfellow/barbershop-api/internal/errs"
	"github.com/deppfellow/barbershop-api/internal/model/catalog"
	"github.com/deppfellow/barbershop-api/internal/server"
)

type CatalogService interface {
	List(ctx context.Context, q *catalog.Query) (map[string]json.RawMessage, error)
}

// CatalogHandler serves the read-only salons, masters, services and
// promotions listings.
type CatalogHandler struct {
	Handler
	service CatalogService
}

func NewCatalogHandler(s *server.Server, service CatalogService) *CatalogHandler {
	return &CatalogHandler{
		Handler: NewHandler(s),
		service: service,
	}
}

// List serves GET /salons. A missing type lists salons; an empty one is
// rejected like any other unknown resource.
func (h *CatalogHandler) List(c echo.Context, q *catalog.Query) (map[string]json.RawMessage, error) {
	if q.Type == "" && c.QueryParams().Has("type") {
		return nil, errs.NewBadRequestError("Invalid resource type", true, nil, nil, nil)
	}
	return h.service.List(c.Request().Context(), q)
}
