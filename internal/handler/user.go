package handler

import (
	"context"

	"github.com/labstack/echo/v4"

	"github.com/deppfellow/barbershop-api/internal/model/user"
	"github.com/deppfellow/barbershop-api/internal/server"
)

type UserService interface {
	GetUser(ctx context.Context, q *user.GetUserQuery) (any, error)
	Upsert(ctx context.Context, payload *user.UpsertUserPayload) (*user.Response, error)
	AdjustBonusPoints(ctx context.Context, payload *user.AdjustBonusPayload) (*user.Response, error)
}

type UserHandler struct {
	Handler
	service UserService
}

func NewUserHandler(s *server.Server, service UserService) *UserHandler {
	return &UserHandler{
		Handler: NewHandler(s),
		service: service,
	}
}

// GetUser returns {user, bonus_history} for a user_id lookup and {user}
// for a phone lookup.
func (h *UserHandler) GetUser(c echo.Context, q *user.GetUserQuery) (any, error) {
	return h.service.GetUser(c.Request().Context(), q)
}

func (h *UserHandler) UpsertUser(c echo.Context, payload *user.UpsertUserPayload) (*user.Response, error) {
	return h.service.Upsert(c.Request().Context(), payload)
}

func (h *UserHandler) AdjustBonusPoints(c echo.Context, payload *user.AdjustBonusPayload) (*user.Response, error) {
	return h.service.AdjustBonusPoints(c.Request().Context(), payload)
}
