package handler

import (
	"context"

	"github.com/labstack/echo/v4"

	"github.com/deppfellow/barbershop-api/internal/model"
	"github.com/deppfellow/barbershop-api/internal/model/booking"
	"github.com/deppfellow/barbershop-api/internal/server"
)

type BookingService interface {
	ListBookings(ctx context.Context, userID int) (*booking.ListResponse, error)
	CreateBooking(ctx context.Context, payload *booking.CreateBookingPayload) (*booking.CreateResponse, error)
	UpdateStatus(ctx context.Context, bookingID int, status string) (*model.MessageResponse, error)
	CancelBooking(ctx context.Context, bookingID int) (*model.MessageResponse, error)
}

type BookingHandler struct {
	Handler
	service BookingService
}

func NewBookingHandler(s *server.Server, service BookingService) *BookingHandler {
	return &BookingHandler{
		Handler: NewHandler(s),
		service: service,
	}
}

func (h *BookingHandler) ListBookings(c echo.Context, q *booking.ListBookingsQuery) (*booking.ListResponse, error) {
	return h.service.ListBookings(c.Request().Context(), q.UserID)
}

func (h *BookingHandler) CreateBooking(c echo.Context, payload *booking.CreateBookingPayload) (*booking.CreateResponse, error) {
	return h.service.CreateBooking(c.Request().Context(), payload)
}

func (h *BookingHandler) UpdateStatus(c echo.Context, payload *booking.UpdateStatusPayload) (*model.MessageResponse, error) {
	return h.service.UpdateStatus(c.Request().Context(), payload.BookingID, payload.Status)
}

func (h *BookingHandler) CancelBooking(c echo.Context, q *booking.CancelBookingQuery) (*model.MessageResponse, error) {
	return h.service.CancelBooking(c.Request().Context(), q.BookingID)
}
