package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"

	"github.com/deppfellow/barbershop-api/internal/metrics"
	"github.com/deppfellow/barbershop-api/internal/model"
	"github.com/deppfellow/barbershop-api/internal/model/booking"
	"github.com/deppfellow/barbershop-api/internal/repository"
)

type BookingRepository interface {
	ListByUser(ctx context.Context, userID int) ([]booking.UserBooking, error)
	ListRecent(ctx context.Context, limit int) ([]booking.AdminBooking, error)
	Create(ctx context.Context, payload *booking.CreateBookingPayload) (int, error)
	UpdateStatus(ctx context.Context, bookingID int, status string) error
}

// BookingNotifier schedules customer notifications.
type BookingNotifier interface {
	EnqueueBookingConfirmation(ctx context.Context, bookingID int) error
	EnqueueBookingStatusChanged(ctx context.Context, bookingID int) error
}

type BookingService struct {
	repo     BookingRepository
	notifier BookingNotifier
}

// NewBookingService creates the service. A nil notifier disables notifications.
func NewBookingService(repo BookingRepository, notifier BookingNotifier) *BookingService {
	return &BookingService{repo: repo, notifier: notifier}
}

// ListBookings returns the bookings of userID, or the most recent bookings
// of all users when userID is zero.
func (s *BookingService) ListBookings(ctx context.Context, userID int) (*booking.ListResponse, error) {
	if userID != 0 {
		bookings, err := s.repo.ListByUser(ctx, userID)
		if err != nil {
			return nil, err
		}
		return &booking.ListResponse{Bookings: bookings}, nil
	}

	bookings, err := s.repo.ListRecent(ctx, repository.RecentBookingsLimit)
	if err != nil {
		return nil, err
	}
	return &booking.ListResponse{Bookings: bookings}, nil
}

func (s *BookingService) CreateBooking(ctx context.Context, payload *booking.CreateBookingPayload) (*booking.CreateResponse, error) {
	id, err := s.repo.Create(ctx, payload)
	if err != nil {
		return nil, dbError(err)
	}

	metrics.RecordBookingCreated()

	zerolog.Ctx(ctx).Info().
		Int("booking_id", id).
		Int("user_id", payload.UserID).
		Msg("booking created")

	if s.notifier != nil {
		if err := s.notifier.EnqueueBookingConfirmation(ctx, id); err != nil {
			zerolog.Ctx(ctx).Error().Err(err).Int("booking_id", id).Msg("failed to enqueue booking confirmation")
		}
	}

	return &booking.CreateResponse{
		BookingID: id,
		Message:   "Booking created successfully",
	}, nil
}

func (s *BookingService) UpdateStatus(ctx context.Context, bookingID int, status string) (*model.MessageResponse, error) {
	if err := s.setStatus(ctx, bookingID, status); err != nil {
		return nil, err
	}
	return &model.MessageResponse{Message: "Booking updated successfully"}, nil
}

// CancelBooking sets the status to cancelled.
func (s *BookingService) CancelBooking(ctx context.Context, bookingID int) (*model.MessageResponse, error) {
	if err := s.setStatus(ctx, bookingID, booking.StatusCancelled); err != nil {
		return nil, err
	}
	return &model.MessageResponse{Message: "Booking cancelled successfully"}, nil
}

func (s *BookingService) setStatus(ctx context.Context, bookingID int, status string) error {
	err := s.repo.UpdateStatus(ctx, bookingID, status)
	if errors.Is(err, pgx.ErrNoRows) {
		return notFound("Booking not found", "BOOKING_NOT_FOUND")
	}
	if err != nil {
		return dbError(fmt.Errorf("set booking status: %w", err))
	}

	metrics.RecordBookingStatusUpdate(status)

	zerolog.Ctx(ctx).Info().
		Int("booking_id", bookingID).
		Str("status", status).
		Msg("booking status updated")

	if s.notifier != nil {
		if err := s.notifier.EnqueueBookingStatusChanged(ctx, bookingID); err != nil {
			zerolog.Ctx(ctx).Error().Err(err).Int("booking_id", bookingID).Msg("failed to enqueue status change notification")
		}
	}

	return nil
}
