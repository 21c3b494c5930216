package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/deppfellow/barbershop-api/internal/model/booking"
)

// RecentBookingsLimit caps the global booking listing.
const RecentBookingsLimit = 100

type BookingRepository struct {
	db DBTX
}

func NewBookingRepository(db DBTX) *BookingRepository {
	return &BookingRepository{db: db}
}

const bookingDetailColumns = `
	b.id,
	s.name AS service_name,
	m.name AS master_name,
	sal.name AS salon_name,
	to_char(b.booking_date, 'YYYY-MM-DD') AS booking_date,
	to_char(b.booking_time, 'HH24:MI') AS booking_time,
	b.status`

const bookingJoins = `
	JOIN services s ON b.service_id = s.id
	JOIN masters m ON b.master_id = m.id
	JOIN salons sal ON b.salon_id = sal.id`

const listUserBookingsSQL = `
SELECT` + bookingDetailColumns + `,
	COALESCE(b.notes, '') AS notes
FROM bookings b` + bookingJoins + `
WHERE b.user_id = $1
ORDER BY b.booking_date DESC, b.booking_time DESC`

const listRecentBookingsSQL = `
SELECT` + bookingDetailColumns + `,
	u.name AS user_name,
	u.phone AS user_phone
FROM bookings b
	JOIN users u ON b.user_id = u.id` + bookingJoins + `
ORDER BY b.booking_date DESC, b.booking_time DESC
LIMIT $1`

const createBookingSQL = `
INSERT INTO bookings (user_id, salon_id, master_id, service_id, booking_date, booking_time, notes)
VALUES ($1, $2, $3, $4, $5, $6, $7)
RETURNING id`

const updateBookingStatusSQL = `
UPDATE bookings
SET status = $1, updated_at = CURRENT_TIMESTAMP
WHERE id = $2
RETURNING id`

const getBookingNotificationSQL = `
SELECT
	b.id AS booking_id,
	u.name AS user_name,
	u.email AS user_email,
	sal.name AS salon_name,
	m.name AS master_name,
	s.name AS service_name,
	to_char(b.booking_date, 'YYYY-MM-DD') AS booking_date,
	to_char(b.booking_time, 'HH24:MI') AS booking_time,
	b.status
FROM bookings b
	JOIN users u ON b.user_id = u.id` + bookingJoins + `
WHERE b.id = $1`

// ListByUser returns all bookings of one user, newest first.
func (r *BookingRepository) ListByUser(ctx context.Context, userID int) ([]booking.UserBooking, error) {
	rows, err := r.db.Query(ctx, listUserBookingsSQL, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list bookings for user_id=%d: %w", userID, err)
	}

	bookings, err := pgx.CollectRows(rows, pgx.RowToStructByName[booking.UserBooking])
	if err != nil {
		return nil, fmt.Errorf("failed to collect bookings for user_id=%d: %w", userID, err)
	}

	return bookings, nil
}

// ListRecent returns the newest bookings of all users.
func (r *BookingRepository) ListRecent(ctx context.Context, limit int) ([]booking.AdminBooking, error) {
	rows, err := r.db.Query(ctx, listRecentBookingsSQL, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list recent bookings: %w", err)
	}

	bookings, err := pgx.CollectRows(rows, pgx.RowToStructByName[booking.AdminBooking])
	if err != nil {
		return nil, fmt.Errorf("failed to collect recent bookings: %w", err)
	}

	return bookings, nil
}

// Create inserts a booking and returns its id. Unknown user, salon, master
// or service ids fail on the foreign keys.
func (r *BookingRepository) Create(ctx context.Context, payload *booking.CreateBookingPayload) (int, error) {
	var id int
	err := r.db.QueryRow(ctx, createBookingSQL,
		payload.UserID,
		payload.SalonID,
		payload.MasterID,
		payload.ServiceID,
		payload.BookingDate,
		payload.BookingTime,
		payload.Notes,
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("failed to create booking for user_id=%d: %w", payload.UserID, err)
	}

	return id, nil
}

// UpdateStatus overwrites the status. It returns pgx.ErrNoRows when the
// booking does not exist.
func (r *BookingRepository) UpdateStatus(ctx context.Context, bookingID int, status string) error {
	var id int
	if err := r.db.QueryRow(ctx, updateBookingStatusSQL, status, bookingID).Scan(&id); err != nil {
		return fmt.Errorf("failed to update status of booking_id=%d: %w", bookingID, err)
	}

	return nil
}

// GetNotification loads the data needed to email the customer about a booking.
func (r *BookingRepository) GetNotification(ctx context.Context, bookingID int) (*booking.Notification, error) {
	rows, err := r.db.Query(ctx, getBookingNotificationSQL, bookingID)
	if err != nil {
		return nil, fmt.Errorf("failed to get notification for booking_id=%d: %w", bookingID, err)
	}

	n, err := pgx.CollectExactlyOneRow(rows, pgx.RowToAddrOfStructByName[booking.Notification])
	if err != nil {
		return nil, fmt.Errorf("failed to collect notification for booking_id=%d: %w", bookingID, err)
	}

	return n, nil
}
