package booking

import "github.com/deppfellow/barbershop-api/internal/validation"

// ------------------------------------------------------------

// ListBookingsQuery lists one user's bookings when UserID is set,
// otherwise the most recent bookings of everyone.
type ListBookingsQuery struct {
	UserID int `query:"user_id"`
}

func (q *ListBookingsQuery) Validate() error {
	return validation.Struct(q)
}

// ------------------------------------------------------------

type CreateBookingPayload struct {
	UserID      int    `json:"user_id" validate:"required"`
	SalonID     int    `json:"salon_id" validate:"required"`
	MasterID    int    `json:"master_id" validate:"required"`
	ServiceID   int    `json:"service_id" validate:"required"`
	BookingDate string `json:"booking_date" validate:"required"`
	BookingTime string `json:"booking_time" validate:"required"`
	Notes       string `json:"notes"`
}

func (p *CreateBookingPayload) Validate() error {
	return validation.Struct(p)
}

func (p *CreateBookingPayload) ValidationMessage() string {
	return "Missing required fields"
}

// ------------------------------------------------------------

type UpdateStatusPayload struct {
	BookingID int    `json:"booking_id" validate:"required"`
	Status    string `json:"status" validate:"required"`
}

func (p *UpdateStatusPayload) Validate() error {
	return validation.Struct(p)
}

func (p *UpdateStatusPayload) ValidationMessage() string {
	return "Missing booking_id or status"
}

// ------------------------------------------------------------

type CancelBookingQuery struct {
	BookingID int `query:"booking_id" validate:"required"`
}

func (q *CancelBookingQuery) Validate() error {
	return validation.Struct(q)
}

func (q *CancelBookingQuery) ValidationMessage() string {
	return "Missing booking_id"
}
