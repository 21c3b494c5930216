package booking

// StatusCancelled is written by the cancel endpoint. Other statuses are free text.
const StatusCancelled = "cancelled"

// Details are the columns shared by both booking listings.
// Date and time are formatted by the query as YYYY-MM-DD and HH:MM.
type Details struct {
	ID          int    `json:"id" db:"id"`
	ServiceName string `json:"service_name" db:"service_name"`
	MasterName  string `json:"master_name" db:"master_name"`
	SalonName   string `json:"salon_name" db:"salon_name"`
	BookingDate string `json:"booking_date" db:"booking_date"`
	BookingTime string `json:"booking_time" db:"booking_time"`
	Status      string `json:"status" db:"status"`
}

// UserBooking is a row of a single user's booking history.
type UserBooking struct {
	Details
	Notes string `json:"notes" db:"notes"`
}

// AdminBooking is a row of the global listing and carries the customer.
type AdminBooking struct {
	Details
	UserName  string `json:"user_name" db:"user_name"`
	UserPhone string `json:"user_phone" db:"user_phone"`
}

// Notification holds what the booking emails need.
type Notification struct {
	BookingID   int     `db:"booking_id"`
	UserName    string  `db:"user_name"`
	UserEmail   *string `db:"user_email"`
	SalonName   string  `db:"salon_name"`
	MasterName  string  `db:"master_name"`
	ServiceName string  `db:"service_name"`
	BookingDate string  `db:"booking_date"`
	BookingTime string  `db:"booking_time"`
	Status      string  `db:"status"`
}

// ListResponse wraps either listing under "bookings".
type ListResponse struct {
	Bookings any `json:"bookings"`
}

type CreateResponse struct {
	BookingID int    `json:"booking_id"`
	Message   string `json:"message"`
}
