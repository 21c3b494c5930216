package email

// Template is a string-based enum naming email templates.
type Template string

const (
	// TemplateBookingConfirmation corresponds to templates/booking_confirmation.html
	TemplateBookingConfirmation Template = "booking_confirmation"

	// TemplateBookingStatusChanged corresponds to templates/booking_status_changed.html
	TemplateBookingStatusChanged Template = "booking_status_changed"
)
