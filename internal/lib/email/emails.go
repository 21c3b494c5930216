package email

import "github.com/deppfellow/barbershop-api/internal/model/booking"

func bookingData(n *booking.Notification) map[string]string {
	return map[string]string{
		"UserName":    n.UserName,
		"SalonName":   n.SalonName,
		"MasterName":  n.MasterName,
		"ServiceName": n.ServiceName,
		"BookingDate": n.BookingDate,
		"BookingTime": n.BookingTime,
		"Status":      n.Status,
	}
}

// SendBookingConfirmation tells the customer their booking was received.
func (c *Client) SendBookingConfirmation(to string, n *booking.Notification) error {
	return c.SendEmail(to, "Your barbershop booking", TemplateBookingConfirmation, bookingData(n))
}

// SendBookingStatusChanged tells the customer the booking status changed.
func (c *Client) SendBookingStatusChanged(to string, n *booking.Notification) error {
	return c.SendEmail(to, "Your booking is now "+n.Status, TemplateBookingStatusChanged, bookingData(n))
}
