package email

// PreviewData contains sample template data for local preview/testing.
//
//	PreviewData["booking_confirmation"]["UserName"] == "Ivan"
var PreviewData = map[Template]map[string]string{
	TemplateBookingConfirmation: {
		"UserName":    "Ivan",
		"SalonName":   "Downtown",
		"MasterName":  "Oleg",
		"ServiceName": "Fade",
		"BookingDate": "2024-06-01",
		"BookingTime": "10:00",
		"Status":      "pending",
	},
	TemplateBookingStatusChanged: {
		"UserName":    "Ivan",
		"SalonName":   "Downtown",
		"MasterName":  "Oleg",
		"ServiceName": "Fade",
		"BookingDate": "2024-06-01",
		"BookingTime": "10:00",
		"Status":      "confirmed",
	},
}
