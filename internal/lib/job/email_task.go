package job

import (
	"encoding/json"
	"time"

	"github.com/hibiken/asynq"
)

const (
	TaskBookingConfirmation  = "booking:confirmation"
	TaskBookingStatusChanged = "booking:status_changed"
)

// BookingPayload is the JSON payload of both booking tasks.
type BookingPayload struct {
	BookingID int `json:"booking_id"`
}

func NewBookingConfirmationTask(bookingID int) (*asynq.Task, error) {
	return newBookingTask(TaskBookingConfirmation, bookingID)
}

func NewBookingStatusChangedTask(bookingID int) (*asynq.Task, error) {
	return newBookingTask(TaskBookingStatusChanged, bookingID)
}

// newBookingTask builds a task that retries three times on the default
// queue and is cancelled after 30 seconds.
func newBookingTask(taskType string, bookingID int) (*asynq.Task, error) {
	payload, err := json.Marshal(BookingPayload{BookingID: bookingID})
	if err != nil {
		return nil, err
	}

	return asynq.NewTask(
		taskType,
		payload,
		asynq.MaxRetry(3),
		asynq.Queue("default"),
		asynq.Timeout(30*time.Second),
	), nil
}
