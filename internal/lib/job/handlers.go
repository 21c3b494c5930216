package job

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/hibiken/asynq"
	"github.com/jackc/pgx/v5"
)

// handleBookingEmailTask emails the customer about a booking. Bookings that
// no longer exist and customers without an email are skipped without retry.
func (j *JobService) handleBookingEmailTask(ctx context.Context, t *asynq.Task) error {
	var p BookingPayload
	if err := json.Unmarshal(t.Payload(), &p); err != nil {
		return fmt.Errorf("failed to unmarshal booking payload: %v: %w", err, asynq.SkipRetry)
	}

	logger := j.logger.With().
		Str("type", t.Type()).
		Int("booking_id", p.BookingID).
		Logger()

	logger.Info().Msg("Processing booking email task")

	n, err := j.bookings.GetNotification(ctx, p.BookingID)
	if errors.Is(err, pgx.ErrNoRows) {
		logger.Warn().Msg("booking not found, skipping email")
		return fmt.Errorf("booking %d not found: %w", p.BookingID, asynq.SkipRetry)
	}
	if err != nil {
		return err
	}

	if n.UserEmail == nil || *n.UserEmail == "" {
		logger.Info().Msg("user has no email, skipping")
		return nil
	}

	switch t.Type() {
	case TaskBookingConfirmation:
		err = j.mailer.SendBookingConfirmation(*n.UserEmail, n)
	case TaskBookingStatusChanged:
		err = j.mailer.SendBookingStatusChanged(*n.UserEmail, n)
	default:
		return fmt.Errorf("unexpected task type %q: %w", t.Type(), asynq.SkipRetry)
	}

	if err != nil {
		logger.Error().Err(err).Msg("Failed to send booking email")
		return err
	}

	logger.Info().Msg("Successfully sent booking email")
	return nil
}
