// Package job provides background job processing using Asynq.
//
// The API process enqueues booking notification tasks through the client
// and, in the long-running deployment, also runs the worker server that
// sends the emails.
package job

import (
	"context"
	"fmt"

	"github.com/hibiken/asynq"
	"github.com/rs/zerolog"

	"github.com/deppfellow/barbershop-api/internal/config"
	"github.com/deppfellow/barbershop-api/internal/model/booking"
)

// BookingLoader loads the data a booking email needs.
type BookingLoader interface {
	GetNotification(ctx context.Context, bookingID int) (*booking.Notification, error)
}

// Mailer sends booking emails.
type Mailer interface {
	SendBookingConfirmation(to string, n *booking.Notification) error
	SendBookingStatusChanged(to string, n *booking.Notification) error
}

// JobService holds the Asynq client (enqueue) and server (worker execution).
type JobService struct {
	Client *asynq.Client
	server *asynq.Server
	logger *zerolog.Logger

	bookings BookingLoader
	mailer   Mailer
}

// NewJobService creates a JobService backed by the configured Redis.
func NewJobService(logger *zerolog.Logger, cfg *config.Config) *JobService {
	redisOpt := asynq.RedisClientOpt{
		Addr:     cfg.Redis.Address,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	}

	server := asynq.NewServer(
		redisOpt,
		asynq.Config{
			Concurrency: 10,
			Queues: map[string]int{
				"critical": 6,
				"default":  3,
				"low":      1,
			},
			Logger:   newAsynqLogger(logger),
			LogLevel: asynq.WarnLevel,
		},
	)

	return &JobService{
		Client: asynq.NewClient(redisOpt),
		server: server,
		logger: logger,
	}
}

// InitHandlers wires the dependencies used by the task handlers.
func (j *JobService) InitHandlers(bookings BookingLoader, mailer Mailer) {
	j.bookings = bookings
	j.mailer = mailer
}

// Start registers the task handlers and starts the worker server.
// asynq runs the workers in the background, so Start returns immediately.
func (j *JobService) Start() error {
	if j.bookings == nil || j.mailer == nil {
		return fmt.Errorf("job handlers not initialized")
	}

	mux := asynq.NewServeMux()
	mux.HandleFunc(TaskBookingConfirmation, j.handleBookingEmailTask)
	mux.HandleFunc(TaskBookingStatusChanged, j.handleBookingEmailTask)

	j.logger.Info().Msg("Starting background job server")

	if err := j.server.Start(mux); err != nil {
		return err
	}

	return nil
}

// Stop shuts the worker server down and closes the client.
func (j *JobService) Stop() {
	j.logger.Info().Msg("Stopping background job server")
	j.server.Shutdown()
	if err := j.Client.Close(); err != nil {
		j.logger.Error().Err(err).Msg("failed to close job client")
	}
}

// EnqueueBookingConfirmation schedules the booking confirmation email.
func (j *JobService) EnqueueBookingConfirmation(ctx context.Context, bookingID int) error {
	task, err := NewBookingConfirmationTask(bookingID)
	if err != nil {
		return err
	}
	return j.enqueue(ctx, task, bookingID)
}

// EnqueueBookingStatusChanged schedules the status change email.
func (j *JobService) EnqueueBookingStatusChanged(ctx context.Context, bookingID int) error {
	task, err := NewBookingStatusChangedTask(bookingID)
	if err != nil {
		return err
	}
	return j.enqueue(ctx, task, bookingID)
}

func (j *JobService) enqueue(ctx context.Context, task *asynq.Task, bookingID int) error {
	info, err := j.Client.EnqueueContext(ctx, task)
	if err != nil {
		return fmt.Errorf("failed to enqueue %s for booking_id=%d: %w", task.Type(), bookingID, err)
	}

	j.logger.Debug().
		Str("task_id", info.ID).
		Str("type", task.Type()).
		Int("booking_id", bookingID).
		Msg("task enqueued")

	return nil
}

// asynqLogger adapts zerolog to asynq.Logger.
type asynqLogger struct {
	logger zerolog.Logger
}

func newAsynqLogger(logger *zerolog.Logger) *asynqLogger {
	return &asynqLogger{logger: logger.With().Str("component", "asynq").Logger()}
}

func (l *asynqLogger) Debug(args ...any) { l.logger.Debug().Msg(fmt.Sprint(args...)) }
func (l *asynqLogger) Info(args ...any)  { l.logger.Info().Msg(fmt.Sprint(args...)) }
func (l *asynqLogger) Warn(args ...any)  { l.logger.Warn().Msg(fmt.Sprint(args...)) }
func (l *asynqLogger) Error(args ...any) { l.logger.Error().Msg(fmt.Sprint(args...)) }
func (l *asynqLogger) Fatal(args ...any) { l.logger.Fatal().Msg(fmt.Sprint(args...)) }
