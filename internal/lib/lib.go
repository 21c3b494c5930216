// Package lib groups supporting modules that do not fit strictly into
// other layers: the Redis cache, background jobs (Asynq), the email
// client (Resend) and small shared utilities.
package lib
