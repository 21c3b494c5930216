// Package errs defines the error types returned to API clients.
//
// Every failure leaves the service as an HTTPError so clients always receive
// the same shape: the message under "error", a machine-friendly code, the
// status, and optional field-level validation errors.
package errs
