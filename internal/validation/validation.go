// Package validation binds request data and validates it.
//
// Payloads declare their rules with `validate` struct tags and implement
// Validatable. Failures become 400 errors with field-level details.
package validation
