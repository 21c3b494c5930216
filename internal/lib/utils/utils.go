// Package utils contains small helper functions used across the project.
package utils

import "strings"

// NilIfBlank returns nil for a nil or whitespace-only string so optional
// columns are stored as NULL. Other values are returned trimmed.
func NilIfBlank(s *string) *string {
	if s == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*s)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}

// Deref returns the pointed-to value, or the zero value for nil.
func Deref[T any](p *T) T {
	var zero T
	if p == nil {
		return zero
	}
	return *p
}
