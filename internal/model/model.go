// Package model holds the domain types shared by the repository, service
// and handler layers. Each resource lives in its own sub-package together
// with its request payloads.
package model

// MessageResponse is the body returned by write endpoints that have nothing
// else to report.
type MessageResponse struct {
	Message string `json:"message"`
}
