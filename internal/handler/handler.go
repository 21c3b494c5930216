// Package handler is the first layer after the router.
//
// It binds requests, validates them through the validation package and
// calls the service layer. Handlers depend on small service interfaces
// so they can be exercised with mocks.
package handler
