// Package middleware stores global and route-specific middleware.
//
// These intercept requests to handle cross-cutting concerns
// such as CORS, request logging, request ids, tracing, metrics,
// rate limiting, and panic recovery.
package middleware
