// Package middleware stores global middleware.
//
// These intercept requests to handle cross-cutting concerns
// such as request ids, request logging, CORS, tracing, metrics
// and panic recovery
package middleware
