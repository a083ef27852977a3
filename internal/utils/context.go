// Package utils provides general-purpose helper utilities
// used across different parts of the application.
// Includes tools for working with context, type-safe keys, request ids,
// HTTP response writing (JSON and Server-Sent Events) and HTTP client
// initialization.
package utils

import (
	"context"
)

// contextKey is a private type for context keys.
// Using a dedicated type instead of a plain string prevents key collisions
// with other packages that may use string-based keys in the context.
type contextKey string

// String returns the string representation of the context key.
// Implements the fmt.Stringer interface.
func (c contextKey) String() string {
	return string(c)
}

// RequestIDCtxKey is the key used to store the request identifier in the
// context. The HTTP adapter sends it as the X-Request-ID header so that client
// and backend logs can be correlated.
var RequestIDCtxKey = contextKey("requestID")

// WithRequestID returns a copy of ctx carrying requestID.
func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, RequestIDCtxKey, requestID)
}

// GetRequestIDFromContext retrieves the request identifier from the context.
//
// Returns the request id and an ok flag:
//   - ok == true: value is found, is a string and is not empty
//   - ok == false: value is missing, empty or has an unexpected type
func GetRequestIDFromContext(ctx context.Context) (string, bool) {
	requestID, ok := ctx.Value(RequestIDCtxKey).(string)
	return requestID, ok && requestID != ""
}
