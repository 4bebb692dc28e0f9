// Package utils provides general-purpose helpers used across the address
// book: typed context keys, password hashing, session token signing and
// parsing, JSON response writing, the outbound HTTP client and the ID
// generator.
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

// UsernameCtxKey is the key under which the auth gate stores the verified
// subject of the session token.
//
//	ctx := context.WithValue(ctx, utils.UsernameCtxKey, "admin")
var UsernameCtxKey = contextKey("username")

// TraceIDCtxKey is the key under which the trace middleware stores the
// per-request trace identifier.
var TraceIDCtxKey = contextKey("traceID")

// GetUsernameFromContext retrieves the authenticated username from ctx.
// ok is false when the value is missing, empty or has an unexpected type.
func GetUsernameFromContext(ctx context.Context) (string, bool) {
	username, ok := ctx.Value(UsernameCtxKey).(string)
	return username, ok && username != ""
}

// GetTraceIDFromContext retrieves the trace identifier from ctx.
func GetTraceIDFromContext(ctx context.Context) (string, bool) {
	traceID, ok := ctx.Value(TraceIDCtxKey).(string)
	return traceID, ok
}
