package handler

import (
	"context"
	"net/http"
)

// Type contextKey is a custom contextKey type, with the underlying type string.
// This is necessary to prevent name collisions with external packages.
type contextKey string

const (
	sessionContextKey   = contextKey("session")
	requestIDContextKey = contextKey("request_id")
)

// contextSetSession returns a new copy of the request with the session id added to the context.
func (h *Handler) contextSetSession(r *http.Request, session string) *http.Request {
	ctx := context.WithValue(r.Context(), sessionContextKey, session)
	return r.WithContext(ctx)
}

// contextGetSession retrieves the session id from the request context. The session
// middleware always sets it, so a missing value is an unexpected error.
func (h *Handler) contextGetSession(r *http.Request) string {
	session, ok := r.Context().Value(sessionContextKey).(string)
	if !ok {
		panic("missing session value in request context")
	}
	return session
}

func contextSetRequestID(r *http.Request, id string) *http.Request {
	ctx := context.WithValue(r.Context(), requestIDContextKey, id)
	return r.WithContext(ctx)
}

// contextGetRequestID returns the request id, or "" outside the requestID middleware.
func contextGetRequestID(r *http.Request) string {
	id, _ := r.Context().Value(requestIDContextKey).(string)
	return id
}
