package utils

import (
	"context"
)

type contextKey string

const (
	EmailKey     contextKey = "email"
	RequestIDKey contextKey = "request_id"
)

// GetEmailFromContext returns the authenticated caller's email set by the
// auth middleware.
func GetEmailFromContext(ctx context.Context) (string, bool) {
	emailVal := ctx.Value(EmailKey)
	if emailVal == nil {
		return "", false
	}

	email, ok := emailVal.(string)
	if !ok || email == "" {
		return "", false
	}

	return email, true
}

func SetEmailContext(ctx context.Context, email string) context.Context {
	return context.WithValue(ctx, EmailKey, email)
}

func GetRequestIDFromContext(ctx context.Context) (string, bool) {
	idVal := ctx.Value(RequestIDKey)
	if idVal == nil {
		return "", false
	}

	id, ok := idVal.(string)
	return id, ok
}

func SetRequestIDContext(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, RequestIDKey, requestID)
}
