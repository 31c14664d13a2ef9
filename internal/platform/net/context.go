// Package net provides utilities for working with request contexts
package net

import (
	"context"

	chimw "github.com/go-chi/chi/v5/middleware"
)

// ctxKey is an unexported key type for context values
type ctxKey string

const (
	keyRequesterID ctxKey = "requester_id"
	keyLocale      ctxKey = "locale"
)

// WithRequestID stores reqID so chimw.GetReqID can retrieve it
func WithRequestID(ctx context.Context, reqID string) context.Context {
	if reqID == "" {
		return ctx
	}
	return context.WithValue(ctx, chimw.RequestIDKey, reqID)
}

// WithRequester annotates context with the id of the user the feed is rendered for
func WithRequester(ctx context.Context, userID int64) context.Context {
	if userID <= 0 {
		return ctx
	}
	return context.WithValue(ctx, keyRequesterID, userID)
}

// WithLocale annotates context with the negotiated locale preference
func WithLocale(ctx context.Context, locale string) context.Context {
	if locale == "" {
		return ctx
	}
	return context.WithValue(ctx, keyLocale, locale)
}

// RequestID returns the request id on the context if present
func RequestID(ctx context.Context) string {
	return chimw.GetReqID(ctx)
}

// RequesterID returns the requesting user id on the context, 0 when absent
func RequesterID(ctx context.Context) int64 {
	if v, ok := ctx.Value(keyRequesterID).(int64); ok {
		return v
	}
	return 0
}

// Locale returns the locale preference on the context if present
func Locale(ctx context.Context) string {
	if v, ok := ctx.Value(keyLocale).(string); ok {
		return v
	}
	return ""
}
