// Package net provides utilities for working with request contexts
package net

import (
	"context"

	chimw "github.com/go-chi/chi/v5/middleware"
)

// ctxKey is an unexported key type for context values
type ctxKey string

const (
	keyRunID    ctxKey = "run_id"
	keyDialogID ctxKey = "dialog_id"
)

// WithRequest annotates context with common request scoped ids
func WithRequest(ctx context.Context, reqID, runID string) context.Context {
	if reqID != "" {
		// set chi RequestID so chimw.GetReqID can retrieve it
		ctx = context.WithValue(ctx, chimw.RequestIDKey, reqID)
	}
	if runID != "" {
		ctx = context.WithValue(ctx, keyRunID, runID)
	}
	return ctx
}

// WithDialog annotates context with the dialog id being processed
func WithDialog(ctx context.Context, dialogID string) context.Context {
	if dialogID != "" {
		ctx = context.WithValue(ctx, keyDialogID, dialogID)
	}
	return ctx
}

// RequestID returns the request id on the context if present
func RequestID(ctx context.Context) string {
	if v := chimw.GetReqID(ctx); v != "" {
		return v
	}
	return ""
}

// RunID returns the scan run id on the context if present
func RunID(ctx context.Context) string {
	if v, ok := ctx.Value(keyRunID).(string); ok {
		return v
	}
	return ""
}

// DialogID returns the dialog id on the context if present
func DialogID(ctx context.Context) string {
	if v, ok := ctx.Value(keyDialogID).(string); ok {
		return v
	}
	return ""
}
