package middleware

import (
	"context"

	"github.com/booknest/storefront/internal/session"
)

type contextKey string

const ctxSession contextKey = "shopper_session"

// WithSession injects the shopper session into the context for downstream handlers.
func WithSession(ctx context.Context, s *session.Session) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}
	return context.WithValue(ctx, ctxSession, s)
}

func SessionFromContext(ctx context.Context) *session.Session {
	if ctx == nil {
		return nil
	}
	if v, ok := ctx.Value(ctxSession).(*session.Session); ok {
		return v
	}
	return nil
}
