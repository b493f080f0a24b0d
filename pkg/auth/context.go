package auth

import (
	"context"
	"errors"
)

// contextKey is an unexported type to prevent key collisions in context.
type contextKey string

const actorKey contextKey = "actor"

// ErrActorNotFound is returned when no actor exists in the request context.
// Handlers should return 401 when this error occurs.
var ErrActorNotFound = errors.New("actor not found in context")

// ActorFromCtx extracts the authenticated actor name from the request
// context. The actor is recorded verbatim in every audit entry the request
// produces. Returns ErrActorNotFound if no actor is set (unauthenticated
// request).
func ActorFromCtx(ctx context.Context) (string, error) {
	actor, ok := ctx.Value(actorKey).(string)
	if !ok || actor == "" {
		return "", ErrActorNotFound
	}
	return actor, nil
}

// WithActor returns a new context with the given actor name attached.
// Used by authentication middleware after validating the session.
func WithActor(ctx context.Context, actor string) context.Context {
	return context.WithValue(ctx, actorKey, actor)
}
