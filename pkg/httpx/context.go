package httpx

import "context"

type ctxKey string

const (
	ctxKeyUserID   ctxKey = "user_id"
	ctxKeyUsername ctxKey = "username"
)

// WithPrincipal records the authenticated caller on ctx.
func WithPrincipal(ctx context.Context, userID, username string) context.Context {
	ctx = context.WithValue(ctx, ctxKeyUserID, userID)
	return context.WithValue(ctx, ctxKeyUsername, username)
}

// UserID returns the authenticated user's id, or "" outside AuthnMiddleware.
func UserID(ctx context.Context) string {
	v, _ := ctx.Value(ctxKeyUserID).(string)
	return v
}

// Username returns the authenticated user's username.
func Username(ctx context.Context) string {
	v, _ := ctx.Value(ctxKeyUsername).(string)
	return v
}
