package auth

import "context"

// contextKey is an unexported type for context keys to prevent collisions.
type contextKey string

const (
	claimsContextKey    contextKey = "authd:claims"
	tokenContextKey     contextKey = "authd:token"
	requestIDContextKey contextKey = "authd:request_id"
)

// WithClaims stores verified token claims in the request context. Claims are
// immutable and must not be modified by downstream handlers.
func WithClaims(ctx context.Context, claims *TokenClaims) context.Context {
	return context.WithValue(ctx, claimsContextKey, claims)
}

// GetClaims retrieves verified token claims from the request context.
// Always check the ok return value before using the claims.
func GetClaims(ctx context.Context) (*TokenClaims, bool) {
	claims, ok := ctx.Value(claimsContextKey).(*TokenClaims)
	return claims, ok
}

// WithBearerToken stores the raw presented token in the request context so
// the logout handler can revoke exactly the credential it was called with.
func WithBearerToken(ctx context.Context, token string) context.Context {
	return context.WithValue(ctx, tokenContextKey, token)
}

// GetBearerToken retrieves the raw presented token from the request context.
func GetBearerToken(ctx context.Context) (string, bool) {
	token, ok := ctx.Value(tokenContextKey).(string)
	return token, ok
}

// WithRequestID stores a request ID in context for log correlation.
func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, requestIDContextKey, requestID)
}

// GetRequestID retrieves the request ID from the context.
func GetRequestID(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(requestIDContextKey).(string)
	return id, ok
}
