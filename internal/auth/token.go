package auth

import (
	"context"
	"errors"
)

// ErrAuthUnavailable is returned when no bearer credential can be obtained
// for an outbound call.  Callers must not issue the request in that case;
// handlers translate this into a 401 response.
var ErrAuthUnavailable = errors.New("no bearer credential available")

// TokenSource supplies a bearer credential for a single outbound request.
// Credentials issued by the identity provider are short-lived, so a fresh
// token must be acquired immediately before every call and never cached
// across calls.
type TokenSource interface {
	Token(ctx context.Context) (string, error)
}

// TokenFunc adapts a plain function to the TokenSource interface.
type TokenFunc func(ctx context.Context) (string, error)

// Token implements TokenSource.
func (f TokenFunc) Token(ctx context.Context) (string, error) { return f(ctx) }

type bearerKey struct{}

// WithBearer returns a context carrying the caller's bearer credential.
// The JWT middleware attaches the verified raw token here so that remote
// collection calls made while serving the request can forward it.
func WithBearer(ctx context.Context, token string) context.Context {
	return context.WithValue(ctx, bearerKey{}, token)
}

// BearerFromContext extracts the bearer credential stored by WithBearer.
func BearerFromContext(ctx context.Context) (string, bool) {
	tok, ok := ctx.Value(bearerKey{}).(string)
	return tok, ok && tok != ""
}

// ContextTokenSource reads the bearer credential out of the request context
// on every call.  Because the lookup happens per call, each remote request
// sees the credential current at that moment rather than a snapshot taken
// when the client was built.
type ContextTokenSource struct{}

// Token implements TokenSource.  It fails with ErrAuthUnavailable when the
// context carries no credential.
func (ContextTokenSource) Token(ctx context.Context) (string, error) {
	tok, ok := BearerFromContext(ctx)
	if !ok {
		return "", ErrAuthUnavailable
	}
	return tok, nil
}
