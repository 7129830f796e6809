package graph

import (
	"context"
	"go-cuts-api/model"
	"net/http"
)

type contextKey string

const (
	identityKey       contextKey = "identity"
	authErrKey        contextKey = "authError"
	responseWriterKey contextKey = "responseWriter"
	requestKey        contextKey = "request"
)

// WithIdentity stores the verified identity for the request. A nil identity
// is simply never stored; resolvers treat its absence as anonymous access.
func WithIdentity(ctx context.Context, claims *model.AppClaims) context.Context {
	return context.WithValue(ctx, identityKey, claims)
}

// IdentityFrom returns the verified identity, or nil for anonymous requests.
func IdentityFrom(ctx context.Context) *model.AppClaims {
	claims, _ := ctx.Value(identityKey).(*model.AppClaims)
	return claims
}

// WithAuthError records why token verification failed, so guarded resolvers
// can distinguish an expired access token from a malformed one.
func WithAuthError(ctx context.Context, err error) context.Context {
	return context.WithValue(ctx, authErrKey, err)
}

// AuthErrorFrom returns the verification failure for the request, if any.
func AuthErrorFrom(ctx context.Context) error {
	err, _ := ctx.Value(authErrKey).(error)
	return err
}

// WithHTTP attaches the raw request/response pair; the login, logout and
// renewal resolvers need them for cookie handling.
func WithHTTP(ctx context.Context, w http.ResponseWriter, r *http.Request) context.Context {
	ctx = context.WithValue(ctx, responseWriterKey, w)
	return context.WithValue(ctx, requestKey, r)
}

func ResponseWriterFrom(ctx context.Context) http.ResponseWriter {
	w, _ := ctx.Value(responseWriterKey).(http.ResponseWriter)
	return w
}

func RequestFrom(ctx context.Context) *http.Request {
	r, _ := ctx.Value(requestKey).(*http.Request)
	return r
}
