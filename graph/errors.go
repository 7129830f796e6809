package graph

import (
	"context"
	"errors"
	"go-cuts-api/common"
	"go-cuts-api/model"
	"go-cuts-api/service"
)

// Machine-readable error codes surfaced in GraphQL error extensions.
// CodeAccessTokenExpired is the signal the client retry interceptor keys on.
const (
	CodeUnauthenticated    = "UNAUTHENTICATED"
	CodeAccessTokenExpired = "ACCESS_TOKEN_EXPIRED"
	CodeBadUserInput       = "BAD_USER_INPUT"
)

// RequestError is a resolver error with a stable code (and optionally
// field-level detail) carried in the GraphQL error extensions.
type RequestError struct {
	Message     string
	Code        string
	FieldErrors []common.FieldError
}

func (e *RequestError) Error() string {
	return e.Message
}

// Extensions satisfies gqlerrors.ExtendedError, so the code survives
// response formatting.
func (e *RequestError) Extensions() map[string]interface{} {
	ext := map[string]interface{}{"code": e.Code}
	if len(e.FieldErrors) > 0 {
		fields := make([]map[string]interface{}, 0, len(e.FieldErrors))
		for _, fe := range e.FieldErrors {
			fields = append(fields, map[string]interface{}{
				"field":   fe.Field,
				"message": fe.Message,
			})
		}
		ext["fieldErrors"] = fields
	}
	return ext
}

func errUnauthenticated() *RequestError {
	return &RequestError{Message: "not authenticated", Code: CodeUnauthenticated}
}

func errAccessTokenExpired() *RequestError {
	return &RequestError{Message: "access token expired", Code: CodeAccessTokenExpired}
}

func errBadUserInput(fieldErrors []common.FieldError) *RequestError {
	return &RequestError{
		Message:     "invalid input",
		Code:        CodeBadUserInput,
		FieldErrors: fieldErrors,
	}
}

// requireIdentity is the guard in front of authenticated operations. An
// expired access token gets its own signal so clients renew instead of
// forcing a re-login; everything else is plain "not logged in".
func requireIdentity(ctx context.Context) (*model.AppClaims, error) {
	if claims := IdentityFrom(ctx); claims != nil {
		return claims, nil
	}
	if errors.Is(AuthErrorFrom(ctx), service.ErrTokenExpired) {
		return nil, errAccessTokenExpired()
	}
	return nil, errUnauthenticated()
}
