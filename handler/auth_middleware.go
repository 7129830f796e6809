package handler

import (
	"go-cuts-api/graph"
	"go-cuts-api/logger"
	"go-cuts-api/service"
	"net/http"
	"strings"
)

// AuthMiddleware is the auth gate in front of the GraphQL endpoint. It is
// deliberately permissive: a missing or malformed Authorization header means
// an anonymous request, never a rejection. Resolvers that need identity
// reject anonymity themselves. Verification is stateless and happens on
// every request.
func AuthMiddleware(tokens *service.TokenService) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				next.ServeHTTP(w, r)
				return
			}

			headerParts := strings.Split(authHeader, " ")
			if len(headerParts) != 2 || !strings.EqualFold(headerParts[0], "bearer") {
				next.ServeHTTP(w, r)
				return
			}

			claims, err := tokens.VerifyAccessToken(headerParts[1])
			if err != nil {
				// The failure reason travels with the request so guarded
				// resolvers can signal "expired" distinctly from "invalid".
				logger.Log.WithError(err).Debug("Access token verification failed")
				next.ServeHTTP(w, r.WithContext(graph.WithAuthError(r.Context(), err)))
				return
			}

			next.ServeHTTP(w, r.WithContext(graph.WithIdentity(r.Context(), claims)))
		})
	}
}
