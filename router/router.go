package router

import (
	"go-cuts-api/handler"
	"go-cuts-api/service"
	"net/http"
)

func NewRouter(gqlHandler *handler.GraphQLHandler, tokens *service.TokenService) http.Handler {
	mux := http.NewServeMux()

	mux.Handle("/graphql", handler.AuthMiddleware(tokens)(gqlHandler))
	mux.HandleFunc("/healthz", handler.HealthCheck)

	return mux
}
