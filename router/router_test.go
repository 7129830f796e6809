package router

import (
	"go-cuts-api/graph"
	"go-cuts-api/handler"
	"go-cuts-api/service"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func newTestRouter(t *testing.T) http.Handler {
	t.Helper()

	tokens := service.NewTokenService(service.TokenConfig{
		AccessSecret:  []byte("router-test-access"),
		RefreshSecret: []byte("router-test-refresh"),
		AccessTTL:     time.Minute,
		RefreshTTL:    time.Hour,
	})

	schema, err := graph.NewSchema(&graph.Resolver{Films: service.NewFilmService()})
	assert.NoError(t, err)

	return NewRouter(handler.NewGraphQLHandler(schema), tokens)
}

func TestRouter_HealthCheck(t *testing.T) {
	router := newTestRouter(t)

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/healthz", nil))

	assert.Equal(t, http.StatusOK, recorder.Code)
}

func TestRouter_GraphQLRejectsGet(t *testing.T) {
	router := newTestRouter(t)

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/graphql", nil))

	assert.Equal(t, http.StatusMethodNotAllowed, recorder.Code)
}

func TestRouter_UnknownPath(t *testing.T) {
	router := newTestRouter(t)

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/nope", nil))

	assert.Equal(t, http.StatusNotFound, recorder.Code)
}
