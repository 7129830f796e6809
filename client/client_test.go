package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func expiredErrorBody() string {
	return `{"errors":[{"message":"access token expired","extensions":{"code":"ACCESS_TOKEN_EXPIRED"}}]}`
}

func renewedBody(token string) string {
	return fmt.Sprintf(`{"data":{"refreshAccessToken":{"accessToken":%q}}}`, token)
}

func decodeQuery(t *testing.T, r *http.Request) string {
	t.Helper()
	var req struct {
		Query string `json:"query"`
	}
	assert.NoError(t, json.NewDecoder(r.Body).Decode(&req))
	return req.Query
}

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	c, err := New(server.URL)
	assert.NoError(t, err)
	return c
}

func TestClient_RetriesOnceAfterRenewal(t *testing.T) {
	var queryCalls, renewCalls int32

	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		query := decodeQuery(t, r)
		w.Header().Set("Content-Type", "application/json")

		if strings.Contains(query, "refreshAccessToken") {
			atomic.AddInt32(&renewCalls, 1)
			fmt.Fprint(w, renewedBody("fresh-token"))
			return
		}

		atomic.AddInt32(&queryCalls, 1)
		if r.Header.Get("Authorization") != "Bearer fresh-token" {
			fmt.Fprint(w, expiredErrorBody())
			return
		}
		fmt.Fprint(w, `{"data":{"me":{"id":5,"username":"a"}}}`)
	})
	c.setAccessToken("stale-token")

	user, err := c.Me(context.Background())

	assert.NoError(t, err)
	assert.Equal(t, 5, user.ID)
	assert.Equal(t, "fresh-token", c.AccessToken())
	assert.Equal(t, int32(2), atomic.LoadInt32(&queryCalls))
	assert.Equal(t, int32(1), atomic.LoadInt32(&renewCalls))
}

func TestClient_NeverRetriesTwice(t *testing.T) {
	var queryCalls int32

	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		query := decodeQuery(t, r)
		w.Header().Set("Content-Type", "application/json")

		if strings.Contains(query, "refreshAccessToken") {
			fmt.Fprint(w, renewedBody("fresh-token"))
			return
		}

		// The server keeps rejecting even the renewed token; the client
		// must give up after one retry.
		atomic.AddInt32(&queryCalls, 1)
		fmt.Fprint(w, expiredErrorBody())
	})
	c.setAccessToken("stale-token")

	_, err := c.Me(context.Background())

	var reqErr *RequestError
	assert.ErrorAs(t, err, &reqErr)
	assert.Equal(t, codeAccessTokenExpired, reqErr.Errors[0].Code())
	assert.Equal(t, int32(2), atomic.LoadInt32(&queryCalls))
}

func TestClient_RenewalFailureClearsCacheAndKeepsOriginalError(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		query := decodeQuery(t, r)
		w.Header().Set("Content-Type", "application/json")

		if strings.Contains(query, "refreshAccessToken") {
			// No session on the server side: renewal comes back null.
			fmt.Fprint(w, `{"data":{"refreshAccessToken":null}}`)
			return
		}
		fmt.Fprint(w, expiredErrorBody())
	})
	c.setAccessToken("stale-token")

	_, err := c.Me(context.Background())

	var reqErr *RequestError
	assert.ErrorAs(t, err, &reqErr)
	assert.Equal(t, codeAccessTokenExpired, reqErr.Errors[0].Code())
	assert.Empty(t, c.AccessToken())
}

func TestClient_RefreshAccessTokenNullMeansNotLoggedIn(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{"data":{"refreshAccessToken":null}}`)
	})

	_, err := c.RefreshAccessToken(context.Background())
	assert.ErrorIs(t, err, ErrNotLoggedIn)
}

func TestClient_ConcurrentExpiryCoalescesRenewal(t *testing.T) {
	var renewCalls int32

	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		query := decodeQuery(t, r)
		w.Header().Set("Content-Type", "application/json")

		if strings.Contains(query, "refreshAccessToken") {
			atomic.AddInt32(&renewCalls, 1)
			// Keep the renewal in flight long enough for every worker to
			// pile onto it.
			time.Sleep(100 * time.Millisecond)
			fmt.Fprint(w, renewedBody("fresh-token"))
			return
		}

		if r.Header.Get("Authorization") != "Bearer fresh-token" {
			fmt.Fprint(w, expiredErrorBody())
			return
		}
		fmt.Fprint(w, `{"data":{"me":{"id":5}}}`)
	})
	c.setAccessToken("stale-token")

	const workers = 8
	var wg sync.WaitGroup
	errs := make([]error, workers)
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = c.Me(context.Background())
		}(i)
	}
	wg.Wait()

	for i := 0; i < workers; i++ {
		assert.NoError(t, errs[i])
	}
	assert.Equal(t, int32(1), atomic.LoadInt32(&renewCalls))
	assert.Equal(t, "fresh-token", c.AccessToken())
}

func TestClient_LoginCachesTokenAndCookie(t *testing.T) {
	var sawCookie atomic.Bool

	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		query := decodeQuery(t, r)
		w.Header().Set("Content-Type", "application/json")

		if strings.Contains(query, "login") {
			http.SetCookie(w, &http.Cookie{Name: "refreshtoken", Value: "refresh-value", Path: "/"})
			fmt.Fprint(w, `{"data":{"login":{"errors":null,"user":{"id":5,"username":"a"},"accessToken":"login-token"}}}`)
			return
		}

		if cookie, err := r.Cookie("refreshtoken"); err == nil && cookie.Value == "refresh-value" {
			sawCookie.Store(true)
		}
		fmt.Fprint(w, `{"data":{"me":{"id":5}}}`)
	})

	result, err := c.Login(context.Background(), "a", "Abcdef12!")
	assert.NoError(t, err)
	assert.Equal(t, 5, result.User.ID)
	assert.Equal(t, "login-token", c.AccessToken())

	_, err = c.Me(context.Background())
	assert.NoError(t, err)
	assert.True(t, sawCookie.Load())
}

func TestClient_LogoutClearsTokenCache(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{"data":{"logout":true}}`)
	})
	c.setAccessToken("some-token")

	assert.NoError(t, c.Logout(context.Background()))
	assert.Empty(t, c.AccessToken())
}

func TestClient_FieldErrorsPassThrough(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{"data":{"login":{"errors":[{"field":"password","message":"Incorrect password."}],"user":null,"accessToken":""}}}`)
	})

	result, err := c.Login(context.Background(), "a", "wrong")
	assert.NoError(t, err)
	assert.Len(t, result.Errors, 1)
	assert.Equal(t, "password", result.Errors[0].Field)
	assert.Nil(t, result.User)
	assert.Empty(t, c.AccessToken())
}
