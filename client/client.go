// Package client is a Go consumer of the cuts GraphQL API. It keeps the
// current access token in a local cache, carries the refresh token in a
// cookie jar, and transparently renews and retries a request exactly once
// when the server signals an expired access token.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/cookiejar"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"
)

// codeAccessTokenExpired is the server's renewal signal. Only this exact
// code triggers the retry interceptor; generic authorization failures do
// not.
const codeAccessTokenExpired = "ACCESS_TOKEN_EXPIRED"

// ErrNotLoggedIn is returned when renewal is rejected by the server: the
// session is gone and the caller must log in again.
var ErrNotLoggedIn = errors.New("not logged in")

// GraphQLError is one entry of a GraphQL response's errors list.
type GraphQLError struct {
	Message    string                 `json:"message"`
	Path       []interface{}          `json:"path,omitempty"`
	Extensions map[string]interface{} `json:"extensions,omitempty"`
}

// Code returns the machine-readable error code, if any.
func (e GraphQLError) Code() string {
	code, _ := e.Extensions["code"].(string)
	return code
}

// RequestError wraps the errors list of a failed GraphQL request.
type RequestError struct {
	Errors []GraphQLError
}

func (e *RequestError) Error() string {
	if len(e.Errors) == 0 {
		return "graphql request failed"
	}
	return fmt.Sprintf("graphql request failed: %s", e.Errors[0].Message)
}

type graphqlResponse struct {
	Data   json.RawMessage `json:"data"`
	Errors []GraphQLError  `json:"errors"`
}

// Client is a stateful API consumer bound to one endpoint.
type Client struct {
	endpoint   string
	httpClient *http.Client

	mu          sync.RWMutex
	accessToken string

	// renewal coalesces concurrent refresh attempts: every call that hits
	// an expired token within the same window shares one in-flight renewal
	// instead of racing to rotate the refresh token.
	renewal singleflight.Group
}

// New builds a client with its own cookie jar; the jar is what carries the
// refreshtoken cookie between calls.
func New(endpoint string) (*Client, error) {
	jar, err := cookiejar.New(nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create cookie jar: %w", err)
	}
	return &Client{
		endpoint: endpoint,
		httpClient: &http.Client{
			Jar:     jar,
			Timeout: 30 * time.Second,
		},
	}, nil
}

// AccessToken returns the cached access token, or "".
func (c *Client) AccessToken() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.accessToken
}

func (c *Client) setAccessToken(token string) {
	c.mu.Lock()
	c.accessToken = token
	c.mu.Unlock()
}

// Do executes one GraphQL request and unmarshals its data into out (which
// may be nil). If the server signals an expired access token, Do renews the
// token and retries the request exactly once; a second expiry on the retry
// is surfaced as-is. When renewal itself fails, the token cache is cleared
// and the original error is returned.
func (c *Client) Do(ctx context.Context, query string, variables map[string]interface{}, out interface{}) error {
	resp, err := c.post(ctx, query, variables)
	if err != nil {
		return err
	}

	if hasCode(resp.Errors, codeAccessTokenExpired) {
		if _, renewErr := c.renewAccessToken(ctx); renewErr != nil {
			c.setAccessToken("")
			return &RequestError{Errors: resp.Errors}
		}
		resp, err = c.post(ctx, query, variables)
		if err != nil {
			return err
		}
	}

	if len(resp.Errors) > 0 {
		return &RequestError{Errors: resp.Errors}
	}
	if out != nil && resp.Data != nil {
		if err := json.Unmarshal(resp.Data, out); err != nil {
			return fmt.Errorf("failed to decode response data: %w", err)
		}
	}
	return nil
}

func (c *Client) post(ctx context.Context, query string, variables map[string]interface{}) (*graphqlResponse, error) {
	payload := map[string]interface{}{"query": query}
	if variables != nil {
		payload["variables"] = variables
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	if token := c.AccessToken(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	res, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status %d from %s", res.StatusCode, c.endpoint)
	}

	resp := &graphqlResponse{}
	if err := json.NewDecoder(res.Body).Decode(resp); err != nil {
		return nil, fmt.Errorf("failed to decode graphql response: %w", err)
	}
	return resp, nil
}

const refreshAccessTokenMutation = `mutation {
  refreshAccessToken { accessToken }
}`

// renewAccessToken exchanges the refresh cookie for a new access token.
// Concurrent callers share a single renewal.
func (c *Client) renewAccessToken(ctx context.Context) (string, error) {
	token, err, _ := c.renewal.Do("renew", func() (interface{}, error) {
		resp, err := c.post(ctx, refreshAccessTokenMutation, nil)
		if err != nil {
			return "", err
		}

		var payload struct {
			RefreshAccessToken *struct {
				AccessToken string `json:"accessToken"`
			} `json:"refreshAccessToken"`
		}
		if resp.Data != nil {
			if err := json.Unmarshal(resp.Data, &payload); err != nil {
				return "", err
			}
		}
		if payload.RefreshAccessToken == nil || payload.RefreshAccessToken.AccessToken == "" {
			return "", ErrNotLoggedIn
		}

		c.setAccessToken(payload.RefreshAccessToken.AccessToken)
		return payload.RefreshAccessToken.AccessToken, nil
	})
	if err != nil {
		return "", err
	}
	return token.(string), nil
}

func hasCode(errs []GraphQLError, code string) bool {
	for _, e := range errs {
		if e.Code() == code {
			return true
		}
	}
	return false
}
