package model

import "go-cuts-api/common"

// LoginResponse carries either field-level errors or the logged-in user and
// a fresh access token. The refresh token travels separately as a cookie.
type LoginResponse struct {
	Errors      []common.FieldError `json:"errors,omitempty"`
	User        *User               `json:"user,omitempty"`
	AccessToken string              `json:"accessToken,omitempty"`
}

// RefreshAccessTokenResponse is the renewal result. A nil response at the
// GraphQL layer means "not logged in".
type RefreshAccessTokenResponse struct {
	AccessToken string `json:"accessToken"`
}
