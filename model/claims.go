package model

import "github.com/golang-jwt/jwt/v5"

// AppClaims is the payload of both access and refresh tokens: the user
// identifier plus the standard time bounds.
type AppClaims struct {
	UserID int `json:"userId"`
	jwt.RegisteredClaims
}
