package service

import (
	"errors"
	"fmt"
	"go-cuts-api/logger"
	"go-cuts-api/model"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	// ErrTokenExpired signals a structurally valid token past its expiry.
	// Callers use it to trigger renewal instead of rejecting outright.
	ErrTokenExpired = errors.New("token expired")
	// ErrTokenInvalid covers every other verification failure.
	ErrTokenInvalid = errors.New("token invalid")
)

// TokenConfig carries the signing material and lifetimes for both token
// kinds. It is injected at construction so tests can supply distinct secrets
// and short windows per case; nothing reads ambient configuration.
type TokenConfig struct {
	AccessSecret  []byte
	RefreshSecret []byte
	AccessTTL     time.Duration
	RefreshTTL    time.Duration
}

// TokenService issues and verifies the signed, self-contained credentials of
// the authentication lifecycle. It has no storage side effects.
type TokenService struct {
	cfg TokenConfig
}

func NewTokenService(cfg TokenConfig) *TokenService {
	return &TokenService{cfg: cfg}
}

// IssueAccessToken signs a short-lived credential embedding the user id.
func (s *TokenService) IssueAccessToken(userID int) (string, error) {
	return s.issue(userID, s.cfg.AccessSecret, s.cfg.AccessTTL)
}

// IssueRefreshToken signs the long-lived counterpart with its own secret.
func (s *TokenService) IssueRefreshToken(userID int) (string, error) {
	return s.issue(userID, s.cfg.RefreshSecret, s.cfg.RefreshTTL)
}

func (s *TokenService) issue(userID int, secret []byte, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := &model.AppClaims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString(secret)
	if err != nil {
		logger.Log.WithError(err).WithField("user_id", userID).Error("Failed to sign token")
		return "", fmt.Errorf("failed to sign token string: %w", err)
	}
	return tokenString, nil
}

// VerifyAccessToken checks signature and expiry against the access secret.
func (s *TokenService) VerifyAccessToken(tokenString string) (*model.AppClaims, error) {
	return s.verify(tokenString, s.cfg.AccessSecret)
}

// VerifyRefreshToken checks signature and expiry against the refresh secret.
func (s *TokenService) VerifyRefreshToken(tokenString string) (*model.AppClaims, error) {
	return s.verify(tokenString, s.cfg.RefreshSecret)
}

func (s *TokenService) verify(tokenString string, secret []byte) (*model.AppClaims, error) {
	claims := &model.AppClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		return secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))

	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrTokenExpired
		}
		return nil, fmt.Errorf("%w: %s", ErrTokenInvalid, err)
	}
	if !token.Valid {
		return nil, ErrTokenInvalid
	}
	return claims, nil
}
