package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func testTokenConfig() TokenConfig {
	return TokenConfig{
		AccessSecret:  []byte("test-access-secret"),
		RefreshSecret: []byte("test-refresh-secret"),
		AccessTTL:     time.Minute,
		RefreshTTL:    time.Hour,
	}
}

func TestTokenService_IssueAndVerifyAccessToken(t *testing.T) {
	tokens := NewTokenService(testTokenConfig())

	tokenString, err := tokens.IssueAccessToken(42)
	assert.NoError(t, err)
	assert.NotEmpty(t, tokenString)

	claims, err := tokens.VerifyAccessToken(tokenString)
	assert.NoError(t, err)
	assert.Equal(t, 42, claims.UserID)
}

func TestTokenService_IssueAndVerifyRefreshToken(t *testing.T) {
	tokens := NewTokenService(testTokenConfig())

	tokenString, err := tokens.IssueRefreshToken(7)
	assert.NoError(t, err)

	claims, err := tokens.VerifyRefreshToken(tokenString)
	assert.NoError(t, err)
	assert.Equal(t, 7, claims.UserID)
}

func TestTokenService_ExpiredToken(t *testing.T) {
	cfg := testTokenConfig()
	cfg.AccessTTL = -time.Minute
	tokens := NewTokenService(cfg)

	tokenString, err := tokens.IssueAccessToken(1)
	assert.NoError(t, err)

	_, err = tokens.VerifyAccessToken(tokenString)
	assert.ErrorIs(t, err, ErrTokenExpired)
}

func TestTokenService_CrossKindVerificationFails(t *testing.T) {
	tokens := NewTokenService(testTokenConfig())

	// An access token must never pass refresh verification; the secrets
	// are distinct per kind.
	accessToken, err := tokens.IssueAccessToken(1)
	assert.NoError(t, err)

	_, err = tokens.VerifyRefreshToken(accessToken)
	assert.ErrorIs(t, err, ErrTokenInvalid)
}

func TestTokenService_GarbageToken(t *testing.T) {
	tokens := NewTokenService(testTokenConfig())

	_, err := tokens.VerifyAccessToken("not-a-token")
	assert.ErrorIs(t, err, ErrTokenInvalid)
	assert.NotErrorIs(t, err, ErrTokenExpired)
}

func TestTokenService_WrongSecret(t *testing.T) {
	issuer := NewTokenService(testTokenConfig())

	otherCfg := testTokenConfig()
	otherCfg.AccessSecret = []byte("a-different-secret")
	verifier := NewTokenService(otherCfg)

	tokenString, err := issuer.IssueAccessToken(1)
	assert.NoError(t, err)

	_, err = verifier.VerifyAccessToken(tokenString)
	assert.ErrorIs(t, err, ErrTokenInvalid)
}
