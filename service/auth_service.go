package service

import (
	"database/sql"
	"errors"
	"go-cuts-api/common"
	"go-cuts-api/logger"
	"go-cuts-api/model"
	"go-cuts-api/repository"
	"net/http"
	"time"

	"golang.org/x/crypto/bcrypt"
)

// RefreshCookieName is the cookie that carries the refresh token between
// browser and server.
const RefreshCookieName = "refreshtoken"

// ErrRenewalRejected is the single terminal outcome of every failed renewal
// path: missing cookie, bad token, unknown user, or stored mismatch. It is
// an expected "not logged in" condition, not a fault.
var ErrRenewalRejected = errors.New("refresh token renewal rejected")

func HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), 14)
	if err != nil {
		logger.Log.WithError(err).Error("Failed to hash password")
		return "", err
	}
	return string(bytes), err
}

func CheckPasswordHash(password, hash string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	return err == nil
}

// AuthService owns account credentials and the access/refresh lifecycle:
// signup, login, logout, and the renewal flow.
type AuthService struct {
	userRepo   repository.IUserRepository
	tokens     *TokenService
	refreshTTL time.Duration
	production bool
}

func NewAuthService(userRepo repository.IUserRepository, tokens *TokenService, refreshTTL time.Duration, production bool) *AuthService {
	return &AuthService{
		userRepo:   userRepo,
		tokens:     tokens,
		refreshTTL: refreshTTL,
		production: production,
	}
}

// SignUp validates the input, hashes the password and creates the account.
// Domain failures (bad email, duplicate username) come back as field errors,
// not as Go errors.
func (s *AuthService) SignUp(input model.SignUpInput) (*model.User, []common.FieldError, error) {
	if fieldErrors := common.ValidateInput(input); fieldErrors != nil {
		return nil, fieldErrors, nil
	}

	hashed, err := HashPassword(input.Password)
	if err != nil {
		return nil, nil, err
	}

	user := &model.User{
		Username: input.Username,
		Email:    input.Email,
		Password: hashed,
	}

	if err := s.userRepo.CreateUser(user); err != nil {
		switch {
		case errors.Is(err, repository.ErrDuplicateEmail):
			return nil, []common.FieldError{{Field: "email", Message: "This email is already in use."}}, nil
		case errors.Is(err, repository.ErrDuplicateUsername):
			return nil, []common.FieldError{{Field: "username", Message: "This username is already taken."}}, nil
		}
		return nil, nil, err
	}

	logger.Log.WithField("user_id", user.ID).Info("User signed up")
	return user, nil, nil
}

// Login verifies credentials and, on success, issues a fresh token pair and
// persists the refresh token as the account's single active session.
// The refresh token is returned separately so the transport layer can set
// the cookie.
func (s *AuthService) Login(input model.LoginInput) (*model.LoginResponse, string, error) {
	if fieldErrors := common.ValidateInput(input); fieldErrors != nil {
		return &model.LoginResponse{Errors: fieldErrors}, "", nil
	}

	user, err := s.userRepo.GetUserByEmailOrUsername(input.EmailOrUsername)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return &model.LoginResponse{Errors: []common.FieldError{
				{Field: "emailOrUsername", Message: "No account matches this email or username."},
			}}, "", nil
		}
		return nil, "", err
	}

	if !CheckPasswordHash(input.Password, user.Password) {
		return &model.LoginResponse{Errors: []common.FieldError{
			{Field: "password", Message: "Incorrect password."},
		}}, "", nil
	}

	accessToken, err := s.tokens.IssueAccessToken(user.ID)
	if err != nil {
		return nil, "", err
	}
	refreshToken, err := s.tokens.IssueRefreshToken(user.ID)
	if err != nil {
		return nil, "", err
	}

	if err := s.userRepo.UpdateRefreshToken(user.ID, refreshToken); err != nil {
		return nil, "", err
	}

	logger.Log.WithField("user_id", user.ID).Info("User logged in")
	return &model.LoginResponse{User: user, AccessToken: accessToken}, refreshToken, nil
}

// RefreshAccessToken runs the renewal state machine over a presented refresh
// token. Every rejection path returns ErrRenewalRejected; on success the new
// pair is returned and the stored token has been rotated, which invalidates
// the presented one for any later attempt.
func (s *AuthService) RefreshAccessToken(presented string) (accessToken, refreshToken string, err error) {
	if presented == "" {
		return "", "", ErrRenewalRejected
	}

	claims, err := s.tokens.VerifyRefreshToken(presented)
	if err != nil {
		logger.Log.WithError(err).Info("Refresh token failed verification")
		return "", "", ErrRenewalRejected
	}

	if _, err := s.userRepo.GetUserByID(claims.UserID); err != nil {
		if !errors.Is(err, sql.ErrNoRows) {
			logger.Log.WithError(err).WithField("user_id", claims.UserID).Error("User lookup failed during renewal")
		}
		return "", "", ErrRenewalRejected
	}

	accessToken, err = s.tokens.IssueAccessToken(claims.UserID)
	if err != nil {
		return "", "", ErrRenewalRejected
	}
	refreshToken, err = s.tokens.IssueRefreshToken(claims.UserID)
	if err != nil {
		return "", "", ErrRenewalRejected
	}

	// The conditional update is the mismatch check: if the presented token
	// is not the stored one (rotated elsewhere, or cleared by logout), zero
	// rows change and the renewal is rejected.
	swapped, err := s.userRepo.RotateRefreshToken(claims.UserID, presented, refreshToken)
	if err != nil || !swapped {
		return "", "", ErrRenewalRejected
	}

	logger.Log.WithField("user_id", claims.UserID).Info("Access token renewed")
	return accessToken, refreshToken, nil
}

// Logout revokes the server-side refresh token. Previously issued refresh
// tokens no longer match the stored (now empty) value and cannot renew.
func (s *AuthService) Logout(userID int) error {
	if err := s.userRepo.ClearRefreshToken(userID); err != nil {
		return err
	}
	logger.Log.WithField("user_id", userID).Info("User logged out")
	return nil
}

// Me returns the authenticated user's own account row.
func (s *AuthService) Me(userID int) (*model.User, error) {
	user, err := s.userRepo.GetUserByID(userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return user, nil
}

// NewRefreshCookie builds the transport cookie for a refresh token.
func (s *AuthService) NewRefreshCookie(value string) *http.Cookie {
	return &http.Cookie{
		Name:     RefreshCookieName,
		Value:    value,
		Path:     "/",
		HttpOnly: true,
		Secure:   s.production,
		SameSite: http.SameSiteLaxMode,
		Expires:  time.Now().Add(s.refreshTTL),
	}
}

// NewClearedRefreshCookie overwrites the cookie with an empty value on
// logout.
func (s *AuthService) NewClearedRefreshCookie() *http.Cookie {
	cookie := s.NewRefreshCookie("")
	cookie.Expires = time.Unix(0, 0)
	cookie.MaxAge = -1
	return cookie
}
