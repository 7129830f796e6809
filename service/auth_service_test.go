package service

import (
	"database/sql"
	"go-cuts-api/model"
	"go-cuts-api/repository"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"
)

type mockUserRepo struct{ mock.Mock }

func (m *mockUserRepo) CreateUser(user *model.User) error {
	args := m.Called(user)
	return args.Error(0)
}
func (m *mockUserRepo) GetUserByID(id int) (*model.User, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}
func (m *mockUserRepo) GetUserByEmailOrUsername(emailOrUsername string) (*model.User, error) {
	args := m.Called(emailOrUsername)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}
func (m *mockUserRepo) UpdateRefreshToken(userID int, token string) error {
	args := m.Called(userID, token)
	return args.Error(0)
}
func (m *mockUserRepo) RotateRefreshToken(userID int, presented, next string) (bool, error) {
	args := m.Called(userID, presented, next)
	return args.Bool(0), args.Error(1)
}
func (m *mockUserRepo) ClearRefreshToken(userID int) error {
	args := m.Called(userID)
	return args.Error(0)
}
func (m *mockUserRepo) UpdateProfileImage(userID int, url string) error {
	args := m.Called(userID, url)
	return args.Error(0)
}

func newTestAuthService(repo *mockUserRepo) (*AuthService, *TokenService) {
	tokens := NewTokenService(testTokenConfig())
	return NewAuthService(repo, tokens, 14*24*time.Hour, false), tokens
}

func quickHash(t *testing.T, password string) string {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	assert.NoError(t, err)
	return string(hash)
}

func TestAuthService_SignUp(t *testing.T) {
	t.Run("success hashes the password", func(t *testing.T) {
		mockRepo := new(mockUserRepo)
		authService, _ := newTestAuthService(mockRepo)

		mockRepo.On("CreateUser", mock.MatchedBy(func(u *model.User) bool {
			return u.Email == "a@b.com" && u.Username == "a" &&
				u.Password != "Abcdef12!" && CheckPasswordHash("Abcdef12!", u.Password)
		})).Run(func(args mock.Arguments) {
			args.Get(0).(*model.User).ID = 1
		}).Return(nil).Once()

		user, fieldErrors, err := authService.SignUp(model.SignUpInput{
			Email: "a@b.com", Username: "a", Password: "Abcdef12!",
		})

		assert.NoError(t, err)
		assert.Nil(t, fieldErrors)
		assert.Equal(t, 1, user.ID)
		mockRepo.AssertExpectations(t)
	})

	t.Run("invalid email yields a field error without touching the repo", func(t *testing.T) {
		mockRepo := new(mockUserRepo)
		authService, _ := newTestAuthService(mockRepo)

		user, fieldErrors, err := authService.SignUp(model.SignUpInput{
			Email: "not-an-email", Username: "a", Password: "Abcdef12!",
		})

		assert.NoError(t, err)
		assert.Nil(t, user)
		assert.NotEmpty(t, fieldErrors)
		assert.Equal(t, "email", fieldErrors[0].Field)
		mockRepo.AssertNotCalled(t, "CreateUser")
	})

	t.Run("duplicate email maps to a field error", func(t *testing.T) {
		mockRepo := new(mockUserRepo)
		authService, _ := newTestAuthService(mockRepo)

		mockRepo.On("CreateUser", mock.Anything).Return(repository.ErrDuplicateEmail).Once()

		user, fieldErrors, err := authService.SignUp(model.SignUpInput{
			Email: "a@b.com", Username: "a", Password: "Abcdef12!",
		})

		assert.NoError(t, err)
		assert.Nil(t, user)
		assert.Len(t, fieldErrors, 1)
		assert.Equal(t, "email", fieldErrors[0].Field)
	})
}

func TestAuthService_Login(t *testing.T) {
	t.Run("success issues tokens and persists the refresh token", func(t *testing.T) {
		mockRepo := new(mockUserRepo)
		authService, tokens := newTestAuthService(mockRepo)

		stored := &model.User{ID: 5, Email: "a@b.com", Username: "a", Password: quickHash(t, "Abcdef12!")}
		mockRepo.On("GetUserByEmailOrUsername", "a@b.com").Return(stored, nil).Once()
		mockRepo.On("UpdateRefreshToken", 5, mock.AnythingOfType("string")).Return(nil).Once()

		resp, refreshToken, err := authService.Login(model.LoginInput{
			EmailOrUsername: "a@b.com", Password: "Abcdef12!",
		})

		assert.NoError(t, err)
		assert.Empty(t, resp.Errors)
		assert.Equal(t, 5, resp.User.ID)
		assert.NotEmpty(t, resp.AccessToken)
		assert.NotEmpty(t, refreshToken)

		claims, err := tokens.VerifyAccessToken(resp.AccessToken)
		assert.NoError(t, err)
		assert.Equal(t, 5, claims.UserID)

		claims, err = tokens.VerifyRefreshToken(refreshToken)
		assert.NoError(t, err)
		assert.Equal(t, 5, claims.UserID)
		mockRepo.AssertExpectations(t)
	})

	t.Run("unknown user yields a field error", func(t *testing.T) {
		mockRepo := new(mockUserRepo)
		authService, _ := newTestAuthService(mockRepo)

		mockRepo.On("GetUserByEmailOrUsername", "nobody").Return(nil, sql.ErrNoRows).Once()

		resp, refreshToken, err := authService.Login(model.LoginInput{
			EmailOrUsername: "nobody", Password: "Abcdef12!",
		})

		assert.NoError(t, err)
		assert.Empty(t, refreshToken)
		assert.Len(t, resp.Errors, 1)
		assert.Equal(t, "emailOrUsername", resp.Errors[0].Field)
		mockRepo.AssertNotCalled(t, "UpdateRefreshToken")
	})

	t.Run("wrong password yields a field error", func(t *testing.T) {
		mockRepo := new(mockUserRepo)
		authService, _ := newTestAuthService(mockRepo)

		stored := &model.User{ID: 5, Password: quickHash(t, "Abcdef12!")}
		mockRepo.On("GetUserByEmailOrUsername", "a").Return(stored, nil).Once()

		resp, _, err := authService.Login(model.LoginInput{
			EmailOrUsername: "a", Password: "WrongPass1!",
		})

		assert.NoError(t, err)
		assert.Len(t, resp.Errors, 1)
		assert.Equal(t, "password", resp.Errors[0].Field)
		mockRepo.AssertNotCalled(t, "UpdateRefreshToken")
	})
}

func TestAuthService_RefreshAccessToken(t *testing.T) {
	t.Run("valid token rotates and returns a new pair", func(t *testing.T) {
		mockRepo := new(mockUserRepo)
		authService, tokens := newTestAuthService(mockRepo)

		presented, err := tokens.IssueRefreshToken(7)
		assert.NoError(t, err)

		mockRepo.On("GetUserByID", 7).Return(&model.User{ID: 7, RefreshToken: presented}, nil).Once()
		mockRepo.On("RotateRefreshToken", 7, presented, mock.AnythingOfType("string")).Return(true, nil).Once()

		accessToken, refreshToken, err := authService.RefreshAccessToken(presented)
		assert.NoError(t, err)
		assert.NotEmpty(t, accessToken)
		assert.NotEmpty(t, refreshToken)

		claims, err := tokens.VerifyAccessToken(accessToken)
		assert.NoError(t, err)
		assert.Equal(t, 7, claims.UserID)
		mockRepo.AssertExpectations(t)
	})

	t.Run("missing token is rejected", func(t *testing.T) {
		mockRepo := new(mockUserRepo)
		authService, _ := newTestAuthService(mockRepo)

		_, _, err := authService.RefreshAccessToken("")
		assert.ErrorIs(t, err, ErrRenewalRejected)
	})

	t.Run("expired refresh token is rejected", func(t *testing.T) {
		mockRepo := new(mockUserRepo)
		cfg := testTokenConfig()
		cfg.RefreshTTL = -time.Minute
		expiredIssuer := NewTokenService(cfg)
		authService, _ := newTestAuthService(mockRepo)

		presented, err := expiredIssuer.IssueRefreshToken(7)
		assert.NoError(t, err)

		_, _, err = authService.RefreshAccessToken(presented)
		assert.ErrorIs(t, err, ErrRenewalRejected)
		mockRepo.AssertNotCalled(t, "GetUserByID")
	})

	t.Run("unknown user is rejected", func(t *testing.T) {
		mockRepo := new(mockUserRepo)
		authService, tokens := newTestAuthService(mockRepo)

		presented, err := tokens.IssueRefreshToken(404)
		assert.NoError(t, err)

		mockRepo.On("GetUserByID", 404).Return(nil, sql.ErrNoRows).Once()

		_, _, err = authService.RefreshAccessToken(presented)
		assert.ErrorIs(t, err, ErrRenewalRejected)
		mockRepo.AssertNotCalled(t, "RotateRefreshToken")
	})

	t.Run("stale token loses the conditional swap and is rejected", func(t *testing.T) {
		mockRepo := new(mockUserRepo)
		authService, tokens := newTestAuthService(mockRepo)

		presented, err := tokens.IssueRefreshToken(7)
		assert.NoError(t, err)

		mockRepo.On("GetUserByID", 7).Return(&model.User{ID: 7}, nil).Once()
		mockRepo.On("RotateRefreshToken", 7, presented, mock.AnythingOfType("string")).Return(false, nil).Once()

		_, _, err = authService.RefreshAccessToken(presented)
		assert.ErrorIs(t, err, ErrRenewalRejected)
	})
}

func TestAuthService_Logout(t *testing.T) {
	mockRepo := new(mockUserRepo)
	authService, _ := newTestAuthService(mockRepo)

	mockRepo.On("ClearRefreshToken", 5).Return(nil).Once()

	err := authService.Logout(5)
	assert.NoError(t, err)
	mockRepo.AssertExpectations(t)
}

func TestAuthService_RefreshCookie(t *testing.T) {
	mockRepo := new(mockUserRepo)
	tokens := NewTokenService(testTokenConfig())

	t.Run("development cookie", func(t *testing.T) {
		authService := NewAuthService(mockRepo, tokens, time.Hour, false)
		cookie := authService.NewRefreshCookie("value")

		assert.Equal(t, RefreshCookieName, cookie.Name)
		assert.Equal(t, "value", cookie.Value)
		assert.True(t, cookie.HttpOnly)
		assert.False(t, cookie.Secure)
		assert.Equal(t, http.SameSiteLaxMode, cookie.SameSite)
	})

	t.Run("production cookie is secure", func(t *testing.T) {
		authService := NewAuthService(mockRepo, tokens, time.Hour, true)
		assert.True(t, authService.NewRefreshCookie("value").Secure)
	})

	t.Run("cleared cookie overwrites with an empty value", func(t *testing.T) {
		authService := NewAuthService(mockRepo, tokens, time.Hour, false)
		cookie := authService.NewClearedRefreshCookie()

		assert.Empty(t, cookie.Value)
		assert.Negative(t, cookie.MaxAge)
	})
}
