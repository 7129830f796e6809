package repository

import (
	"database/sql"
	"go-cuts-api/model"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
)

func newMockDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db, mock
}

func userColumns() []string {
	return []string{"id", "username", "email", "password", "profile_image", "refresh_token", "created_at", "updated_at"}
}

func TestUserRepository_CreateUser(t *testing.T) {
	t.Run("success fills in the generated columns", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewUserRepository(db)

		now := time.Now()
		mock.ExpectQuery("INSERT INTO users").
			WithArgs("a", "a@b.com", "hashed").
			WillReturnRows(sqlmock.NewRows([]string{"id", "created_at", "updated_at"}).AddRow(1, now, now))

		user := &model.User{Username: "a", Email: "a@b.com", Password: "hashed"}
		err := repo.CreateUser(user)

		assert.NoError(t, err)
		assert.Equal(t, 1, user.ID)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("duplicate email constraint maps to the sentinel", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewUserRepository(db)

		mock.ExpectQuery("INSERT INTO users").
			WillReturnError(&pq.Error{Code: "23505", Constraint: "users_email_key"})

		err := repo.CreateUser(&model.User{Username: "a", Email: "a@b.com", Password: "hashed"})
		assert.ErrorIs(t, err, ErrDuplicateEmail)
	})

	t.Run("duplicate username constraint maps to the sentinel", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewUserRepository(db)

		mock.ExpectQuery("INSERT INTO users").
			WillReturnError(&pq.Error{Code: "23505", Constraint: "users_username_key"})

		err := repo.CreateUser(&model.User{Username: "a", Email: "a@b.com", Password: "hashed"})
		assert.ErrorIs(t, err, ErrDuplicateUsername)
	})
}

func TestUserRepository_GetUserByEmailOrUsername(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewUserRepository(db)

	now := time.Now()
	mock.ExpectQuery("SELECT (.+) FROM users WHERE email").
		WithArgs("a@b.com").
		WillReturnRows(sqlmock.NewRows(userColumns()).
			AddRow(1, "a", "a@b.com", "hashed", "", "", now, now))

	user, err := repo.GetUserByEmailOrUsername("a@b.com")
	assert.NoError(t, err)
	assert.Equal(t, 1, user.ID)
	assert.Equal(t, "a", user.Username)

	mock.ExpectQuery("SELECT (.+) FROM users WHERE email").
		WithArgs("nobody").
		WillReturnError(sql.ErrNoRows)

	_, err = repo.GetUserByEmailOrUsername("nobody")
	assert.ErrorIs(t, err, sql.ErrNoRows)
}

func TestUserRepository_RotateRefreshToken(t *testing.T) {
	t.Run("matching stored token swaps one row", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewUserRepository(db)

		mock.ExpectExec("UPDATE users SET refresh_token").
			WithArgs("next-token", 1, "presented-token").
			WillReturnResult(sqlmock.NewResult(0, 1))

		swapped, err := repo.RotateRefreshToken(1, "presented-token", "next-token")
		assert.NoError(t, err)
		assert.True(t, swapped)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("stale token affects zero rows", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewUserRepository(db)

		mock.ExpectExec("UPDATE users SET refresh_token").
			WithArgs("next-token", 1, "stale-token").
			WillReturnResult(sqlmock.NewResult(0, 0))

		swapped, err := repo.RotateRefreshToken(1, "stale-token", "next-token")
		assert.NoError(t, err)
		assert.False(t, swapped)
	})
}

func TestUserRepository_ClearRefreshToken(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewUserRepository(db)

	mock.ExpectExec("UPDATE users SET refresh_token").
		WithArgs("", 1).
		WillReturnResult(sqlmock.NewResult(0, 1))

	assert.NoError(t, repo.ClearRefreshToken(1))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_UpdateProfileImage(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewUserRepository(db)

	mock.ExpectExec("UPDATE users SET profile_image").
		WithArgs("https://bucket.s3.region.amazonaws.com/profile-images/x.png", 1).
		WillReturnResult(sqlmock.NewResult(0, 1))

	assert.NoError(t, repo.UpdateProfileImage(1, "https://bucket.s3.region.amazonaws.com/profile-images/x.png"))
	assert.NoError(t, mock.ExpectationsWereMet())
}
