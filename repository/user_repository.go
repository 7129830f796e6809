package repository

import (
	"database/sql"
	"errors"
	"go-cuts-api/logger"
	"go-cuts-api/model"

	"github.com/lib/pq"
)

var (
	// ErrDuplicateEmail and ErrDuplicateUsername map unique-constraint
	// violations to field-level signup errors.
	ErrDuplicateEmail    = errors.New("email already in use")
	ErrDuplicateUsername = errors.New("username already in use")
)

// IUserRepository defines the contract for account rows, including the
// single stored refresh token per user.
type IUserRepository interface {
	CreateUser(user *model.User) error
	GetUserByID(id int) (*model.User, error)
	GetUserByEmailOrUsername(emailOrUsername string) (*model.User, error)
	UpdateRefreshToken(userID int, token string) error
	RotateRefreshToken(userID int, presented, next string) (bool, error)
	ClearRefreshToken(userID int) error
	UpdateProfileImage(userID int, url string) error
}

type UserRepository struct {
	DB *sql.DB
}

func NewUserRepository(db *sql.DB) *UserRepository {
	return &UserRepository{DB: db}
}

func (r *UserRepository) CreateUser(user *model.User) error {
	query := `INSERT INTO users (username, email, password) VALUES ($1, $2, $3)
	          RETURNING id, created_at, updated_at`
	err := r.DB.QueryRow(query, user.Username, user.Email, user.Password).
		Scan(&user.ID, &user.CreatedAt, &user.UpdatedAt)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == "23505" {
			switch pqErr.Constraint {
			case "users_email_key":
				return ErrDuplicateEmail
			case "users_username_key":
				return ErrDuplicateUsername
			}
		}
		logger.Log.WithError(err).Error("Failed to execute create user query")
		return err
	}
	return nil
}

func (r *UserRepository) GetUserByID(id int) (*model.User, error) {
	user := &model.User{}
	query := `SELECT id, username, email, password, profile_image, refresh_token, created_at, updated_at
	          FROM users WHERE id = $1`
	err := r.DB.QueryRow(query, id).Scan(&user.ID, &user.Username, &user.Email, &user.Password,
		&user.ProfileImage, &user.RefreshToken, &user.CreatedAt, &user.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return user, nil
}

// GetUserByEmailOrUsername looks a user up by either identifier; the login
// form accepts both in one field.
func (r *UserRepository) GetUserByEmailOrUsername(emailOrUsername string) (*model.User, error) {
	user := &model.User{}
	query := `SELECT id, username, email, password, profile_image, refresh_token, created_at, updated_at
	          FROM users WHERE email = $1 OR username = $1`
	err := r.DB.QueryRow(query, emailOrUsername).Scan(&user.ID, &user.Username, &user.Email, &user.Password,
		&user.ProfileImage, &user.RefreshToken, &user.CreatedAt, &user.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return user, nil
}

// UpdateRefreshToken overwrites the stored refresh token unconditionally.
// Used on login, where any previously issued token is deliberately revoked.
func (r *UserRepository) UpdateRefreshToken(userID int, token string) error {
	query := `UPDATE users SET refresh_token = $1, updated_at = now() WHERE id = $2`
	_, err := r.DB.Exec(query, token, userID)
	if err != nil {
		logger.Log.WithError(err).WithField("user_id", userID).Error("Failed to update refresh token")
	}
	return err
}

// RotateRefreshToken atomically swaps the stored refresh token, but only if
// the presented value still matches. The conditional update is what makes
// renewal single-use: a stale token affects zero rows.
func (r *UserRepository) RotateRefreshToken(userID int, presented, next string) (bool, error) {
	query := `UPDATE users SET refresh_token = $1, updated_at = now()
	          WHERE id = $2 AND refresh_token = $3`
	result, err := r.DB.Exec(query, next, userID, presented)
	if err != nil {
		logger.Log.WithError(err).WithField("user_id", userID).Error("Failed to rotate refresh token")
		return false, err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return false, err
	}
	return affected > 0, nil
}

// ClearRefreshToken revokes the stored refresh token on logout by
// overwriting it with the empty marker.
func (r *UserRepository) ClearRefreshToken(userID int) error {
	return r.UpdateRefreshToken(userID, "")
}

func (r *UserRepository) UpdateProfileImage(userID int, url string) error {
	query := `UPDATE users SET profile_image = $1, updated_at = now() WHERE id = $2`
	_, err := r.DB.Exec(query, url, userID)
	if err != nil {
		logger.Log.WithError(err).WithField("user_id", userID).Error("Failed to update profile image")
	}
	return err
}
