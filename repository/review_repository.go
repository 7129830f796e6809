package repository

import (
	"database/sql"
	"go-cuts-api/logger"
	"go-cuts-api/model"
)

// IReviewRepository defines the contract for cut review rows.
type IReviewRepository interface {
	GetByUserAndCut(userID, cutID int) (*model.CutReview, error)
	Create(review *model.CutReview) error
	UpdateContents(review *model.CutReview) error
	DeleteByIDAndUser(id, userID int) (bool, error)
	ListByCutID(cutID, take, skip, excludeID int) ([]*model.CutReview, error)
}

type ReviewRepository struct {
	DB *sql.DB
}

func NewReviewRepository(db *sql.DB) *ReviewRepository {
	return &ReviewRepository{DB: db}
}

// GetByUserAndCut returns the user's review for a cut, or sql.ErrNoRows.
// The unique (user_id, cut_id) constraint guarantees at most one row.
func (r *ReviewRepository) GetByUserAndCut(userID, cutID int) (*model.CutReview, error) {
	review := &model.CutReview{}
	query := `SELECT id, user_id, cut_id, contents, created_at, updated_at
	          FROM cut_reviews WHERE user_id = $1 AND cut_id = $2`
	err := r.DB.QueryRow(query, userID, cutID).Scan(&review.ID, &review.UserID, &review.CutID,
		&review.Contents, &review.CreatedAt, &review.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return review, nil
}

func (r *ReviewRepository) Create(review *model.CutReview) error {
	query := `INSERT INTO cut_reviews (user_id, cut_id, contents) VALUES ($1, $2, $3)
	          RETURNING id, created_at, updated_at`
	err := r.DB.QueryRow(query, review.UserID, review.CutID, review.Contents).
		Scan(&review.ID, &review.CreatedAt, &review.UpdatedAt)
	if err != nil {
		logger.Log.WithError(err).Error("Failed to execute create review query")
	}
	return err
}

func (r *ReviewRepository) UpdateContents(review *model.CutReview) error {
	query := `UPDATE cut_reviews SET contents = $1, updated_at = now() WHERE id = $2
	          RETURNING updated_at`
	err := r.DB.QueryRow(query, review.Contents, review.ID).Scan(&review.UpdatedAt)
	if err != nil {
		logger.Log.WithError(err).WithField("review_id", review.ID).Error("Failed to execute update review query")
	}
	return err
}

// DeleteByIDAndUser removes a review only when it belongs to the given user,
// and reports whether a row was actually deleted.
func (r *ReviewRepository) DeleteByIDAndUser(id, userID int) (bool, error) {
	query := `DELETE FROM cut_reviews WHERE id = $1 AND user_id = $2`
	result, err := r.DB.Exec(query, id, userID)
	if err != nil {
		logger.Log.WithError(err).WithField("review_id", id).Error("Failed to execute delete review query")
		return false, err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return false, err
	}
	return affected > 0, nil
}

// ListByCutID pages through a cut's reviews, newest first. A positive
// excludeID skips that row so a pinned review is not returned twice.
func (r *ReviewRepository) ListByCutID(cutID, take, skip, excludeID int) ([]*model.CutReview, error) {
	query := `SELECT id, user_id, cut_id, contents, created_at, updated_at
	          FROM cut_reviews WHERE cut_id = $1 AND id <> $2
	          ORDER BY created_at DESC LIMIT $3 OFFSET $4`
	rows, err := r.DB.Query(query, cutID, excludeID, take, skip)
	if err != nil {
		logger.Log.WithError(err).WithField("cut_id", cutID).Error("Failed to execute list reviews query")
		return nil, err
	}
	defer rows.Close()

	reviews := []*model.CutReview{}
	for rows.Next() {
		review := &model.CutReview{}
		if err := rows.Scan(&review.ID, &review.UserID, &review.CutID,
			&review.Contents, &review.CreatedAt, &review.UpdatedAt); err != nil {
			return nil, err
		}
		reviews = append(reviews, review)
	}
	return reviews, rows.Err()
}
