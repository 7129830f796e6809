package repository

import (
	"database/sql"
	"go-cuts-api/logger"
	"go-cuts-api/model"

	"github.com/sirupsen/logrus"
)

// IVoteRepository defines the contract for cut vote rows.
type IVoteRepository interface {
	GetVote(userID, cutID int) (*model.CutVote, error)
	CreateVote(vote *model.CutVote) error
	DeleteVote(userID, cutID int) error
	CountByCutID(cutID int) (int, error)
}

type VoteRepository struct {
	DB *sql.DB
}

func NewVoteRepository(db *sql.DB) *VoteRepository {
	return &VoteRepository{DB: db}
}

// GetVote returns the vote row for (user, cut), or sql.ErrNoRows.
func (r *VoteRepository) GetVote(userID, cutID int) (*model.CutVote, error) {
	vote := &model.CutVote{}
	query := `SELECT user_id, cut_id FROM cut_votes WHERE user_id = $1 AND cut_id = $2`
	err := r.DB.QueryRow(query, userID, cutID).Scan(&vote.UserID, &vote.CutID)
	if err != nil {
		return nil, err
	}
	return vote, nil
}

func (r *VoteRepository) CreateVote(vote *model.CutVote) error {
	query := `INSERT INTO cut_votes (user_id, cut_id) VALUES ($1, $2)`
	_, err := r.DB.Exec(query, vote.UserID, vote.CutID)
	if err != nil {
		logger.Log.WithError(err).WithFields(logrus.Fields{
			"user_id": vote.UserID,
			"cut_id":  vote.CutID,
		}).Error("Failed to execute create vote query")
	}
	return err
}

func (r *VoteRepository) DeleteVote(userID, cutID int) error {
	query := `DELETE FROM cut_votes WHERE user_id = $1 AND cut_id = $2`
	_, err := r.DB.Exec(query, userID, cutID)
	if err != nil {
		logger.Log.WithError(err).WithFields(logrus.Fields{
			"user_id": userID,
			"cut_id":  cutID,
		}).Error("Failed to execute delete vote query")
	}
	return err
}

func (r *VoteRepository) CountByCutID(cutID int) (int, error) {
	var count int
	query := `SELECT COUNT(*) FROM cut_votes WHERE cut_id = $1`
	err := r.DB.QueryRow(query, cutID).Scan(&count)
	if err != nil {
		logger.Log.WithError(err).WithField("cut_id", cutID).Error("Failed to count votes")
		return 0, err
	}
	return count, nil
}
