package service

import (
	"database/sql"
	"errors"
	"go-cuts-api/common"
	"go-cuts-api/model"
	"go-cuts-api/repository"
)

// ReviewService owns the one-review-per-(user, cut) rule and the pinned
// listing order.
type ReviewService struct {
	reviewRepo repository.IReviewRepository
	userRepo   repository.IUserRepository
}

func NewReviewService(reviewRepo repository.IReviewRepository, userRepo repository.IUserRepository) *ReviewService {
	return &ReviewService{reviewRepo: reviewRepo, userRepo: userRepo}
}

// CreateOrUpdate upserts the user's review for a cut: if one exists its
// contents are replaced, otherwise a new row is created.
func (s *ReviewService) CreateOrUpdate(userID int, input model.CreateOrUpdateCutReviewInput) (*model.CutReview, []common.FieldError, error) {
	if fieldErrors := common.ValidateInput(input); fieldErrors != nil {
		return nil, fieldErrors, nil
	}

	existing, err := s.reviewRepo.GetByUserAndCut(userID, input.CutID)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return nil, nil, err
	}

	if existing != nil {
		existing.Contents = input.Contents
		if err := s.reviewRepo.UpdateContents(existing); err != nil {
			return nil, nil, err
		}
		return existing, nil, nil
	}

	review := &model.CutReview{
		UserID:   userID,
		CutID:    input.CutID,
		Contents: input.Contents,
	}
	if err := s.reviewRepo.Create(review); err != nil {
		return nil, nil, err
	}
	return review, nil, nil
}

// Delete removes the review only if it belongs to the user; it reports
// whether anything was deleted.
func (s *ReviewService) Delete(userID, reviewID int) (bool, error) {
	return s.reviewRepo.DeleteByIDAndUser(reviewID, userID)
}

// ListForCut pages through a cut's reviews, newest first. When the viewer
// has reviewed the cut, their review is pinned to the front of the first
// page and counts against take.
func (s *ReviewService) ListForCut(viewerID, cutID, take, skip int) ([]*model.CutReview, error) {
	if take <= 0 {
		take = 2
	}

	var pinned *model.CutReview
	if viewerID > 0 && skip == 0 {
		own, err := s.reviewRepo.GetByUserAndCut(viewerID, cutID)
		if err != nil && !errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		pinned = own
	}

	excludeID := 0
	remaining := take
	if pinned != nil {
		excludeID = pinned.ID
		remaining = take - 1
	}

	var others []*model.CutReview
	if remaining > 0 {
		var err error
		others, err = s.reviewRepo.ListByCutID(cutID, remaining, skip, excludeID)
		if err != nil {
			return nil, err
		}
	}

	if pinned != nil {
		return append([]*model.CutReview{pinned}, others...), nil
	}
	return others, nil
}

// UserForReview resolves the author of a review.
func (s *ReviewService) UserForReview(review *model.CutReview) (*model.User, error) {
	return s.userRepo.GetUserByID(review.UserID)
}

// IsMine reports whether the review belongs to the viewer.
func (s *ReviewService) IsMine(review *model.CutReview, viewerID int) bool {
	return viewerID > 0 && review.UserID == viewerID
}
