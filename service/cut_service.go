package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"go-cuts-api/data"
	"go-cuts-api/logger"
	"go-cuts-api/model"
	"go-cuts-api/repository"
	"strconv"
	"time"
)

const voteCountCacheTTL = 10 * time.Minute

// CutService serves cuts from the static catalog and owns the vote toggle
// plus the cached per-cut vote count.
type CutService struct {
	voteRepo repository.IVoteRepository
	cache    ICacheClient
}

func NewCutService(voteRepo repository.IVoteRepository, cache ICacheClient) *CutService {
	return &CutService{voteRepo: voteRepo, cache: cache}
}

// Cuts returns every cut of a film.
func (s *CutService) Cuts(filmID int) []*model.Cut {
	cuts := []*model.Cut{}
	for _, cut := range data.Cuts {
		if cut.FilmID == filmID {
			cuts = append(cuts, cut)
		}
	}
	return cuts
}

// Cut returns a single cut by id, or nil.
func (s *CutService) Cut(cutID int) *model.Cut {
	for _, cut := range data.Cuts {
		if cut.ID == cutID {
			return cut
		}
	}
	return nil
}

// FilmForCut resolves the parent film of a cut.
func (s *CutService) FilmForCut(cut *model.Cut) *model.Film {
	for _, film := range data.Films {
		if film.ID == cut.FilmID {
			return film
		}
	}
	return nil
}

// Vote toggles the (user, cut) like: an existing vote is removed, a missing
// one is created. The cut's cached vote count is invalidated either way.
func (s *CutService) Vote(userID, cutID int) (bool, error) {
	if s.Cut(cutID) == nil {
		return false, nil
	}

	_, err := s.voteRepo.GetVote(userID, cutID)
	switch {
	case err == nil:
		if err := s.voteRepo.DeleteVote(userID, cutID); err != nil {
			return false, err
		}
	case errors.Is(err, sql.ErrNoRows):
		if err := s.voteRepo.CreateVote(&model.CutVote{UserID: userID, CutID: cutID}); err != nil {
			return false, err
		}
	default:
		return false, err
	}

	s.cache.Del(context.Background(), voteCountKey(cutID))
	return true, nil
}

// VotesCount returns the number of votes on a cut, cache-aside: Redis first,
// then the database, storing the fresh count for subsequent requests.
func (s *CutService) VotesCount(cutID int) (int, error) {
	ctx := context.Background()
	key := voteCountKey(cutID)

	if cached, err := s.cache.Get(ctx, key).Result(); err == nil {
		if count, convErr := strconv.Atoi(cached); convErr == nil {
			return count, nil
		}
	}

	count, err := s.voteRepo.CountByCutID(cutID)
	if err != nil {
		return 0, err
	}

	if err := s.cache.Set(ctx, key, count, voteCountCacheTTL).Err(); err != nil {
		logger.Log.WithError(err).WithField("cut_id", cutID).Warn("Failed to cache vote count")
	}
	return count, nil
}

// IsVoted reports whether the given user has an active vote on the cut.
func (s *CutService) IsVoted(userID, cutID int) (bool, error) {
	_, err := s.voteRepo.GetVote(userID, cutID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

func voteCountKey(cutID int) string {
	return fmt.Sprintf("cut:votes:%d", cutID)
}
