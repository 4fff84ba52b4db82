package service

import (
	"context"

	"skip2love/internal/models"
	"skip2love/internal/observability"
	"skip2love/internal/repository"
)

// RatingService provides reputation business logic.
type RatingService struct {
	ratingRepo repository.RatingRepository
	userRepo   repository.UserRepository
}

// RateUserInput is the input for rating another user.
type RateUserInput struct {
	RaterID     uint
	RatedUserID uint
	IsPositive  bool
}

// NewRatingService returns a new RatingService.
func NewRatingService(ratingRepo repository.RatingRepository, userRepo repository.UserRepository) *RatingService {
	return &RatingService{ratingRepo: ratingRepo, userRepo: userRepo}
}

// RateUser records a thumbs up/down for another user. Rating the same user
// again overwrites the previous rating; the target's percentage is recomputed
// either way, while the rating count only grows on first-time ratings.
func (s *RatingService) RateUser(ctx context.Context, in RateUserInput) (*models.Rating, error) {
	if in.RaterID == in.RatedUserID {
		return nil, models.NewValidationError("Cannot rate yourself")
	}

	if _, err := s.userRepo.GetByID(ctx, in.RatedUserID); err != nil {
		return nil, err
	}

	rating, created, err := s.ratingRepo.Upsert(ctx, in.RaterID, in.RatedUserID, in.IsPositive)
	if err != nil {
		return nil, err
	}

	outcome := "overwrite"
	if created {
		outcome = "insert"
	}
	observability.RatingsSubmitted.WithLabelValues(outcome).Inc()

	return rating, nil
}

// GetRatings returns the ratings a user has received, newest first.
func (s *RatingService) GetRatings(ctx context.Context, ratedUserID uint) ([]*models.Rating, error) {
	if _, err := s.userRepo.GetByID(ctx, ratedUserID); err != nil {
		return nil, err
	}
	return s.ratingRepo.ListForUser(ctx, ratedUserID)
}
