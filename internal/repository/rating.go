package repository

import (
	"context"
	"math"

	"skip2love/internal/cache"
	"skip2love/internal/models"

	"gorm.io/gorm"
)

// RatingRepository defines persistence operations for user ratings.
type RatingRepository interface {
	// Upsert records a rating for the (rater, rated) pair, overwriting any
	// previous rating from the same rater, then recomputes the rated user's
	// aggregate score. Returns the stored rating and whether a new row was
	// created (false means an existing rating was overwritten).
	Upsert(ctx context.Context, raterID, ratedUserID uint, isPositive bool) (*models.Rating, bool, error)
	GetByPair(ctx context.Context, raterID, ratedUserID uint) (*models.Rating, error)
	ListForUser(ctx context.Context, ratedUserID uint) ([]*models.Rating, error)
}

type ratingRepository struct {
	db *gorm.DB
}

// NewRatingRepository returns a new RatingRepository implementation.
func NewRatingRepository(db *gorm.DB) RatingRepository {
	return &ratingRepository{db: db}
}

func (r *ratingRepository) Upsert(ctx context.Context, raterID, ratedUserID uint, isPositive bool) (*models.Rating, bool, error) {
	var rating models.Rating
	created := false

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existing models.Rating
		err := tx.Where("rater_id = ? AND rated_user_id = ?", raterID, ratedUserID).
			First(&existing).Error
		switch {
		case err == nil:
			existing.IsPositive = isPositive
			if err := tx.Model(&existing).Update("is_positive", isPositive).Error; err != nil {
				return err
			}
			rating = existing
		case err == gorm.ErrRecordNotFound:
			rating = models.Rating{
				RaterID:     raterID,
				RatedUserID: ratedUserID,
				IsPositive:  isPositive,
			}
			if err := tx.Create(&rating).Error; err != nil {
				return err
			}
			created = true
		default:
			return err
		}

		return recomputeUserRating(tx, ratedUserID)
	})
	if err != nil {
		return nil, false, models.NewInternalError(err)
	}
	// The transaction rewrote the rated user's aggregate columns; drop any
	// cached profile so reads pick up the new score immediately.
	cache.InvalidateUser(ctx, ratedUserID)
	return &rating, created, nil
}

// recomputeUserRating rewrites the rated user's cached rating percentage and
// count from the rating rows. Runs inside the caller's transaction so the
// aggregate never drifts from the rows it summarizes.
func recomputeUserRating(tx *gorm.DB, ratedUserID uint) error {
	var total, positive int64
	if err := tx.Model(&models.Rating{}).
		Where("rated_user_id = ?", ratedUserID).
		Count(&total).Error; err != nil {
		return err
	}
	if err := tx.Model(&models.Rating{}).
		Where("rated_user_id = ? AND is_positive = ?", ratedUserID, true).
		Count(&positive).Error; err != nil {
		return err
	}

	score := 0
	if total > 0 {
		score = int(math.Round(float64(positive) / float64(total) * 100))
	}

	return tx.Model(&models.User{}).
		Where("id = ?", ratedUserID).
		Updates(map[string]interface{}{
			"rating":       score,
			"rating_count": total,
		}).Error
}

func (r *ratingRepository) GetByPair(ctx context.Context, raterID, ratedUserID uint) (*models.Rating, error) {
	var rating models.Rating
	err := r.db.WithContext(ctx).
		Where("rater_id = ? AND rated_user_id = ?", raterID, ratedUserID).
		First(&rating).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, models.NewInternalError(err)
	}
	return &rating, nil
}

func (r *ratingRepository) ListForUser(ctx context.Context, ratedUserID uint) ([]*models.Rating, error) {
	var ratings []*models.Rating
	err := r.db.WithContext(ctx).
		Preload("Rater").
		Where("rated_user_id = ?", ratedUserID).
		Order("created_at DESC").
		Find(&ratings).Error
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	return ratings, nil
}
