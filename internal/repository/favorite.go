package repository

import (
	"context"

	"skip2love/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// FavoriteRepository defines persistence operations for post bookmarks.
type FavoriteRepository interface {
	// Add bookmarks a post for the user, bumping the post's favorite
	// counter in the same transaction. Returns false without error when
	// the favorite already existed.
	Add(ctx context.Context, userID, postID uint) (bool, error)
	// Remove deletes the bookmark and decrements the counter in the same
	// transaction. Returns false when there was nothing to delete.
	Remove(ctx context.Context, userID, postID uint) (bool, error)
	Exists(ctx context.Context, userID, postID uint) (bool, error)
	// ListForUser returns the user's favorites with their posts and post
	// owners preloaded, newest favorite first.
	ListForUser(ctx context.Context, userID uint) ([]*models.Favorite, error)
}

type favoriteRepository struct {
	db *gorm.DB
}

// NewFavoriteRepository returns a new FavoriteRepository implementation.
func NewFavoriteRepository(db *gorm.DB) FavoriteRepository {
	return &favoriteRepository{db: db}
}

func (r *favoriteRepository) Add(ctx context.Context, userID, postID uint) (bool, error) {
	added := false
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		fav := models.Favorite{UserID: userID, PostID: postID}
		res := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&fav)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return nil
		}
		added = true
		return tx.Model(&models.Post{}).
			Where("id = ?", postID).
			UpdateColumn("favorite_count", gorm.Expr("favorite_count + 1")).Error
	})
	if err != nil {
		return false, models.NewInternalError(err)
	}
	return added, nil
}

func (r *favoriteRepository) Remove(ctx context.Context, userID, postID uint) (bool, error) {
	removed := false
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Where("user_id = ? AND post_id = ?", userID, postID).
			Delete(&models.Favorite{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return nil
		}
		removed = true
		return tx.Model(&models.Post{}).
			Where("id = ? AND favorite_count > 0", postID).
			UpdateColumn("favorite_count", gorm.Expr("favorite_count - 1")).Error
	})
	if err != nil {
		return false, models.NewInternalError(err)
	}
	return removed, nil
}

func (r *favoriteRepository) Exists(ctx context.Context, userID, postID uint) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.Favorite{}).
		Where("user_id = ? AND post_id = ?", userID, postID).
		Count(&count).Error
	if err != nil {
		return false, models.NewInternalError(err)
	}
	return count > 0, nil
}

func (r *favoriteRepository) ListForUser(ctx context.Context, userID uint) ([]*models.Favorite, error) {
	var favs []*models.Favorite
	err := r.db.WithContext(ctx).
		Preload("Post").
		Preload("Post.User").
		Where("user_id = ?", userID).
		Order("created_at DESC, id DESC").
		Find(&favs).Error
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	return favs, nil
}
