// Package repository implements the data access layer for the application.
package repository

import (
	"context"
	"errors"

	"skip2love/internal/models"

	"gorm.io/gorm"
)

// PostFilters narrows the post listing. Zero values mean "no filter".
type PostFilters struct {
	City      string
	IsPremium bool
	UserID    uint
}

// PostRepository defines the interface for post data operations
type PostRepository interface {
	Create(ctx context.Context, post *models.Post) error
	// GetByID returns the post with its owner embedded regardless of the
	// IsActive flag; soft-deleted posts stay reachable by direct ID.
	GetByID(ctx context.Context, id uint, currentUserID uint) (*models.Post, error)
	// List returns active posts only, premium first then newest.
	List(ctx context.Context, filters PostFilters, currentUserID uint) ([]*models.Post, error)
	Update(ctx context.Context, post *models.Post) error
	// SoftDelete flips IsActive to false; the row is kept.
	SoftDelete(ctx context.Context, id uint) error
	// IncrementViewCount bumps view_count with a single atomic UPDATE.
	IncrementViewCount(ctx context.Context, id uint) error
}

type postRepository struct {
	db *gorm.DB
}

// NewPostRepository creates a new post repository
func NewPostRepository(db *gorm.DB) PostRepository {
	return &postRepository{db: db}
}

func (r *postRepository) Create(ctx context.Context, post *models.Post) error {
	if err := r.db.WithContext(ctx).Create(post).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

func (r *postRepository) GetByID(ctx context.Context, id uint, currentUserID uint) (*models.Post, error) {
	var post models.Post
	err := r.applyFavoritedFlag(r.db.WithContext(ctx), currentUserID).
		Preload("User").
		First(&post, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("Post", id)
		}
		return nil, models.NewInternalError(err)
	}
	return &post, nil
}

func (r *postRepository) List(ctx context.Context, filters PostFilters, currentUserID uint) ([]*models.Post, error) {
	var posts []*models.Post
	query := r.applyFavoritedFlag(r.db.WithContext(ctx), currentUserID).
		Preload("User").
		Where("posts.is_active = ?", true)

	if filters.City != "" {
		query = query.Where("posts.city = ?", filters.City)
	}
	if filters.IsPremium {
		query = query.Where("posts.is_premium = ?", true)
	}
	if filters.UserID != 0 {
		query = query.Where("posts.user_id = ?", filters.UserID)
	}

	if err := query.
		Order("posts.is_premium DESC, posts.created_at DESC").
		Find(&posts).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return posts, nil
}

// applyFavoritedFlag adds the is_favorited subquery for the requesting user
// so listings carry the flag without a per-post lookup.
func (r *postRepository) applyFavoritedFlag(db *gorm.DB, currentUserID uint) *gorm.DB {
	if currentUserID != 0 {
		return db.Select(
			"posts.*, EXISTS(SELECT 1 FROM favorites WHERE favorites.post_id = posts.id AND favorites.user_id = ?) AS is_favorited",
			currentUserID,
		)
	}
	return db.Select("posts.*, ? AS is_favorited", false)
}

func (r *postRepository) Update(ctx context.Context, post *models.Post) error {
	if err := r.db.WithContext(ctx).Save(post).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

func (r *postRepository) SoftDelete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).
		Model(&models.Post{}).
		Where("id = ?", id).
		Update("is_active", false)
	if result.Error != nil {
		return models.NewInternalError(result.Error)
	}
	if result.RowsAffected == 0 {
		return models.NewNotFoundError("Post", id)
	}
	return nil
}

func (r *postRepository) IncrementViewCount(ctx context.Context, id uint) error {
	if err := r.db.WithContext(ctx).
		Model(&models.Post{}).
		Where("id = ?", id).
		Update("view_count", gorm.Expr("view_count + 1")).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}
