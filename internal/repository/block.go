package repository

import (
	"context"

	"skip2love/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// BlockRepository defines persistence operations for user blocks.
type BlockRepository interface {
	// Create records a block. Idempotent: blocking an already blocked user
	// succeeds without inserting a second row.
	Create(ctx context.Context, blockerID, blockedUserID uint) error
	// Delete removes the block. Returns NotFound when no such block exists.
	Delete(ctx context.Context, blockerID, blockedUserID uint) error
	// ListForUser returns the users blocked by blockerID, newest first.
	ListForUser(ctx context.Context, blockerID uint) ([]*models.Block, error)
	// IsBlockedEither reports whether a block exists in either direction
	// between the two users.
	IsBlockedEither(ctx context.Context, userID, otherUserID uint) (bool, error)
}

type blockRepository struct {
	db *gorm.DB
}

// NewBlockRepository returns a new BlockRepository implementation.
func NewBlockRepository(db *gorm.DB) BlockRepository {
	return &blockRepository{db: db}
}

func (r *blockRepository) Create(ctx context.Context, blockerID, blockedUserID uint) error {
	block := models.Block{BlockerID: blockerID, BlockedUserID: blockedUserID}
	err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&block).Error
	if err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

func (r *blockRepository) Delete(ctx context.Context, blockerID, blockedUserID uint) error {
	res := r.db.WithContext(ctx).
		Where("blocker_id = ? AND blocked_user_id = ?", blockerID, blockedUserID).
		Delete(&models.Block{})
	if res.Error != nil {
		return models.NewInternalError(res.Error)
	}
	if res.RowsAffected == 0 {
		return models.NewNotFoundError("block", blockedUserID)
	}
	return nil
}

func (r *blockRepository) ListForUser(ctx context.Context, blockerID uint) ([]*models.Block, error) {
	var blocks []*models.Block
	err := r.db.WithContext(ctx).
		Preload("BlockedUser").
		Where("blocker_id = ?", blockerID).
		Order("created_at DESC, id DESC").
		Find(&blocks).Error
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	return blocks, nil
}

func (r *blockRepository) IsBlockedEither(ctx context.Context, userID, otherUserID uint) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.Block{}).
		Where(
			"(blocker_id = ? AND blocked_user_id = ?) OR (blocker_id = ? AND blocked_user_id = ?)",
			userID, otherUserID, otherUserID, userID,
		).
		Count(&count).Error
	if err != nil {
		return false, models.NewInternalError(err)
	}
	return count > 0, nil
}
