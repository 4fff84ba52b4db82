package repository

import (
	"context"
	"testing"

	"skip2love/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBlockRepository_IsBlockedEither(t *testing.T) {
	db := setupTestDB(t)
	repo := NewBlockRepository(db)
	ctx := context.Background()

	alice := createTestUser(t, db, "alice")
	bob := createTestUser(t, db, "bob")
	carol := createTestUser(t, db, "carol")

	require.NoError(t, repo.Create(ctx, alice.ID, bob.ID))

	// The guard is bidirectional regardless of who created the block.
	blocked, err := repo.IsBlockedEither(ctx, alice.ID, bob.ID)
	require.NoError(t, err)
	assert.True(t, blocked)

	blocked, err = repo.IsBlockedEither(ctx, bob.ID, alice.ID)
	require.NoError(t, err)
	assert.True(t, blocked)

	blocked, err = repo.IsBlockedEither(ctx, alice.ID, carol.ID)
	require.NoError(t, err)
	assert.False(t, blocked)
}

func TestBlockRepository_CreateIdempotent(t *testing.T) {
	db := setupTestDB(t)
	repo := NewBlockRepository(db)
	ctx := context.Background()

	alice := createTestUser(t, db, "alice")
	bob := createTestUser(t, db, "bob")

	require.NoError(t, repo.Create(ctx, alice.ID, bob.ID))
	require.NoError(t, repo.Create(ctx, alice.ID, bob.ID))

	var count int64
	require.NoError(t, db.Model(&models.Block{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestBlockRepository_Delete(t *testing.T) {
	db := setupTestDB(t)
	repo := NewBlockRepository(db)
	ctx := context.Background()

	alice := createTestUser(t, db, "alice")
	bob := createTestUser(t, db, "bob")

	err := repo.Delete(ctx, alice.ID, bob.ID)
	var appErr *models.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "NOT_FOUND", appErr.Code)

	require.NoError(t, repo.Create(ctx, alice.ID, bob.ID))
	require.NoError(t, repo.Delete(ctx, alice.ID, bob.ID))

	blocked, err := repo.IsBlockedEither(ctx, alice.ID, bob.ID)
	require.NoError(t, err)
	assert.False(t, blocked)
}

func TestBlockRepository_ListForUser(t *testing.T) {
	db := setupTestDB(t)
	repo := NewBlockRepository(db)
	ctx := context.Background()

	alice := createTestUser(t, db, "alice")
	bob := createTestUser(t, db, "bob")
	carol := createTestUser(t, db, "carol")

	require.NoError(t, repo.Create(ctx, alice.ID, bob.ID))
	require.NoError(t, repo.Create(ctx, alice.ID, carol.ID))
	require.NoError(t, repo.Create(ctx, bob.ID, alice.ID))

	blocks, err := repo.ListForUser(ctx, alice.ID)
	require.NoError(t, err)
	require.Len(t, blocks, 2)
	require.NotNil(t, blocks[0].BlockedUser)
}
