package service

import (
	"context"

	"skip2love/internal/models"
	"skip2love/internal/observability"
	"skip2love/internal/repository"
)

// FavoriteService provides bookmark business logic.
type FavoriteService struct {
	favoriteRepo repository.FavoriteRepository
	postRepo     repository.PostRepository
}

// NewFavoriteService returns a new FavoriteService.
func NewFavoriteService(favoriteRepo repository.FavoriteRepository, postRepo repository.PostRepository) *FavoriteService {
	return &FavoriteService{favoriteRepo: favoriteRepo, postRepo: postRepo}
}

// AddFavorite bookmarks a post for the user. Favoriting an already favorited
// post is a no-op, not an error, so the counter never double counts.
func (s *FavoriteService) AddFavorite(ctx context.Context, userID, postID uint) error {
	if _, err := s.postRepo.GetByID(ctx, postID, userID); err != nil {
		return err
	}

	added, err := s.favoriteRepo.Add(ctx, userID, postID)
	if err != nil {
		return err
	}
	if added {
		observability.FavoriteToggles.WithLabelValues("add").Inc()
	}
	return nil
}

// RemoveFavorite removes the bookmark. Removing a favorite that does not
// exist returns NotFound.
func (s *FavoriteService) RemoveFavorite(ctx context.Context, userID, postID uint) error {
	removed, err := s.favoriteRepo.Remove(ctx, userID, postID)
	if err != nil {
		return err
	}
	if !removed {
		return models.NewNotFoundError("favorite", postID)
	}
	observability.FavoriteToggles.WithLabelValues("remove").Inc()
	return nil
}

// ListFavorites returns the user's bookmarked posts, newest bookmark first.
// Soft-deleted posts stay listed; the client sees their inactive flag.
func (s *FavoriteService) ListFavorites(ctx context.Context, userID uint) ([]*models.Favorite, error) {
	favs, err := s.favoriteRepo.ListForUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	for _, f := range favs {
		if f.Post != nil {
			f.Post.IsFavorited = true
		}
	}
	return favs, nil
}
