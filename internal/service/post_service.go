package service

import (
	"context"

	"skip2love/internal/models"
	"skip2love/internal/repository"
	"skip2love/internal/validation"
)

// PostService provides listing business logic.
type PostService struct {
	postRepo repository.PostRepository
	userRepo repository.UserRepository
}

// CreatePostInput is the input for creating a listing.
type CreatePostInput struct {
	UserID      uint
	Title       string
	Description string
	City        string
	Images      []string
	Tags        []string
}

// UpdatePostInput is the input for editing a listing. Zero values leave the
// field unchanged; nil slices mean unchanged.
type UpdatePostInput struct {
	UserID      uint
	PostID      uint
	Title       string
	Description string
	City        string
	Images      []string
	Tags        []string
}

// NewPostService returns a new PostService.
func NewPostService(postRepo repository.PostRepository, userRepo repository.UserRepository) *PostService {
	return &PostService{postRepo: postRepo, userRepo: userRepo}
}

// CreatePost validates and persists a new listing. Premium placement follows
// the author's premium flag at creation time.
func (s *PostService) CreatePost(ctx context.Context, in CreatePostInput) (*models.Post, error) {
	if err := validation.ValidatePostTitle(in.Title); err != nil {
		return nil, models.NewValidationError(err.Error())
	}
	if err := validation.ValidatePostDescription(in.Description); err != nil {
		return nil, models.NewValidationError(err.Error())
	}
	if in.City == "" {
		return nil, models.NewValidationError("City is required")
	}

	author, err := s.userRepo.GetByID(ctx, in.UserID)
	if err != nil {
		return nil, err
	}

	post := &models.Post{
		UserID:      in.UserID,
		Title:       in.Title,
		Description: in.Description,
		City:        in.City,
		IsPremium:   author.IsPremium,
		Images:      in.Images,
		Tags:        in.Tags,
		IsActive:    true,
	}
	if err := s.postRepo.Create(ctx, post); err != nil {
		return nil, err
	}

	post.User = *author
	return post, nil
}

// GetPost returns a single listing. Every fetch bumps the view counter,
// the author's own reads included.
func (s *PostService) GetPost(ctx context.Context, postID, viewerID uint) (*models.Post, error) {
	post, err := s.postRepo.GetByID(ctx, postID, viewerID)
	if err != nil {
		return nil, err
	}

	if err := s.postRepo.IncrementViewCount(ctx, postID); err != nil {
		return nil, err
	}
	post.ViewCount++

	return post, nil
}

// ListPosts returns active listings matching the filters, premium first.
func (s *PostService) ListPosts(ctx context.Context, filters repository.PostFilters, viewerID uint) ([]*models.Post, error) {
	return s.postRepo.List(ctx, filters, viewerID)
}

// UpdatePost applies partial edits to a listing the caller owns.
func (s *PostService) UpdatePost(ctx context.Context, in UpdatePostInput) (*models.Post, error) {
	post, err := s.postRepo.GetByID(ctx, in.PostID, in.UserID)
	if err != nil {
		return nil, err
	}
	if post.UserID != in.UserID {
		return nil, models.NewForbiddenError("You can only edit your own posts")
	}

	if in.Title != "" {
		if err := validation.ValidatePostTitle(in.Title); err != nil {
			return nil, models.NewValidationError(err.Error())
		}
		post.Title = in.Title
	}
	if in.Description != "" {
		if err := validation.ValidatePostDescription(in.Description); err != nil {
			return nil, models.NewValidationError(err.Error())
		}
		post.Description = in.Description
	}
	if in.City != "" {
		post.City = in.City
	}
	if in.Images != nil {
		post.Images = in.Images
	}
	if in.Tags != nil {
		post.Tags = in.Tags
	}

	if err := s.postRepo.Update(ctx, post); err != nil {
		return nil, err
	}
	return post, nil
}

// DeletePost soft-deletes a listing the caller owns. The row stays behind so
// favorites and reports keep valid references.
func (s *PostService) DeletePost(ctx context.Context, postID, userID uint) error {
	post, err := s.postRepo.GetByID(ctx, postID, userID)
	if err != nil {
		return err
	}
	if post.UserID != userID {
		return models.NewForbiddenError("You can only delete your own posts")
	}

	return s.postRepo.SoftDelete(ctx, postID)
}
