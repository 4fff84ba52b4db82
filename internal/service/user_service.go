// Package service provides application business logic (users, posts, messages, etc.).
package service

import (
	"context"

	"skip2love/internal/models"
	"skip2love/internal/repository"
)

// UserService provides profile business logic.
type UserService struct {
	userRepo  repository.UserRepository
	blockRepo repository.BlockRepository
}

// UpdateProfileInput is the input for updating the caller's own profile.
// Zero values mean "leave unchanged" for scalar fields; nil slices mean
// unchanged, empty slices clear the field.
type UpdateProfileInput struct {
	UserID      uint
	FullName    string
	Age         int
	City        string
	Bio         string
	Phone       string
	Avatar      string
	Images      []string
	Preferences []string
}

// NewUserService returns a new UserService.
func NewUserService(userRepo repository.UserRepository, blockRepo repository.BlockRepository) *UserService {
	return &UserService{userRepo: userRepo, blockRepo: blockRepo}
}

// GetProfile returns another user's public profile. When a block exists in
// either direction between viewer and target the profile is withheld.
func (s *UserService) GetProfile(ctx context.Context, viewerID, targetID uint) (*models.User, error) {
	user, err := s.userRepo.GetByID(ctx, targetID)
	if err != nil {
		return nil, err
	}

	if viewerID != 0 && viewerID != targetID {
		blocked, err := s.blockRepo.IsBlockedEither(ctx, viewerID, targetID)
		if err != nil {
			return nil, err
		}
		if blocked {
			return nil, models.NewForbiddenError("Profile is not available")
		}
	}

	if viewerID == targetID {
		return user, nil
	}
	return user.PublicProfile(), nil
}

// GetMe returns the caller's own full record.
func (s *UserService) GetMe(ctx context.Context, userID uint) (*models.User, error) {
	return s.userRepo.GetByID(ctx, userID)
}

// UpdateProfile applies partial updates to the caller's profile. Username,
// email and password are not updatable through this path.
func (s *UserService) UpdateProfile(ctx context.Context, in UpdateProfileInput) (*models.User, error) {
	user, err := s.userRepo.GetByID(ctx, in.UserID)
	if err != nil {
		return nil, err
	}

	const maxBioLen = 1000
	const minAge = 18
	const maxAge = 120

	if in.FullName != "" {
		user.FullName = in.FullName
	}
	if in.Age != 0 {
		if in.Age < minAge || in.Age > maxAge {
			return nil, models.NewValidationError("Age must be between 18 and 120")
		}
		user.Age = in.Age
	}
	if in.City != "" {
		user.City = in.City
	}
	if in.Bio != "" {
		if len(in.Bio) > maxBioLen {
			return nil, models.NewValidationError("Bio too long (max 1000 characters)")
		}
		user.Bio = in.Bio
	}
	if in.Phone != "" {
		user.Phone = in.Phone
	}
	if in.Avatar != "" {
		user.Avatar = in.Avatar
	}
	if in.Images != nil {
		user.Images = in.Images
	}
	if in.Preferences != nil {
		user.Preferences = in.Preferences
	}

	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}

	return user, nil
}
