package server

import (
	"skip2love/internal/models"
	"skip2love/internal/service"

	"github.com/gofiber/fiber/v2"
)

// GetUserProfile handles GET /api/users/:id
// Authentication is optional; when the viewer and target have a block in
// either direction the profile comes back 403.
func (s *Server) GetUserProfile(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}
	viewerID, _ := s.optionalUserID(c)

	user, svcErr := s.userService.GetProfile(c.Context(), viewerID, id)
	if svcErr != nil {
		return models.RespondWithAppError(c, svcErr)
	}
	return c.JSON(user)
}

// UpdateUserProfile handles PUT /api/users/:id. Users can only edit their
// own profile; credentials are not updatable through this endpoint.
func (s *Server) UpdateUserProfile(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}
	if id != currentUserID(c) {
		return models.RespondWithError(c, fiber.StatusForbidden,
			models.NewForbiddenError("You can only edit your own profile"))
	}

	var req struct {
		FullName    string   `json:"full_name"`
		Age         int      `json:"age"`
		City        string   `json:"city"`
		Bio         string   `json:"bio"`
		Phone       string   `json:"phone"`
		Avatar      string   `json:"avatar"`
		Images      []string `json:"images"`
		Preferences []string `json:"preferences"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	user, svcErr := s.userService.UpdateProfile(c.Context(), service.UpdateProfileInput{
		UserID:      id,
		FullName:    req.FullName,
		Age:         req.Age,
		City:        req.City,
		Bio:         req.Bio,
		Phone:       req.Phone,
		Avatar:      req.Avatar,
		Images:      req.Images,
		Preferences: req.Preferences,
	})
	if svcErr != nil {
		return models.RespondWithAppError(c, svcErr)
	}
	return c.JSON(user)
}

// GetUserRatings handles GET /api/users/:id/ratings
func (s *Server) GetUserRatings(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	ratings, svcErr := s.ratingService.GetRatings(c.Context(), id)
	if svcErr != nil {
		return models.RespondWithAppError(c, svcErr)
	}
	return c.JSON(ratings)
}
