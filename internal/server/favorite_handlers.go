package server

import (
	"skip2love/internal/models"

	"github.com/gofiber/fiber/v2"
)

// GetFavorites handles GET /api/favorites
func (s *Server) GetFavorites(c *fiber.Ctx) error {
	favs, err := s.favoriteService.ListFavorites(c.Context(), currentUserID(c))
	if err != nil {
		return models.RespondWithAppError(c, err)
	}
	return c.JSON(favs)
}

// AddFavorite handles POST /api/favorites
// Favoriting an already favorited post is a no-op, not an error.
func (s *Server) AddFavorite(c *fiber.Ctx) error {
	var req struct {
		PostID uint `json:"post_id"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}
	if req.PostID == 0 {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("post_id is required"))
	}

	if err := s.favoriteService.AddFavorite(c.Context(), currentUserID(c), req.PostID); err != nil {
		return models.RespondWithAppError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Post favorited",
	})
}

// RemoveFavorite handles DELETE /api/favorites/:postId
func (s *Server) RemoveFavorite(c *fiber.Ctx) error {
	postID, err := s.parseID(c, "postId")
	if err != nil {
		return nil
	}

	if svcErr := s.favoriteService.RemoveFavorite(c.Context(), currentUserID(c), postID); svcErr != nil {
		return models.RespondWithAppError(c, svcErr)
	}
	return c.JSON(fiber.Map{
		"message": "Favorite removed",
	})
}
