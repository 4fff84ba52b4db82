package server

import (
	"skip2love/internal/models"
	"skip2love/internal/service"

	"github.com/gofiber/fiber/v2"
)

// RateUser handles POST /api/ratings
// Rating the same user again overwrites the previous rating in place.
func (s *Server) RateUser(c *fiber.Ctx) error {
	var req struct {
		RatedUserID uint  `json:"rated_user_id"`
		IsPositive  *bool `json:"is_positive"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}
	if req.RatedUserID == 0 || req.IsPositive == nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("rated_user_id and is_positive are required"))
	}

	rating, err := s.ratingService.RateUser(c.Context(), service.RateUserInput{
		RaterID:     currentUserID(c),
		RatedUserID: req.RatedUserID,
		IsPositive:  *req.IsPositive,
	})
	if err != nil {
		return models.RespondWithAppError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(rating)
}
