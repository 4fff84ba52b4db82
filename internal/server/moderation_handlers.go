package server

import (
	"skip2love/internal/models"
	"skip2love/internal/service"

	"github.com/gofiber/fiber/v2"
)

// CreateReport handles POST /api/reports
func (s *Server) CreateReport(c *fiber.Ctx) error {
	var req struct {
		ReportedUserID *uint  `json:"reported_user_id"`
		ReportedPostID *uint  `json:"reported_post_id"`
		Reason         string `json:"reason"`
		Description    string `json:"description"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	report, err := s.moderationService.FileReport(c.Context(), service.FileReportInput{
		ReporterID:     currentUserID(c),
		ReportedUserID: req.ReportedUserID,
		ReportedPostID: req.ReportedPostID,
		Reason:         req.Reason,
		Description:    req.Description,
	})
	if err != nil {
		return models.RespondWithAppError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(report)
}

// GetBlocks handles GET /api/blocks
func (s *Server) GetBlocks(c *fiber.Ctx) error {
	blocks, err := s.moderationService.ListBlocked(c.Context(), currentUserID(c))
	if err != nil {
		return models.RespondWithAppError(c, err)
	}
	return c.JSON(blocks)
}

// BlockUser handles POST /api/blocks
// Blocking an already blocked user succeeds without change.
func (s *Server) BlockUser(c *fiber.Ctx) error {
	var req struct {
		BlockedUserID uint `json:"blocked_user_id"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}
	if req.BlockedUserID == 0 {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("blocked_user_id is required"))
	}

	if err := s.moderationService.BlockUser(c.Context(), currentUserID(c), req.BlockedUserID); err != nil {
		return models.RespondWithAppError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "User blocked",
	})
}

// UnblockUser handles DELETE /api/blocks/:userId
func (s *Server) UnblockUser(c *fiber.Ctx) error {
	userID, err := s.parseID(c, "userId")
	if err != nil {
		return nil
	}

	if svcErr := s.moderationService.UnblockUser(c.Context(), currentUserID(c), userID); svcErr != nil {
		return models.RespondWithAppError(c, svcErr)
	}
	return c.JSON(fiber.Map{
		"message": "User unblocked",
	})
}
