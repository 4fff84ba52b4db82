package service

import (
	"context"

	"skip2love/internal/models"
	"skip2love/internal/observability"
	"skip2love/internal/repository"
)

// ModerationService provides block and abuse report business logic.
type ModerationService struct {
	blockRepo  repository.BlockRepository
	reportRepo repository.ReportRepository
	userRepo   repository.UserRepository
	postRepo   repository.PostRepository
}

// FileReportInput is the input for filing an abuse report. At least one of
// ReportedUserID and ReportedPostID must be set.
type FileReportInput struct {
	ReporterID     uint
	ReportedUserID *uint
	ReportedPostID *uint
	Reason         string
	Description    string
}

// NewModerationService returns a new ModerationService.
func NewModerationService(
	blockRepo repository.BlockRepository,
	reportRepo repository.ReportRepository,
	userRepo repository.UserRepository,
	postRepo repository.PostRepository,
) *ModerationService {
	return &ModerationService{
		blockRepo:  blockRepo,
		reportRepo: reportRepo,
		userRepo:   userRepo,
		postRepo:   postRepo,
	}
}

// BlockUser records a block against another user. Blocking an already
// blocked user succeeds without change.
func (s *ModerationService) BlockUser(ctx context.Context, blockerID, blockedUserID uint) error {
	if blockerID == blockedUserID {
		return models.NewValidationError("Cannot block yourself")
	}
	if _, err := s.userRepo.GetByID(ctx, blockedUserID); err != nil {
		return err
	}

	if err := s.blockRepo.Create(ctx, blockerID, blockedUserID); err != nil {
		return err
	}
	observability.BlocksCreated.Inc()
	return nil
}

// UnblockUser removes a previously created block.
func (s *ModerationService) UnblockUser(ctx context.Context, blockerID, blockedUserID uint) error {
	return s.blockRepo.Delete(ctx, blockerID, blockedUserID)
}

// ListBlocked returns the users the caller has blocked, newest first.
func (s *ModerationService) ListBlocked(ctx context.Context, blockerID uint) ([]*models.Block, error) {
	blocks, err := s.blockRepo.ListForUser(ctx, blockerID)
	if err != nil {
		return nil, err
	}
	for _, b := range blocks {
		if b.BlockedUser != nil {
			b.BlockedUser = b.BlockedUser.PublicProfile()
		}
	}
	return blocks, nil
}

// FileReport records an abuse report against a user and/or a post. Reports
// always start in the pending state.
func (s *ModerationService) FileReport(ctx context.Context, in FileReportInput) (*models.Report, error) {
	if in.ReportedUserID == nil && in.ReportedPostID == nil {
		return nil, models.NewValidationError("Report must target a user or a post")
	}
	if in.Reason == "" {
		return nil, models.NewValidationError("Reason is required")
	}

	if in.ReportedUserID != nil {
		if *in.ReportedUserID == in.ReporterID {
			return nil, models.NewValidationError("Cannot report yourself")
		}
		if _, err := s.userRepo.GetByID(ctx, *in.ReportedUserID); err != nil {
			return nil, err
		}
	}
	if in.ReportedPostID != nil {
		if _, err := s.postRepo.GetByID(ctx, *in.ReportedPostID, in.ReporterID); err != nil {
			return nil, err
		}
	}

	report := &models.Report{
		ReporterID:     in.ReporterID,
		ReportedUserID: in.ReportedUserID,
		ReportedPostID: in.ReportedPostID,
		Reason:         in.Reason,
		Description:    in.Description,
		Status:         models.ReportStatusPending,
	}
	if err := s.reportRepo.Create(ctx, report); err != nil {
		return nil, err
	}
	observability.ReportsFiled.Inc()

	return report, nil
}
