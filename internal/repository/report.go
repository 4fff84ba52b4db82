package repository

import (
	"context"

	"skip2love/internal/models"

	"gorm.io/gorm"
)

// ReportRepository defines persistence operations for abuse reports.
// Reports are append-only from the API's point of view; moderation tooling
// updates Status out of band.
type ReportRepository interface {
	Create(ctx context.Context, report *models.Report) error
	ListByStatus(ctx context.Context, status models.ReportStatus) ([]*models.Report, error)
}

type reportRepository struct {
	db *gorm.DB
}

// NewReportRepository returns a new ReportRepository implementation.
func NewReportRepository(db *gorm.DB) ReportRepository {
	return &reportRepository{db: db}
}

func (r *reportRepository) Create(ctx context.Context, report *models.Report) error {
	if report.Status == "" {
		report.Status = models.ReportStatusPending
	}
	if err := r.db.WithContext(ctx).Create(report).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

func (r *reportRepository) ListByStatus(ctx context.Context, status models.ReportStatus) ([]*models.Report, error) {
	var reports []*models.Report
	err := r.db.WithContext(ctx).
		Where("status = ?", status).
		Order("created_at ASC").
		Find(&reports).Error
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	return reports, nil
}
