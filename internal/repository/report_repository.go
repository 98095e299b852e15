package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"taskcherry/internal/model"
)

type ReportRepository struct {
	db *gorm.DB
}

type ReportRepositoryInterface interface {
	Create(ctx context.Context, report *model.Report) error
	GetByID(ctx context.Context, id uuid.UUID) (*model.Report, error)
	GetOwned(ctx context.Context, ownerID uuid.UUID) ([]model.Report, error)
	GetByBoardID(ctx context.Context, boardID uuid.UUID) ([]model.Report, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

var _ ReportRepositoryInterface = (*ReportRepository)(nil)

func NewReportRepository(db *gorm.DB) *ReportRepository {
	return &ReportRepository{db: db}
}

// Create persists a report. Reports are write-once: there is deliberately
// no Update method on this repository.
func (r *ReportRepository) Create(ctx context.Context, report *model.Report) error {
	return r.db.WithContext(ctx).Create(report).Error
}

func (r *ReportRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Report, error) {
	var report model.Report
	result := r.db.WithContext(ctx).First(&report, "id = ?", id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrReportNotFound
		}
		return nil, result.Error
	}
	return &report, nil
}

// GetOwned returns every report over boards the user owns, newest first.
func (r *ReportRepository) GetOwned(ctx context.Context, ownerID uuid.UUID) ([]model.Report, error) {
	var reports []model.Report
	err := r.db.WithContext(ctx).
		Joins("JOIN boards ON boards.id = reports.board_id").
		Where("boards.owner_id = ?", ownerID).
		Order("reports.created_at DESC").
		Find(&reports).Error
	return reports, err
}

func (r *ReportRepository) GetByBoardID(ctx context.Context, boardID uuid.UUID) ([]model.Report, error) {
	var reports []model.Report
	err := r.db.WithContext(ctx).
		Where("board_id = ?", boardID).
		Order("created_at DESC").
		Find(&reports).Error
	return reports, err
}

func (r *ReportRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&model.Report{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrReportNotFound
	}
	return nil
}
