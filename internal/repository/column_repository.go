package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"taskcherry/internal/model"
)

type ColumnRepository struct {
	db *gorm.DB
}

type ColumnRepositoryInterface interface {
	Create(ctx context.Context, column *model.Column) error
	GetByID(ctx context.Context, id uuid.UUID) (*model.Column, error)
	GetByBoardID(ctx context.Context, boardID uuid.UUID) ([]model.Column, error)
	GetMaxOrder(ctx context.Context, boardID uuid.UUID) (int, error)
	Update(ctx context.Context, column *model.Column) error
	Reorder(ctx context.Context, updates []OrderUpdate) error
	Delete(ctx context.Context, id uuid.UUID) error
}

var _ ColumnRepositoryInterface = (*ColumnRepository)(nil)

func NewColumnRepository(db *gorm.DB) *ColumnRepository {
	return &ColumnRepository{db: db}
}

func (r *ColumnRepository) Create(ctx context.Context, column *model.Column) error {
	return r.db.WithContext(ctx).Create(column).Error
}

func (r *ColumnRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Column, error) {
	var column model.Column
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&column).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &column, nil
}

func (r *ColumnRepository) GetByBoardID(ctx context.Context, boardID uuid.UUID) ([]model.Column, error) {
	var columns []model.Column
	err := r.db.WithContext(ctx).Where("board_id = ?", boardID).Order("\"order\"").Find(&columns).Error
	return columns, err
}

func (r *ColumnRepository) GetMaxOrder(ctx context.Context, boardID uuid.UUID) (int, error) {
	var result struct {
		Max int
	}
	err := r.db.WithContext(ctx).Model(&model.Column{}).
		Select("COALESCE(MAX(\"order\"), 0) as max").
		Where("board_id = ?", boardID).
		Scan(&result).Error
	return result.Max, err
}

func (r *ColumnRepository) Update(ctx context.Context, column *model.Column) error {
	return r.db.WithContext(ctx).Save(column).Error
}

// Reorder rewrites the given column orders in one transaction, one update
// per column, mirroring the per-item persistence of a drag gesture.
func (r *ColumnRepository) Reorder(ctx context.Context, updates []OrderUpdate) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, u := range updates {
			if err := tx.Model(&model.Column{}).Where("id = ?", u.ID).
				Update("order", u.Order).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *ColumnRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&model.Column{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrColumnNotFound
	}
	return nil
}
