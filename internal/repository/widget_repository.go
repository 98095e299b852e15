package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"taskcherry/internal/model"
)

type WidgetRepository struct {
	db *gorm.DB
}

type WidgetRepositoryInterface interface {
	Create(ctx context.Context, widget *model.Widget) error
	GetByID(ctx context.Context, id uuid.UUID) (*model.Widget, error)
	GetByBoardID(ctx context.Context, boardID uuid.UUID) ([]model.Widget, error)
	GetMaxOrder(ctx context.Context, boardID uuid.UUID) (int, error)
	Update(ctx context.Context, widget *model.Widget) error
	Reorder(ctx context.Context, updates []OrderUpdate) error
	Delete(ctx context.Context, id uuid.UUID) error
}

var _ WidgetRepositoryInterface = (*WidgetRepository)(nil)

func NewWidgetRepository(db *gorm.DB) *WidgetRepository {
	return &WidgetRepository{db: db}
}

func (r *WidgetRepository) Create(ctx context.Context, widget *model.Widget) error {
	return r.db.WithContext(ctx).Create(widget).Error
}

func (r *WidgetRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Widget, error) {
	var widget model.Widget
	result := r.db.WithContext(ctx).First(&widget, "id = ?", id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrWidgetNotFound
		}
		return nil, result.Error
	}
	return &widget, nil
}

func (r *WidgetRepository) GetByBoardID(ctx context.Context, boardID uuid.UUID) ([]model.Widget, error) {
	var widgets []model.Widget
	result := r.db.WithContext(ctx).Where("board_id = ?", boardID).Order("\"order\"").Find(&widgets)
	if result.Error != nil {
		return nil, result.Error
	}
	return widgets, nil
}

func (r *WidgetRepository) GetMaxOrder(ctx context.Context, boardID uuid.UUID) (int, error) {
	var result struct {
		Max int
	}
	err := r.db.WithContext(ctx).Model(&model.Widget{}).
		Select("COALESCE(MAX(\"order\"), 0) as max").
		Where("board_id = ?", boardID).
		Scan(&result).Error
	return result.Max, err
}

func (r *WidgetRepository) Update(ctx context.Context, widget *model.Widget) error {
	result := r.db.WithContext(ctx).Save(widget)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrWidgetNotFound
	}
	return nil
}

func (r *WidgetRepository) Reorder(ctx context.Context, updates []OrderUpdate) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, u := range updates {
			if err := tx.Model(&model.Widget{}).Where("id = ?", u.ID).
				Update("order", u.Order).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *WidgetRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&model.Widget{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrWidgetNotFound
	}
	return nil
}
