package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"taskcherry/internal/model"
)

type CardRepository struct {
	db *gorm.DB
}

type CardRepositoryInterface interface {
	Create(ctx context.Context, card *model.Card) error
	GetByID(ctx context.Context, id uuid.UUID) (*model.Card, error)
	GetByBoardID(ctx context.Context, boardID uuid.UUID) ([]model.Card, error)
	GetByColumnID(ctx context.Context, columnID uuid.UUID) ([]model.Card, error)
	CountByColumnID(ctx context.Context, columnID uuid.UUID) (int64, error)
	GetMaxOrder(ctx context.Context, columnID uuid.UUID) (int, error)
	Update(ctx context.Context, card *model.Card) error
	Move(ctx context.Context, cardID, columnID uuid.UUID, order int) error
	Reorder(ctx context.Context, updates []OrderUpdate) error
	Delete(ctx context.Context, id uuid.UUID) error
}

var _ CardRepositoryInterface = (*CardRepository)(nil)

func NewCardRepository(db *gorm.DB) *CardRepository {
	return &CardRepository{db: db}
}

func (r *CardRepository) Create(ctx context.Context, card *model.Card) error {
	return r.db.WithContext(ctx).Create(card).Error
}

func (r *CardRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Card, error) {
	var card model.Card
	result := r.db.WithContext(ctx).First(&card, "id = ?", id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrCardNotFound
		}
		return nil, result.Error
	}
	return &card, nil
}

func (r *CardRepository) GetByBoardID(ctx context.Context, boardID uuid.UUID) ([]model.Card, error) {
	var cards []model.Card
	result := r.db.WithContext(ctx).Where("board_id = ?", boardID).Order("\"order\"").Find(&cards)
	if result.Error != nil {
		return nil, result.Error
	}
	return cards, nil
}

func (r *CardRepository) GetByColumnID(ctx context.Context, columnID uuid.UUID) ([]model.Card, error) {
	var cards []model.Card
	result := r.db.WithContext(ctx).Where("column_id = ?", columnID).Order("\"order\"").Find(&cards)
	if result.Error != nil {
		return nil, result.Error
	}
	return cards, nil
}

func (r *CardRepository) CountByColumnID(ctx context.Context, columnID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Card{}).Where("column_id = ?", columnID).Count(&count).Error
	return count, err
}

func (r *CardRepository) GetMaxOrder(ctx context.Context, columnID uuid.UUID) (int, error) {
	var result struct {
		Max int
	}
	err := r.db.WithContext(ctx).Model(&model.Card{}).
		Select("COALESCE(MAX(\"order\"), 0) as max").
		Where("column_id = ?", columnID).
		Scan(&result).Error
	return result.Max, err
}

func (r *CardRepository) Update(ctx context.Context, card *model.Card) error {
	result := r.db.WithContext(ctx).Save(card)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrCardNotFound
	}
	return nil
}

// Move reparents a card and assigns its order in one update. This is the
// single persisted write of an append or cross-column drop; sibling orders
// in both columns are left as they are.
func (r *CardRepository) Move(ctx context.Context, cardID, columnID uuid.UUID, order int) error {
	result := r.db.WithContext(ctx).Model(&model.Card{}).
		Where("id = ?", cardID).
		Updates(map[string]interface{}{"column_id": columnID, "order": order})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrCardNotFound
	}
	return nil
}

// Reorder rewrites card orders after a same-column drag, one update per
// card inside a transaction.
func (r *CardRepository) Reorder(ctx context.Context, updates []OrderUpdate) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, u := range updates {
			if err := tx.Model(&model.Card{}).Where("id = ?", u.ID).
				Update("order", u.Order).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *CardRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&model.Card{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrCardNotFound
	}
	return nil
}
