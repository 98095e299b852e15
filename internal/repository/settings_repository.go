package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"taskcherry/internal/model"
)

type SettingsRepository struct {
	db *gorm.DB
}

type SettingsRepositoryInterface interface {
	Get(ctx context.Context, userID uuid.UUID) (*model.UserSettings, error)
	Upsert(ctx context.Context, settings *model.UserSettings) error
}

var _ SettingsRepositoryInterface = (*SettingsRepository)(nil)

func NewSettingsRepository(db *gorm.DB) *SettingsRepository {
	return &SettingsRepository{db: db}
}

// Get returns the user's settings row, or nil when none exists yet.
func (r *SettingsRepository) Get(ctx context.Context, userID uuid.UUID) (*model.UserSettings, error) {
	var settings model.UserSettings
	err := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&settings).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &settings, nil
}

// Upsert creates or updates the single settings row for settings.UserID.
// Runs in a transaction so concurrent first writes can't race into two rows.
func (r *SettingsRepository) Upsert(ctx context.Context, settings *model.UserSettings) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existing model.UserSettings
		err := tx.Where("user_id = ?", settings.UserID).First(&existing).Error

		if err == nil {
			existing.StarCount = settings.StarCount
			existing.WidgetDisplayMode = settings.WidgetDisplayMode
			*settings = existing
			return tx.Save(&existing).Error
		}

		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		return tx.Create(settings).Error
	})
}
