package store

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"shopapi/internal/apperr"
	"shopapi/internal/models"
)

// settingsID pins the singleton row. Combined with the upsert in Update,
// concurrent first writes cannot produce a second row.
const settingsID = 1

// SettingsStore owns the singleton settings row.
type SettingsStore struct {
	db *gorm.DB
}

func NewSettingsStore(db *gorm.DB) *SettingsStore {
	return &SettingsStore{db: db}
}

// Get returns the stored settings, or the fixed defaults when no row
// exists yet. The defaults are never persisted by a read.
func (s *SettingsStore) Get(ctx context.Context) (models.Settings, error) {
	var st models.Settings
	err := s.db.WithContext(ctx).First(&st, "id = ?", settingsID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.DefaultSettings(), nil
	}
	if err != nil {
		return models.Settings{}, apperr.Internal(err)
	}
	return st, nil
}

// Update upserts the singleton row in one statement.
func (s *SettingsStore) Update(ctx context.Context, in models.Settings) error {
	in.ID = settingsID
	err := s.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "id"}},
			UpdateAll: true,
		}).
		Create(&in).Error
	if err != nil {
		return apperr.Internal(err)
	}
	return nil
}
