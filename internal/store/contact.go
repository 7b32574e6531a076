package store

import (
	"context"
	"strings"

	"gorm.io/gorm"

	"shopapi/internal/apperr"
	"shopapi/internal/models"
)

// ContactStore captures customer inquiries. Append-only.
type ContactStore struct {
	db *gorm.DB
}

func NewContactStore(db *gorm.DB) *ContactStore {
	return &ContactStore{db: db}
}

// Submit persists an inquiry; all four fields are required.
func (s *ContactStore) Submit(ctx context.Context, m models.ContactMessage) error {
	if strings.TrimSpace(m.Name) == "" ||
		strings.TrimSpace(m.Email) == "" ||
		strings.TrimSpace(m.Phone) == "" ||
		strings.TrimSpace(m.Message) == "" {
		return apperr.Validation("All fields are required")
	}
	if err := s.db.WithContext(ctx).Create(&m).Error; err != nil {
		return apperr.Internal(err)
	}
	return nil
}
