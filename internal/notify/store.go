package notify

import (
	"gorm.io/gorm"

	"github.com/barberflow/api/internal/models"
)

type Store struct {
	db *gorm.DB
}

func NewStore(db *gorm.DB) *Store {
	return &Store{db: db}
}

func (s *Store) Save(userID uint, message string, typ string) error {
	note := models.Notification{
		UserID:  userID,
		Message: message,
		Type:    typ,
	}

	return s.db.Create(&note).Error
}

// ListForUser returns the user's notifications newest-first.
func (s *Store) ListForUser(userID uint) ([]models.Notification, error) {
	var notes []models.Notification
	if err := s.db.
		Where("user_id = ?", userID).
		Order("created_at DESC, id DESC").
		Find(&notes).Error; err != nil {
		return nil, err
	}

	return notes, nil
}

// MarkAllRead flips the read flag on the user's notifications only.
// Notifications addressed to other users are untouched.
func (s *Store) MarkAllRead(userID uint) error {
	return s.db.
		Model(&models.Notification{}).
		Where("user_id = ? AND read = ?", userID, false).
		Update("read", true).Error
}
