package store

import (
	"context"

	"gorm.io/gorm"

	"newsdesk/internal/models"
)

type Topics struct {
	db *gorm.DB
}

func NewTopics(db *gorm.DB) *Topics {
	return &Topics{db: db}
}

func (s *Topics) List(ctx context.Context) ([]models.Topic, error) {
	topics := make([]models.Topic, 0)
	err := s.db.WithContext(ctx).
		Order("slug ASC").
		Find(&topics).Error
	return topics, err
}
