package store

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"newsdesk/internal/models"
)

type Users struct {
	db *gorm.DB
}

func NewUsers(db *gorm.DB) *Users {
	return &Users{db: db}
}

func (s *Users) List(ctx context.Context) ([]models.User, error) {
	users := make([]models.User, 0)
	err := s.db.WithContext(ctx).
		Order("username ASC").
		Find(&users).Error
	return users, err
}

func (s *Users) ByUsername(ctx context.Context, username string) (*models.User, error) {
	var user models.User
	err := s.db.WithContext(ctx).
		Where("username = ?", username).
		Take(&user).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// UpdateAvatar replaces the avatar URL, falling back to the fixed
// placeholder when none is given.
func (s *Users) UpdateAvatar(ctx context.Context, username, url string) (*models.User, error) {
	if url == "" {
		url = models.DefaultAvatarURL
	}

	var user models.User
	res := s.db.WithContext(ctx).
		Model(&user).
		Clauses(clause.Returning{}).
		Where("username = ?", username).
		Update("avatar_url", url)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return &user, nil
}

// Insert creates a user. Username uniqueness is guarded by the caller's
// Unique check and, as a backstop, by the primary key itself.
func (s *Users) Insert(ctx context.Context, username, name, url string) (*models.User, error) {
	if url == "" {
		url = models.DefaultAvatarURL
	}
	user := models.User{
		Username:  username,
		Name:      name,
		AvatarURL: url,
	}
	if err := s.db.WithContext(ctx).Create(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}
