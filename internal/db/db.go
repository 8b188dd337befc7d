package db

import (
	"fmt"

	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"newsdesk/internal/models"
)

// Open connects to Postgres, migrates the schema, and seeds the reference
// topics when the table is empty. The returned handle is the single store
// client of the process; the caller owns its lifecycle.
func Open(dsn string, log *zap.Logger) (*gorm.DB, error) {
	database, err := Connect(dsn)
	if err != nil {
		return nil, err
	}
	log.Info("database connection established")

	if err := Migrate(database); err != nil {
		return nil, err
	}
	log.Info("database migration completed")

	if err := seedTopics(database, log); err != nil {
		return nil, err
	}
	return database, nil
}

// Connect opens the connection without touching the schema.
func Connect(dsn string) (*gorm.DB, error) {
	database, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("connect database: %w", err)
	}
	return database, nil
}

// Migrate creates or updates the four tables. Topics and users go first so
// the article and comment foreign keys resolve.
func Migrate(database *gorm.DB) error {
	err := database.AutoMigrate(
		&models.Topic{},
		&models.User{},
		&models.Article{},
		&models.Comment{},
	)
	if err != nil {
		return fmt.Errorf("migrate database: %w", err)
	}
	return nil
}

func seedTopics(database *gorm.DB, log *zap.Logger) error {
	var count int64
	if err := database.Model(&models.Topic{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		log.Info("topics already seeded, skipping")
		return nil
	}

	for _, topic := range Fixtures().Topics {
		if err := database.Create(&topic).Error; err != nil {
			log.Warn("failed to create topic", zap.String("slug", topic.Slug), zap.Error(err))
		}
	}
	log.Info("initial topics created")
	return nil
}
