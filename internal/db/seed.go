package db

import (
	"fmt"
	"time"

	"gorm.io/gorm"

	"newsdesk/internal/models"
)

// FixtureSet is the development data set. Serial ids are assigned in
// insertion order, so articles and comments are numbered from 1 in the
// order they appear here.
type FixtureSet struct {
	Topics   []models.Topic
	Users    []models.User
	Articles []models.Article
	Comments []models.Comment
}

// Fixtures returns a fresh copy of the seed data. The seed command and the
// tests both load it.
func Fixtures() FixtureSet {
	date := func(y int, m time.Month, d int) time.Time {
		return time.Date(y, m, d, 12, 0, 0, 0, time.UTC)
	}

	return FixtureSet{
		Topics: []models.Topic{
			{Slug: "coding", Description: "All things code"},
			{Slug: "football", Description: "The beautiful game"},
			{Slug: "cooking", Description: "Recipes and kitchen talk"},
			{Slug: "paper", Description: "What the printer eats"},
		},
		Users: []models.User{
			{Username: "butter_bridge", Name: "Jonny", AvatarURL: "https://avatars.githubusercontent.com/u/24394918?v=4"},
			{Username: "icellusedkars", Name: "Sam", AvatarURL: "https://avatars.githubusercontent.com/u/24604688?v=4"},
			{Username: "rogersop", Name: "Paul", AvatarURL: "https://avatars.githubusercontent.com/u/24394918?v=4"},
			{Username: "lurker", Name: "Do Nothing", AvatarURL: models.DefaultAvatarURL},
		},
		Articles: []models.Article{
			{
				Title:     "Go modules in production",
				Body:      "Lessons from three years of dependency management at scale.",
				Votes:     100,
				Topic:     "coding",
				Author:    "butter_bridge",
				CreatedAt: date(2020, time.July, 9),
			},
			{
				Title:     "The quiet rise of boring technology",
				Body:      "Choosing the tool you already know is a feature, not a failure.",
				Votes:     0,
				Topic:     "coding",
				Author:    "icellusedkars",
				CreatedAt: date(2020, time.October, 16),
			},
			{
				Title:     "Eight ways to overcook pasta",
				Body:      "A cautionary tale told one minute at a time.",
				Votes:     12,
				Topic:     "cooking",
				Author:    "rogersop",
				CreatedAt: date(2020, time.November, 3),
			},
			{
				Title:     "Midweek fixtures roundup",
				Body:      "Everything that happened while you were asleep.",
				Votes:     5,
				Topic:     "football",
				Author:    "rogersop",
				CreatedAt: date(2021, time.January, 12),
			},
			{
				Title:     "Error handling beyond the happy path",
				Body:      "Wrapping, sentinel values, and when to give up and log.",
				Votes:     30,
				Topic:     "coding",
				Author:    "butter_bridge",
				CreatedAt: date(2021, time.March, 29),
			},
		},
		Comments: []models.Comment{
			{
				Author:    "butter_bridge",
				ArticleID: 2,
				Votes:     14,
				Body:      "Boring is underrated.",
				CreatedAt: date(2020, time.October, 31),
			},
			{
				Author:    "icellusedkars",
				ArticleID: 1,
				Votes:     0,
				Body:      "We went through this migration last year. It hurt.",
				CreatedAt: date(2020, time.July, 21),
			},
			{
				Author:    "rogersop",
				ArticleID: 1,
				Votes:     4,
				Body:      "Pinning minor versions saved us twice.",
				CreatedAt: date(2020, time.August, 2),
			},
			{
				Author:    "lurker",
				ArticleID: 3,
				Votes:     -1,
				Body:      "Nine, if you count leaving the kitchen.",
				CreatedAt: date(2020, time.November, 10),
			},
		},
	}
}

// Seed inserts the fixture rows in dependency order.
func Seed(database *gorm.DB) error {
	f := Fixtures()
	if err := database.Create(&f.Topics).Error; err != nil {
		return fmt.Errorf("seed topics: %w", err)
	}
	if err := database.Create(&f.Users).Error; err != nil {
		return fmt.Errorf("seed users: %w", err)
	}
	if err := database.Create(&f.Articles).Error; err != nil {
		return fmt.Errorf("seed articles: %w", err)
	}
	if err := database.Create(&f.Comments).Error; err != nil {
		return fmt.Errorf("seed comments: %w", err)
	}
	return nil
}

// Reset drops the four tables in dependency order, recreates them, and
// loads the fixture data. Safe to run repeatedly.
func Reset(database *gorm.DB) error {
	for _, table := range []any{
		&models.Comment{},
		&models.Article{},
		&models.User{},
		&models.Topic{},
	} {
		if err := database.Migrator().DropTable(table); err != nil {
			return fmt.Errorf("drop table: %w", err)
		}
	}
	if err := Migrate(database); err != nil {
		return err
	}
	return Seed(database)
}
