package models

import (
	"time"
)

type Article struct {
	ArticleID int       `gorm:"primaryKey" json:"article_id"`
	Title     string    `gorm:"size:100;not null" json:"title"`
	Body      string    `gorm:"type:text;not null" json:"body"`
	Votes     int       `gorm:"not null;default:0" json:"votes"`
	Topic     string    `gorm:"size:50;not null;index" json:"topic"`
	TopicRef  Topic     `gorm:"foreignKey:Topic;references:Slug;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT" json:"-"`
	Author    string    `gorm:"size:15;not null;index" json:"author"`
	AuthorRef User      `gorm:"foreignKey:Author;references:Username;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT" json:"-"`
	CreatedAt time.Time `json:"created_at"`

	// Aggregate filled by the article queries, never stored.
	CommentCount int `gorm:"->;-:migration" json:"comment_count"`
}
