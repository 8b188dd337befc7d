package models

import (
	"time"
)

type Comment struct {
	CommentID  int       `gorm:"primaryKey" json:"comment_id"`
	Author     string    `gorm:"size:15;not null;index" json:"author"`
	AuthorRef  User      `gorm:"foreignKey:Author;references:Username;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT" json:"-"`
	ArticleID  int       `gorm:"not null;index" json:"article_id"`
	ArticleRef Article   `gorm:"foreignKey:ArticleID;references:ArticleID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"-"`
	Votes      int       `gorm:"not null;default:0" json:"votes"`
	CreatedAt  time.Time `json:"created_at"`
	Body       string    `gorm:"type:text" json:"body"`
}
