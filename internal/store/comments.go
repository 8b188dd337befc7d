package store

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"newsdesk/internal/models"
)

type Comments struct {
	db *gorm.DB
}

func NewComments(db *gorm.DB) *Comments {
	return &Comments{db: db}
}

// ForArticle lists every comment on an article, oldest first. No comments
// is an empty slice, not an error.
func (s *Comments) ForArticle(ctx context.Context, articleID int) ([]models.Comment, error) {
	comments := make([]models.Comment, 0)
	err := s.db.WithContext(ctx).
		Where("article_id = ?", articleID).
		Order("created_at ASC").
		Find(&comments).Error
	return comments, err
}

// Insert creates the comment and returns the stored row directly from the
// write, so no content-based re-read is needed.
func (s *Comments) Insert(ctx context.Context, articleID int, username, body string) (*models.Comment, error) {
	comment := models.Comment{
		ArticleID: articleID,
		Author:    username,
		Body:      body,
	}
	if err := s.db.WithContext(ctx).Create(&comment).Error; err != nil {
		return nil, err
	}
	return &comment, nil
}

// Update mirrors Articles.Update: vote delta plus optional body
// replacement in one statement.
func (s *Comments) Update(ctx context.Context, id, delta int, body *string) (*models.Comment, error) {
	values := map[string]any{
		"votes": gorm.Expr("votes + ?", delta),
	}
	if body != nil {
		values["body"] = *body
	}

	var comment models.Comment
	res := s.db.WithContext(ctx).
		Model(&comment).
		Clauses(clause.Returning{}).
		Where("comment_id = ?", id).
		Updates(values)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return &comment, nil
}

// Delete removes a comment by id. Removing zero rows is not an error here;
// callers pair this with an explicit existence check when absence matters.
func (s *Comments) Delete(ctx context.Context, id int) error {
	return s.db.WithContext(ctx).
		Delete(&models.Comment{}, "comment_id = ?", id).Error
}
