package store

import (
	"context"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"newsdesk/internal/models"
)

// ListOptions are the validated parameters of the article collection query.
// SortBy and Order are interpolated as identifiers and so MUST come from
// validate; Topic and Title are bound filter values. Topic wins when both
// filters are supplied.
type ListOptions struct {
	SortBy string
	Order  string
	Topic  string
	Title  string
}

type Articles struct {
	db *gorm.DB
}

func NewArticles(db *gorm.DB) *Articles {
	return &Articles{db: db}
}

// withCommentCount is the shared base query: articles left-joined to their
// comments, grouped by article id, with the aggregate count selected
// alongside every article column.
func (s *Articles) withCommentCount(ctx context.Context) *gorm.DB {
	return s.db.WithContext(ctx).
		Model(&models.Article{}).
		Select("articles.*, COUNT(comments.comment_id) AS comment_count").
		Joins("LEFT JOIN comments ON comments.article_id = articles.article_id").
		Group("articles.article_id")
}

// ByID fetches one article with its comment_count aggregate.
func (s *Articles) ByID(ctx context.Context, id int) (*models.Article, error) {
	var article models.Article
	err := s.withCommentCount(ctx).
		Where("articles.article_id = ?", id).
		Take(&article).Error
	if err != nil {
		return nil, err
	}
	return &article, nil
}

// List runs the collection query with at most one equality filter and the
// whitelisted sort. An empty result is a plain empty slice, not an error;
// whether a supplied topic or title actually exists is the existence
// checker's business, not this query's.
func (s *Articles) List(ctx context.Context, opts ListOptions) ([]models.Article, error) {
	query := s.withCommentCount(ctx)
	if opts.Topic != "" {
		query = query.Where("articles.topic = ?", opts.Topic)
	} else if opts.Title != "" {
		query = query.Where("articles.title = ?", opts.Title)
	}

	articles := make([]models.Article, 0)
	err := query.
		Order(fmt.Sprintf("articles.%s %s", opts.SortBy, opts.Order)).
		Find(&articles).Error
	return articles, err
}

// Update applies the vote delta and, when given, the body replacement in a
// single statement, so a failure can never leave votes changed but the body
// stale. A zero delta is a valid no-op.
func (s *Articles) Update(ctx context.Context, id, delta int, body *string) (*models.Article, error) {
	values := map[string]any{
		"votes": gorm.Expr("votes + ?", delta),
	}
	if body != nil {
		values["body"] = *body
	}

	var article models.Article
	res := s.db.WithContext(ctx).
		Model(&article).
		Clauses(clause.Returning{}).
		Where("article_id = ?", id).
		Updates(values)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return &article, nil
}
