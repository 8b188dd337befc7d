package handlers

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"

	"newsdesk/internal/cache"
	"newsdesk/internal/models"
	"newsdesk/internal/store"
	"newsdesk/internal/validate"
)

const (
	listCacheTTL   = 1 * time.Minute
	detailCacheTTL = 5 * time.Minute
)

type ArticleHandler struct {
	db       *gorm.DB
	articles *store.Articles
	comments *store.Comments
	cache    *cache.Cache
	log      *zap.Logger
}

func NewArticleHandler(db *gorm.DB, responses *cache.Cache, log *zap.Logger) *ArticleHandler {
	return &ArticleHandler{
		db:       db,
		articles: store.NewArticles(db),
		comments: store.NewComments(db),
		cache:    responses,
		log:      log,
	}
}

// List serves GET /api/articles. The optional topic and title filters are
// checked for existence in their own tables concurrently with the listing
// query itself; first failure wins.
func (h *ArticleHandler) List(c *gin.Context) {
	sortBy, err := validate.SortColumn(c.Query("sort_by"))
	if err != nil {
		fail(c, h.log, err)
		return
	}
	order, err := validate.OrderDirection(c.Query("order"))
	if err != nil {
		fail(c, h.log, err)
		return
	}
	topic := c.Query("topic")
	title := c.Query("title")

	cacheKey := "articles:list:" + c.Request.URL.RawQuery
	if cached := h.cache.Get(cacheKey); cached != nil {
		if articles, ok := cached.([]models.Article); ok {
			c.JSON(http.StatusOK, gin.H{"articles": articles})
			return
		}
	}

	var articles []models.Article
	g, ctx := errgroup.WithContext(c.Request.Context())
	g.Go(func() error {
		return store.Exists(ctx, h.db, "topics", "slug", topic)
	})
	g.Go(func() error {
		return store.Exists(ctx, h.db, "articles", "title", title)
	})
	g.Go(func() error {
		var err error
		articles, err = h.articles.List(ctx, store.ListOptions{
			SortBy: sortBy,
			Order:  order,
			Topic:  topic,
			Title:  title,
		})
		return err
	})
	if err := g.Wait(); err != nil {
		fail(c, h.log, err)
		return
	}

	h.cache.Set(cacheKey, articles, listCacheTTL)
	c.JSON(http.StatusOK, gin.H{"articles": articles})
}

// Get serves GET /api/articles/:articleID. The existence check runs
// alongside the fetch; both agree on 404 for an unknown id.
func (h *ArticleHandler) Get(c *gin.Context) {
	id, err := validate.ID(c.Param("articleID"))
	if err != nil {
		fail(c, h.log, err)
		return
	}

	cacheKey := fmt.Sprintf("articles:detail:%d", id)
	if cached := h.cache.Get(cacheKey); cached != nil {
		if article, ok := cached.(*models.Article); ok {
			c.JSON(http.StatusOK, gin.H{"article": article})
			return
		}
	}

	var article *models.Article
	g, ctx := errgroup.WithContext(c.Request.Context())
	g.Go(func() error {
		return store.Exists(ctx, h.db, "articles", "article_id", id)
	})
	g.Go(func() error {
		var err error
		article, err = h.articles.ByID(ctx, id)
		return err
	})
	if err := g.Wait(); err != nil {
		fail(c, h.log, err)
		return
	}

	h.cache.Set(cacheKey, article, detailCacheTTL)
	c.JSON(http.StatusOK, gin.H{"article": article})
}

// Patch serves PATCH /api/articles/:articleID. The vote delta and optional
// body replacement are applied as one atomic update.
func (h *ArticleHandler) Patch(c *gin.Context) {
	id, err := validate.ID(c.Param("articleID"))
	if err != nil {
		fail(c, h.log, err)
		return
	}
	body, err := bindBody(c)
	if err != nil {
		fail(c, h.log, err)
		return
	}
	patch, err := validate.ArticlePatchBody(body)
	if err != nil {
		fail(c, h.log, err)
		return
	}

	var article *models.Article
	g, ctx := errgroup.WithContext(c.Request.Context())
	g.Go(func() error {
		return store.Exists(ctx, h.db, "articles", "article_id", id)
	})
	g.Go(func() error {
		var err error
		article, err = h.articles.Update(ctx, id, patch.IncVotes, patch.Body)
		return err
	})
	if err := g.Wait(); err != nil {
		fail(c, h.log, err)
		return
	}

	h.cache.Delete(fmt.Sprintf("articles:detail:%d", id))
	h.cache.DeletePrefix("articles:list:")
	c.JSON(http.StatusOK, gin.H{"article": article})
}

// ListComments serves GET /api/articles/:articleID/comments. An article
// with no comments answers 200 with an empty array.
func (h *ArticleHandler) ListComments(c *gin.Context) {
	id, err := validate.ID(c.Param("articleID"))
	if err != nil {
		fail(c, h.log, err)
		return
	}

	var comments []models.Comment
	g, ctx := errgroup.WithContext(c.Request.Context())
	g.Go(func() error {
		return store.Exists(ctx, h.db, "articles", "article_id", id)
	})
	g.Go(func() error {
		var err error
		comments, err = h.comments.ForArticle(ctx, id)
		return err
	})
	if err := g.Wait(); err != nil {
		fail(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"comments": comments})
}

// CreateComment serves POST /api/articles/:articleID/comments. The article
// and username checks run concurrently, but the insert waits for both so a
// rejected request never leaves a row behind.
func (h *ArticleHandler) CreateComment(c *gin.Context) {
	id, err := validate.ID(c.Param("articleID"))
	if err != nil {
		fail(c, h.log, err)
		return
	}
	body, err := bindBody(c)
	if err != nil {
		fail(c, h.log, err)
		return
	}
	payload, err := validate.CommentBody(body)
	if err != nil {
		fail(c, h.log, err)
		return
	}

	g, ctx := errgroup.WithContext(c.Request.Context())
	g.Go(func() error {
		return store.Exists(ctx, h.db, "articles", "article_id", id)
	})
	g.Go(func() error {
		return store.Exists(ctx, h.db, "users", "username", payload.Username)
	})
	if err := g.Wait(); err != nil {
		fail(c, h.log, err)
		return
	}

	comment, err := h.comments.Insert(c.Request.Context(), id, payload.Username, payload.Body)
	if err != nil {
		fail(c, h.log, err)
		return
	}

	h.cache.Delete(fmt.Sprintf("articles:detail:%d", id))
	h.cache.DeletePrefix("articles:list:")
	c.JSON(http.StatusCreated, gin.H{"comment": comment})
}
