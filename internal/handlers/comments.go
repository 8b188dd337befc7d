package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"

	"newsdesk/internal/cache"
	"newsdesk/internal/models"
	"newsdesk/internal/store"
	"newsdesk/internal/validate"
)

type CommentHandler struct {
	db       *gorm.DB
	comments *store.Comments
	cache    *cache.Cache
	log      *zap.Logger
}

func NewCommentHandler(db *gorm.DB, responses *cache.Cache, log *zap.Logger) *CommentHandler {
	return &CommentHandler{
		db:       db,
		comments: store.NewComments(db),
		cache:    responses,
		log:      log,
	}
}

// Delete serves DELETE /api/comments/:commentID. The delete itself reports
// success even at zero rows, so absence is decided by an explicit existence
// check first.
func (h *CommentHandler) Delete(c *gin.Context) {
	id, err := validate.ID(c.Param("commentID"))
	if err != nil {
		fail(c, h.log, err)
		return
	}

	ctx := c.Request.Context()
	if err := store.Exists(ctx, h.db, "comments", "comment_id", id); err != nil {
		fail(c, h.log, err)
		return
	}
	if err := h.comments.Delete(ctx, id); err != nil {
		fail(c, h.log, err)
		return
	}

	h.cache.DeletePrefix("articles:")
	c.Status(http.StatusNoContent)
}

// Patch serves PATCH /api/comments/:commentID. The comment check, the
// optional username check and the update itself run concurrently; a
// sibling failure does not roll the update back.
func (h *CommentHandler) Patch(c *gin.Context) {
	id, err := validate.ID(c.Param("commentID"))
	if err != nil {
		fail(c, h.log, err)
		return
	}
	body, err := bindBody(c)
	if err != nil {
		fail(c, h.log, err)
		return
	}
	patch, err := validate.CommentPatchBody(body)
	if err != nil {
		fail(c, h.log, err)
		return
	}

	var comment *models.Comment
	g, ctx := errgroup.WithContext(c.Request.Context())
	g.Go(func() error {
		return store.Exists(ctx, h.db, "comments", "comment_id", id)
	})
	g.Go(func() error {
		return store.Exists(ctx, h.db, "users", "username", patch.Username)
	})
	g.Go(func() error {
		var err error
		comment, err = h.comments.Update(ctx, id, patch.IncVotes, patch.Body)
		return err
	})
	if err := g.Wait(); err != nil {
		fail(c, h.log, err)
		return
	}

	h.cache.DeletePrefix("articles:")
	c.JSON(http.StatusOK, gin.H{"comment": comment})
}
