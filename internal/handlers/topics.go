package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"newsdesk/internal/store"
)

type TopicHandler struct {
	topics *store.Topics
	log    *zap.Logger
}

func NewTopicHandler(db *gorm.DB, log *zap.Logger) *TopicHandler {
	return &TopicHandler{
		topics: store.NewTopics(db),
		log:    log,
	}
}

// List returns every topic.
func (h *TopicHandler) List(c *gin.Context) {
	topics, err := h.topics.List(c.Request.Context())
	if err != nil {
		fail(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"topics": topics})
}
