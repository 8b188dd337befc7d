package router

import (
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"newsdesk/internal/cache"
	"newsdesk/internal/handlers"
)

// responseCacheSize bounds the LRU holding hot article responses.
const responseCacheSize = 500

// New builds the engine with every API route registered. The db handle and
// logger are the only process-wide dependencies; everything else hangs off
// them here.
func New(db *gorm.DB, log *zap.Logger) *gin.Engine {
	r := gin.Default()
	r.Use(cors.Default())

	responses := cache.New(responseCacheSize)

	apiHandler := handlers.NewAPIHandler()
	topicHandler := handlers.NewTopicHandler(db, log)
	articleHandler := handlers.NewArticleHandler(db, responses, log)
	commentHandler := handlers.NewCommentHandler(db, responses, log)
	userHandler := handlers.NewUserHandler(db, log)

	api := r.Group("/api")
	{
		api.GET("", apiHandler.Index)

		api.GET("/topics", topicHandler.List)

		api.GET("/articles", articleHandler.List)
		api.GET("/articles/:articleID", articleHandler.Get)
		api.PATCH("/articles/:articleID", articleHandler.Patch)
		api.GET("/articles/:articleID/comments", articleHandler.ListComments)
		api.POST("/articles/:articleID/comments", articleHandler.CreateComment)

		api.DELETE("/comments/:commentID", commentHandler.Delete)
		api.PATCH("/comments/:commentID", commentHandler.Patch)

		api.GET("/users", userHandler.List)
		api.POST("/users", userHandler.Create)
		api.GET("/users/:username", userHandler.Get)
		api.PATCH("/users/:username", userHandler.PatchAvatar)
	}

	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"msg": "Route not found"})
	})

	return r
}
