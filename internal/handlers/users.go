package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"

	"newsdesk/internal/models"
	"newsdesk/internal/store"
	"newsdesk/internal/validate"
)

type UserHandler struct {
	db    *gorm.DB
	users *store.Users
	log   *zap.Logger
}

func NewUserHandler(db *gorm.DB, log *zap.Logger) *UserHandler {
	return &UserHandler{
		db:    db,
		users: store.NewUsers(db),
		log:   log,
	}
}

// List serves GET /api/users.
func (h *UserHandler) List(c *gin.Context) {
	users, err := h.users.List(c.Request.Context())
	if err != nil {
		fail(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"users": users})
}

// Get serves GET /api/users/:username.
func (h *UserHandler) Get(c *gin.Context) {
	username := c.Param("username")

	var user *models.User
	g, ctx := errgroup.WithContext(c.Request.Context())
	g.Go(func() error {
		return store.Exists(ctx, h.db, "users", "username", username)
	})
	g.Go(func() error {
		var err error
		user, err = h.users.ByUsername(ctx, username)
		return err
	})
	if err := g.Wait(); err != nil {
		fail(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"user": user})
}

// PatchAvatar serves PATCH /api/users/:username. Omitting avatar_url in the
// body resets the avatar to the fixed placeholder.
func (h *UserHandler) PatchAvatar(c *gin.Context) {
	username := c.Param("username")
	body, err := bindBody(c)
	if err != nil {
		fail(c, h.log, err)
		return
	}
	url, err := validate.AvatarBody(body)
	if err != nil {
		fail(c, h.log, err)
		return
	}

	var user *models.User
	g, ctx := errgroup.WithContext(c.Request.Context())
	g.Go(func() error {
		return store.Exists(ctx, h.db, "users", "username", username)
	})
	g.Go(func() error {
		var err error
		user, err = h.users.UpdateAvatar(ctx, username, url)
		return err
	})
	if err := g.Wait(); err != nil {
		fail(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"user": user})
}

// Create serves POST /api/users. The uniqueness check runs before the
// insert; the primary key is the backstop for the remaining race.
func (h *UserHandler) Create(c *gin.Context) {
	body, err := bindBody(c)
	if err != nil {
		fail(c, h.log, err)
		return
	}
	payload, err := validate.UserBody(body)
	if err != nil {
		fail(c, h.log, err)
		return
	}

	ctx := c.Request.Context()
	if err := store.Unique(ctx, h.db, "users", "username", payload.Username); err != nil {
		fail(c, h.log, err)
		return
	}

	user, err := h.users.Insert(ctx, payload.Username, payload.Name, payload.AvatarURL)
	if err != nil {
		fail(c, h.log, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"user": user})
}
