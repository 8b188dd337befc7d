package handlers_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"newsdesk/internal/models"
)

func TestListUsers(t *testing.T) {
	r, _ := newServer(t)

	w := request(t, r, http.MethodGet, "/api/users", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, list(t, decode(t, w), "users"), 4)
}

func TestGetUserByUsername(t *testing.T) {
	r, _ := newServer(t)

	w := request(t, r, http.MethodGet, "/api/users/rogersop", nil)
	require.Equal(t, http.StatusOK, w.Code)
	user := obj(t, decode(t, w), "user")
	assert.Equal(t, "rogersop", user["username"])
	assert.Equal(t, "Paul", user["name"])

	w = request(t, r, http.MethodGet, "/api/users/not_a_user", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestPatchUserAvatar(t *testing.T) {
	r, _ := newServer(t)

	w := request(t, r, http.MethodPatch, "/api/users/rogersop", map[string]any{
		"avatar_url": "https://example.com/new.png",
	})
	require.Equal(t, http.StatusOK, w.Code)
	user := obj(t, decode(t, w), "user")
	assert.Equal(t, "rogersop", user["username"])
	assert.Equal(t, "https://example.com/new.png", user["avatar_url"])

	// omitting avatar_url resets to the placeholder
	w = request(t, r, http.MethodPatch, "/api/users/rogersop", nil)
	require.Equal(t, http.StatusOK, w.Code)
	user = obj(t, decode(t, w), "user")
	assert.Equal(t, models.DefaultAvatarURL, user["avatar_url"])

	w = request(t, r, http.MethodPatch, "/api/users/not_a_user", map[string]any{
		"avatar_url": "https://example.com/new.png",
	})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestPostUser(t *testing.T) {
	r, database := newServer(t)

	w := request(t, r, http.MethodPost, "/api/users", map[string]any{
		"username": "new_user",
		"name":     "New User",
	})
	require.Equal(t, http.StatusCreated, w.Code)
	user := obj(t, decode(t, w), "user")
	assert.Equal(t, "new_user", user["username"])
	assert.Equal(t, models.DefaultAvatarURL, user["avatar_url"])
	assert.EqualValues(t, 5, rowCount(t, database, "users"))
}

func TestPostUserRejections(t *testing.T) {
	r, database := newServer(t)

	w := request(t, r, http.MethodPost, "/api/users", map[string]any{"username": "half_formed"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = request(t, r, http.MethodPost, "/api/users", map[string]any{"name": "No Username"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// duplicate username: 422 and no extra row
	w = request(t, r, http.MethodPost, "/api/users", map[string]any{
		"username":   "rogersop",
		"name":       "Paul",
		"avatar_url": "https://example.com/paul.png",
	})
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.EqualValues(t, 4, rowCount(t, database, "users"))
}
