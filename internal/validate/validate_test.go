package validate

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"newsdesk/internal/apperr"
)

func assertStatus(t *testing.T, err error, want int) {
	t.Helper()
	var appErr *apperr.Error
	require.True(t, errors.As(err, &appErr), "expected apperr.Error, got %v", err)
	assert.Equal(t, want, appErr.Status)
}

func TestID(t *testing.T) {
	tests := []struct {
		raw    string
		want   int
		wantOK bool
	}{
		{"1", 1, true},
		{"0", 0, true},
		{"42", 42, true},
		{"not-an-id", 0, false},
		{"1.5", 0, false},
		{"-1", 0, false},
		{"1; DROP TABLE articles", 0, false},
		{"", 0, false},
	}
	for _, tt := range tests {
		id, err := ID(tt.raw)
		if tt.wantOK {
			require.NoError(t, err, "ID(%q)", tt.raw)
			assert.Equal(t, tt.want, id)
		} else {
			assertStatus(t, err, 400)
		}
	}
}

func TestSortColumn(t *testing.T) {
	for _, column := range []string{"article_id", "title", "votes", "topic", "author"} {
		got, err := SortColumn(column)
		require.NoError(t, err)
		assert.Equal(t, column, got)
	}

	got, err := SortColumn("")
	require.NoError(t, err)
	assert.Equal(t, "created_at", got)

	_, err = SortColumn("random")
	assertStatus(t, err, 400)

	// created_at is the default, not an accepted explicit value
	_, err = SortColumn("comment_count")
	assertStatus(t, err, 400)
}

func TestOrderDirection(t *testing.T) {
	for raw, want := range map[string]string{
		"":     "DESC",
		"asc":  "ASC",
		"ASC":  "ASC",
		"Asc":  "ASC",
		"desc": "DESC",
		"DESC": "DESC",
	} {
		got, err := OrderDirection(raw)
		require.NoError(t, err, "OrderDirection(%q)", raw)
		assert.Equal(t, want, got)
	}

	_, err := OrderDirection("increase")
	assertStatus(t, err, 400)
}

func TestArticlePatchBody(t *testing.T) {
	patch, err := ArticlePatchBody(map[string]any{"inc_votes": float64(2)})
	require.NoError(t, err)
	assert.Equal(t, 2, patch.IncVotes)
	assert.Nil(t, patch.Body)

	patch, err = ArticlePatchBody(map[string]any{"body": "new text"})
	require.NoError(t, err)
	assert.Equal(t, 0, patch.IncVotes)
	require.NotNil(t, patch.Body)
	assert.Equal(t, "new text", *patch.Body)

	patch, err = ArticlePatchBody(map[string]any{"inc_votes": float64(-1), "body": "x"})
	require.NoError(t, err)
	assert.Equal(t, -1, patch.IncVotes)

	_, err = ArticlePatchBody(map[string]any{})
	assertStatus(t, err, 400)

	_, err = ArticlePatchBody(map[string]any{"inc_votes": "cat"})
	assertStatus(t, err, 400)

	_, err = ArticlePatchBody(map[string]any{"inc_votes": 1.5})
	assertStatus(t, err, 400)

	_, err = ArticlePatchBody(map[string]any{"inc_votes": float64(1), "title": "x"})
	assertStatus(t, err, 400)

	_, err = ArticlePatchBody(map[string]any{"body": ""})
	assertStatus(t, err, 400)
}

func TestCommentPatchBody(t *testing.T) {
	patch, err := CommentPatchBody(map[string]any{"inc_votes": float64(1), "username": "rogersop"})
	require.NoError(t, err)
	assert.Equal(t, 1, patch.IncVotes)
	assert.Equal(t, "rogersop", patch.Username)

	_, err = CommentPatchBody(map[string]any{"username": float64(3)})
	assertStatus(t, err, 400)

	_, err = CommentPatchBody(map[string]any{"inc_votes": float64(1), "comment_id": float64(9)})
	assertStatus(t, err, 400)

	_, err = CommentPatchBody(map[string]any{})
	assertStatus(t, err, 400)
}

func TestCommentBody(t *testing.T) {
	payload, err := CommentBody(map[string]any{"username": "rogersop", "body": "hello"})
	require.NoError(t, err)
	assert.Equal(t, "rogersop", payload.Username)
	assert.Equal(t, "hello", payload.Body)

	_, err = CommentBody(map[string]any{"username": "rogersop"})
	assertStatus(t, err, 400)

	_, err = CommentBody(map[string]any{"body": "hello"})
	assertStatus(t, err, 400)

	_, err = CommentBody(map[string]any{"username": "rogersop", "body": ""})
	assertStatus(t, err, 400)

	_, err = CommentBody(map[string]any{"username": "rogersop", "body": "hello", "votes": float64(10)})
	assertStatus(t, err, 400)
}

func TestUserBody(t *testing.T) {
	payload, err := UserBody(map[string]any{"username": "new_user", "name": "New User"})
	require.NoError(t, err)
	assert.Equal(t, "new_user", payload.Username)
	assert.Equal(t, "New User", payload.Name)
	assert.Empty(t, payload.AvatarURL)

	payload, err = UserBody(map[string]any{"username": "new_user", "name": "New User", "avatar_url": "https://example.com/a.png"})
	require.NoError(t, err)
	assert.Equal(t, "https://example.com/a.png", payload.AvatarURL)

	_, err = UserBody(map[string]any{"username": "new_user"})
	assertStatus(t, err, 400)

	_, err = UserBody(map[string]any{"name": "New User"})
	assertStatus(t, err, 400)

	_, err = UserBody(map[string]any{"username": "new_user", "name": "New User", "admin": true})
	assertStatus(t, err, 400)
}

func TestAvatarBody(t *testing.T) {
	url, err := AvatarBody(map[string]any{"avatar_url": "https://example.com/a.png"})
	require.NoError(t, err)
	assert.Equal(t, "https://example.com/a.png", url)

	url, err = AvatarBody(map[string]any{})
	require.NoError(t, err)
	assert.Empty(t, url)

	_, err = AvatarBody(map[string]any{"avatar_url": ""})
	assertStatus(t, err, 400)

	_, err = AvatarBody(map[string]any{"username": "sneaky"})
	assertStatus(t, err, 400)
}
