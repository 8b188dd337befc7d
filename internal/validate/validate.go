// Package validate holds the pure request predicates. Every rejection is an
// apperr value carrying the final status and message, so handlers only
// forward failures.
package validate

import (
	"math"
	"strconv"
	"strings"

	"newsdesk/internal/apperr"
)

var sortColumns = map[string]bool{
	"article_id": true,
	"title":      true,
	"votes":      true,
	"topic":      true,
	"author":     true,
}

// ID accepts only strings of one or more ASCII digits, keeping malformed
// path parameters away from the store.
func ID(raw string) (int, error) {
	if raw == "" {
		return 0, apperr.Invalid("Invalid data type")
	}
	for _, r := range raw {
		if r < '0' || r > '9' {
			return 0, apperr.Invalid("Invalid data type")
		}
	}
	id, err := strconv.Atoi(raw)
	if err != nil {
		return 0, apperr.Invalid("Invalid data type")
	}
	return id, nil
}

// SortColumn checks the sort_by query against the whitelist. Absence
// defaults to created_at.
func SortColumn(column string) (string, error) {
	if column == "" {
		return "created_at", nil
	}
	if !sortColumns[column] {
		return "", apperr.Invalid("Sort_by query must be one of the following: article_id, title, votes, topic, author")
	}
	return column, nil
}

// OrderDirection normalizes the order query to ASC or DESC. Absence
// defaults to descending.
func OrderDirection(dir string) (string, error) {
	switch strings.ToUpper(dir) {
	case "":
		return "DESC", nil
	case "ASC":
		return "ASC", nil
	case "DESC":
		return "DESC", nil
	}
	return "", apperr.Invalid(`Order must be "asc" (ascending) or "desc" (descending).`)
}

// ArticlePatch is a validated PATCH /api/articles/:id body. A nil Body
// means the article body is left untouched; IncVotes defaults to a no-op
// delta of zero.
type ArticlePatch struct {
	IncVotes int
	Body     *string
}

func ArticlePatchBody(body map[string]any) (ArticlePatch, error) {
	var patch ArticlePatch
	if len(body) == 0 {
		return patch, apperr.Invalid("Request body is empty")
	}
	for key := range body {
		if key != "inc_votes" && key != "body" {
			return patch, apperr.Invalid("The request body must be structured as follows: { inc_votes: number_of_votes, body: your new body }")
		}
	}
	if raw, ok := body["inc_votes"]; ok {
		delta, err := votesDelta(raw)
		if err != nil {
			return patch, err
		}
		patch.IncVotes = delta
	}
	if raw, ok := body["body"]; ok {
		text, ok := raw.(string)
		if !ok || text == "" {
			return patch, apperr.Invalid("Body must be a non-empty string")
		}
		patch.Body = &text
	}
	return patch, nil
}

// CommentPatch is a validated PATCH /api/comments/:id body. Username, when
// present, names the commenter and must exist; the handler checks that.
type CommentPatch struct {
	IncVotes int
	Body     *string
	Username string
}

func CommentPatchBody(body map[string]any) (CommentPatch, error) {
	var patch CommentPatch
	if len(body) == 0 {
		return patch, apperr.Invalid("Request body is empty")
	}
	for key := range body {
		if key != "inc_votes" && key != "body" && key != "username" {
			return patch, apperr.Invalid("The request body must be structured as follows: { username: your_username, inc_votes: number_of_votes, body: your new comment }")
		}
	}
	if raw, ok := body["inc_votes"]; ok {
		delta, err := votesDelta(raw)
		if err != nil {
			return patch, err
		}
		patch.IncVotes = delta
	}
	if raw, ok := body["body"]; ok {
		text, ok := raw.(string)
		if !ok || text == "" {
			return patch, apperr.Invalid("Body must be a non-empty string")
		}
		patch.Body = &text
	}
	if raw, ok := body["username"]; ok {
		name, ok := raw.(string)
		if !ok || name == "" {
			return patch, apperr.Invalid("Username must be a non-empty string")
		}
		patch.Username = name
	}
	return patch, nil
}

// NewComment is a validated POST comment payload.
type NewComment struct {
	Username string
	Body     string
}

func CommentBody(body map[string]any) (NewComment, error) {
	var payload NewComment
	for key := range body {
		if key != "username" && key != "body" {
			return payload, apperr.Invalid("The request body must be structured as follows: { username: your_username, body: your comment here }")
		}
	}
	username, ok := body["username"].(string)
	if !ok || username == "" {
		return payload, apperr.Invalid("The request body must be structured as follows: { username: your_username, body: your comment here }")
	}
	text, ok := body["body"].(string)
	if !ok || text == "" {
		return payload, apperr.Invalid("The request body must be structured as follows: { username: your_username, body: your comment here }")
	}
	payload.Username = username
	payload.Body = text
	return payload, nil
}

// NewUser is a validated POST user payload. An empty AvatarURL means the
// store falls back to the fixed placeholder.
type NewUser struct {
	Username  string
	Name      string
	AvatarURL string
}

func UserBody(body map[string]any) (NewUser, error) {
	var payload NewUser
	for key := range body {
		if key != "username" && key != "name" && key != "avatar_url" {
			return payload, apperr.Invalid("The request body must be structured as follows: { username: your_username, name: your name, avatar_url: optional URL }")
		}
	}
	username, ok := body["username"].(string)
	if !ok || username == "" {
		return payload, apperr.Invalid("The request body must be structured as follows: { username: your_username, name: your name, avatar_url: optional URL }")
	}
	name, ok := body["name"].(string)
	if !ok || name == "" {
		return payload, apperr.Invalid("The request body must be structured as follows: { username: your_username, name: your name, avatar_url: optional URL }")
	}
	payload.Username = username
	payload.Name = name
	if raw, ok := body["avatar_url"]; ok {
		url, ok := raw.(string)
		if !ok {
			return payload, apperr.Invalid("Avatar URL must be a string")
		}
		payload.AvatarURL = url
	}
	return payload, nil
}

// AvatarBody validates a PATCH user body. avatar_url is optional; omitting
// it resets the avatar to the placeholder.
func AvatarBody(body map[string]any) (string, error) {
	for key := range body {
		if key != "avatar_url" {
			return "", apperr.Invalid("The request body must be structured as follows: { avatar_url: your new avatar URL }")
		}
	}
	if raw, ok := body["avatar_url"]; ok {
		url, ok := raw.(string)
		if !ok || url == "" {
			return "", apperr.Invalid("Avatar URL must be a non-empty string")
		}
		return url, nil
	}
	return "", nil
}

// votesDelta enforces that an inc_votes value decoded from JSON is an
// integer. JSON numbers arrive as float64.
func votesDelta(raw any) (int, error) {
	f, ok := raw.(float64)
	if !ok || f != math.Trunc(f) {
		return 0, apperr.Invalid("Votes must be an integer")
	}
	return int(f), nil
}
