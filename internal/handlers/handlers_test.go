package handlers_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"newsdesk/internal/db"
	"newsdesk/internal/router"
)

// newServer builds the real router over an in-memory SQLite database loaded
// with the fixture data set.
func newServer(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	database, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Discard,
	})
	require.NoError(t, err)
	sqlDB, err := database.DB()
	require.NoError(t, err)
	sqlDB.SetMaxIdleConns(1)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.Migrate(database))
	require.NoError(t, db.Seed(database))

	return router.New(database, zap.NewNop()), database
}

func request(t *testing.T, r *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var reader io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(buf)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	out := map[string]any{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}

// obj digs a nested JSON object out of a decoded response.
func obj(t *testing.T, body map[string]any, key string) map[string]any {
	t.Helper()
	nested, ok := body[key].(map[string]any)
	require.True(t, ok, "expected %q to be an object, got %T", key, body[key])
	return nested
}

// list digs a JSON array out of a decoded response.
func list(t *testing.T, body map[string]any, key string) []any {
	t.Helper()
	items, ok := body[key].([]any)
	require.True(t, ok, "expected %q to be an array, got %T", key, body[key])
	return items
}

func rowCount(t *testing.T, database *gorm.DB, table string) int64 {
	t.Helper()
	var count int64
	require.NoError(t, database.Table(table).Count(&count).Error)
	return count
}
