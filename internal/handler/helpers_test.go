package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"tech-oh/internal/domain"
	"tech-oh/internal/middleware"
)

func init() {
	gin.SetMode(gin.TestMode)
}

var testCaller = domain.Identity{ID: uuid.New().String(), Email: "author@example.com"}

// authedRouter returns a router that treats every request as coming from testCaller.
func authedRouter() *gin.Engine {
	router := gin.New()
	router.Use(func(c *gin.Context) {
		c.Set(middleware.IdentityKey, testCaller)
		c.Next()
	})
	return router
}

func doRequest(router *gin.Engine, method, target string, body any) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	switch b := body.(type) {
	case nil:
		reader = bytes.NewReader(nil)
	case string:
		reader = bytes.NewReader([]byte(b))
	default:
		data, _ := json.Marshal(b)
		reader = bytes.NewReader(data)
	}

	req := httptest.NewRequest(method, target, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &v), w.Body.String())
	return v
}

func sampleArticle() domain.Article {
	now := time.Date(2024, 6, 1, 9, 30, 0, 0, time.UTC)
	return domain.Article{
		ID:        uuid.New().String(),
		AuthorID:  testCaller.ID,
		Title:     "Hello",
		Content:   "World",
		Status:    domain.StatusDraft,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func requireStatus(t *testing.T, w *httptest.ResponseRecorder, code int) {
	t.Helper()
	require.Equal(t, code, w.Code, w.Body.String())
	if code != http.StatusNoContent {
		require.NotEmpty(t, w.Body.String())
	}
}
