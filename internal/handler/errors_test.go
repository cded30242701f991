package handler

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"tech-oh/internal/domain"
)

func TestWriteError(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantFields map[string]string
	}{
		{"validation with fields", domain.NewValidationError("title", "title_required"), http.StatusBadRequest, map[string]string{"title": "title_required"}},
		{"wrapped validation", fmt.Errorf("upsert profile: %w", domain.NewValidationError("username", "username_taken")), http.StatusBadRequest, map[string]string{"username": "username_taken"}},
		{"not found", fmt.Errorf("get article x: %w", domain.ErrNotFound), http.StatusNotFound, nil},
		{"store unavailable", fmt.Errorf("select: %w: %w", domain.ErrStoreUnavailable, errors.New("conn refused")), http.StatusServiceUnavailable, nil},
		{"unknown", errors.New("boom"), http.StatusInternalServerError, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := gin.New()
			router.GET("/", func(c *gin.Context) { writeError(c, tt.err) })

			w := doRequest(router, http.MethodGet, "/", nil)

			assert.Equal(t, tt.wantStatus, w.Code)
			body := decode[ErrorResponse](t, w)
			assert.NotEmpty(t, body.Error)
			assert.Equal(t, tt.wantFields, body.Fields)
			assert.NotContains(t, body.Error, "conn refused")
		})
	}
}

func TestIdentity_Missing(t *testing.T) {
	router := gin.New()
	router.GET("/", func(c *gin.Context) {
		if _, ok := identity(c); ok {
			c.Status(http.StatusOK)
		}
	})

	w := doRequest(router, http.MethodGet, "/", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
