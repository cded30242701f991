package handler

import (
	"net/http"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"tech-oh/internal/domain"
	"tech-oh/internal/mocks"
)

func profileRouter(h *ProfileHandler) *gin.Engine {
	router := authedRouter()
	router.GET("/api/v1/profile", h.Get)
	router.PUT("/api/v1/profile", h.Upsert)
	return router
}

func sampleProfile() domain.Profile {
	now := time.Date(2024, 6, 1, 9, 30, 0, 0, time.UTC)
	return domain.Profile{UserID: testCaller.ID, Username: "ada", FullName: "Ada Lovelace", CreatedAt: now, UpdatedAt: now}
}

func TestProfileHandler_Get(t *testing.T) {
	t.Run("existing profile", func(t *testing.T) {
		mockService := mocks.NewMockProfileServiceInterface(t)
		mockService.EXPECT().GetProfile(mock.Anything, testCaller.ID).Return(sampleProfile(), nil)

		w := doRequest(profileRouter(NewProfileHandler(mockService)), http.MethodGet, "/api/v1/profile", nil)

		requireStatus(t, w, http.StatusOK)
		assert.Equal(t, "ada", decode[ProfileResponse](t, w).Username)
	})

	t.Run("no profile yet is 404", func(t *testing.T) {
		mockService := mocks.NewMockProfileServiceInterface(t)
		mockService.EXPECT().GetProfile(mock.Anything, testCaller.ID).Return(domain.Profile{}, domain.ErrNotFound)

		w := doRequest(profileRouter(NewProfileHandler(mockService)), http.MethodGet, "/api/v1/profile", nil)

		requireStatus(t, w, http.StatusNotFound)
	})
}

func TestProfileHandler_Upsert(t *testing.T) {
	t.Run("stores the full record", func(t *testing.T) {
		mockService := mocks.NewMockProfileServiceInterface(t)
		bio := "Writes about engines"

		mockService.EXPECT().
			UpsertProfile(mock.Anything, testCaller.ID, domain.ProfileFields{Username: "ada", FullName: "Ada Lovelace", Bio: &bio}).
			Return(sampleProfile(), nil)

		w := doRequest(profileRouter(NewProfileHandler(mockService)), http.MethodPut, "/api/v1/profile",
			map[string]any{"username": "ada", "full_name": "Ada Lovelace", "bio": bio})

		requireStatus(t, w, http.StatusOK)
		assert.Equal(t, testCaller.ID, decode[ProfileResponse](t, w).UserID)
	})

	t.Run("taken username is 400", func(t *testing.T) {
		mockService := mocks.NewMockProfileServiceInterface(t)
		mockService.EXPECT().
			UpsertProfile(mock.Anything, testCaller.ID, mock.Anything).
			Return(domain.Profile{}, domain.NewValidationError("username", "username_taken"))

		w := doRequest(profileRouter(NewProfileHandler(mockService)), http.MethodPut, "/api/v1/profile",
			map[string]any{"username": "ada", "full_name": "Ada Lovelace"})

		requireStatus(t, w, http.StatusBadRequest)
		assert.Equal(t, "username_taken", decode[ErrorResponse](t, w).Fields["username"])
	})
}
