package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"tech-oh/internal/domain"
	"tech-oh/internal/service"
)

// ProfileHandler handles the caller's profile requests.
type ProfileHandler struct {
	profileService service.ProfileServiceInterface
}

// NewProfileHandler creates a new ProfileHandler.
func NewProfileHandler(profileService service.ProfileServiceInterface) *ProfileHandler {
	return &ProfileHandler{profileService: profileService}
}

// UpsertProfileRequest represents the body of PUT /api/v1/profile.
// The whole record is replaced; omitted optional fields are cleared.
type UpsertProfileRequest struct {
	Username  string  `json:"username"`
	FullName  string  `json:"full_name"`
	Bio       *string `json:"bio"`
	Website   *string `json:"website"`
	AvatarURL *string `json:"avatar_url"`
}

// Get handles GET /api/v1/profile
func (h *ProfileHandler) Get(c *gin.Context) {
	caller, ok := identity(c)
	if !ok {
		return
	}

	profile, err := h.profileService.GetProfile(c.Request.Context(), caller.ID)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, toProfileResponse(profile))
}

// Upsert handles PUT /api/v1/profile
func (h *ProfileHandler) Upsert(c *gin.Context) {
	caller, ok := identity(c)
	if !ok {
		return
	}

	var req UpsertProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid request body")
		return
	}

	profile, err := h.profileService.UpsertProfile(c.Request.Context(), caller.ID, domain.ProfileFields{
		Username:  req.Username,
		FullName:  req.FullName,
		Bio:       req.Bio,
		Website:   req.Website,
		AvatarURL: req.AvatarURL,
	})
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, toProfileResponse(profile))
}
