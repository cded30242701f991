package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"tech-oh/internal/domain"
	"tech-oh/internal/service"
)

// AccountHandler serves the signed-in account views.
type AccountHandler struct {
	profileService   service.ProfileServiceInterface
	dashboardService service.DashboardServiceInterface
}

// NewAccountHandler creates a new AccountHandler.
func NewAccountHandler(profileService service.ProfileServiceInterface, dashboardService service.DashboardServiceInterface) *AccountHandler {
	return &AccountHandler{
		profileService:   profileService,
		dashboardService: dashboardService,
	}
}

// Me handles GET /api/v1/me
func (h *AccountHandler) Me(c *gin.Context) {
	caller, ok := identity(c)
	if !ok {
		return
	}

	var profile *domain.Profile
	p, err := h.profileService.GetProfile(c.Request.Context(), caller.ID)
	switch {
	case err == nil:
		profile = &p
	case !errors.Is(err, domain.ErrNotFound):
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, toAccountResponse(caller, profile))
}

// Dashboard handles GET /api/v1/dashboard
func (h *AccountHandler) Dashboard(c *gin.Context) {
	caller, ok := identity(c)
	if !ok {
		return
	}

	d, err := h.dashboardService.Dashboard(c.Request.Context(), caller)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, DashboardResponse{
		Account: toAccountResponse(d.Identity, d.Profile),
		Stats:   toStatsResponse(d.Stats),
	})
}
