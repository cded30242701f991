package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"tech-oh/internal/domain"
	"tech-oh/internal/logger"
	"tech-oh/internal/middleware"
)

// ErrorResponse is the body of every failed request.
type ErrorResponse struct {
	Error  string            `json:"error"`
	Fields map[string]string `json:"fields,omitempty"`
}

// writeError maps a service error onto a status code and an ErrorResponse.
func writeError(c *gin.Context, err error) {
	ctx := c.Request.Context()
	log := logger.FromContext(ctx)

	var verr *domain.ValidationError
	switch {
	case errors.As(err, &verr):
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: domain.ErrValidation.Error(), Fields: verr.Fields})
	case errors.Is(err, domain.ErrValidation):
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: domain.ErrValidation.Error()})
	case errors.Is(err, domain.ErrNotFound):
		c.JSON(http.StatusNotFound, ErrorResponse{Error: domain.ErrNotFound.Error()})
	case errors.Is(err, domain.ErrStoreUnavailable):
		log.ErrorContext(ctx, "store unavailable", "error", err, "path", c.FullPath())
		c.JSON(http.StatusServiceUnavailable, ErrorResponse{Error: "service temporarily unavailable"})
	default:
		log.ErrorContext(ctx, "request failed", "error", err, "path", c.FullPath())
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal server error"})
	}
}

// badRequest reports a malformed body or query string.
func badRequest(c *gin.Context, msg string) {
	c.JSON(http.StatusBadRequest, ErrorResponse{Error: msg})
}

// identity returns the caller set by middleware.Auth, answering 401 when it is missing.
func identity(c *gin.Context) (domain.Identity, bool) {
	id, ok := middleware.GetIdentity(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "unauthenticated"})
		return domain.Identity{}, false
	}
	return id, true
}
