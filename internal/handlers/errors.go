package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/gusau-lga/asset_management_app/internal/apperrors"
	"github.com/gusau-lga/asset_management_app/internal/core/domain"
	"github.com/gusau-lga/asset_management_app/internal/middleware"
)

// ErrorResponse is the generic error payload returned by all handlers.
type ErrorResponse struct {
	Error string `json:"error"`
}

// requestLogger returns the request-scoped logger, falling back to the default
// logger when the middleware did not run (tests, stray routes).
func requestLogger(c *gin.Context) *slog.Logger {
	if logger := middleware.GetLoggerFromCtx(c.Request.Context()); logger != nil {
		return logger
	}
	return slog.Default()
}

// handleServiceError maps service-layer errors onto HTTP responses. Every
// handler funnels non-binding errors through here so the apperrors taxonomy
// translates consistently across the API.
func handleServiceError(c *gin.Context, logger *slog.Logger, err error, fallbackMsg string) {
	switch {
	case errors.Is(err, apperrors.ErrValidation):
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	case errors.Is(err, apperrors.ErrUnauthorized):
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Invalid username or password"})
	case errors.Is(err, apperrors.ErrForbidden),
		errors.Is(err, apperrors.ErrLocationDenied),
		errors.Is(err, apperrors.ErrForbiddenTransition):
		c.JSON(http.StatusForbidden, ErrorResponse{Error: err.Error()})
	case errors.Is(err, apperrors.ErrNotFound):
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "Resource not found"})
	case errors.Is(err, apperrors.ErrDuplicate),
		errors.Is(err, apperrors.ErrStaleStatus):
		c.JSON(http.StatusConflict, ErrorResponse{Error: err.Error()})
	case errors.Is(err, apperrors.ErrAssetAlreadyDeleted):
		c.JSON(http.StatusGone, ErrorResponse{Error: err.Error()})
	case errors.Is(err, apperrors.ErrUnknownTransition):
		c.JSON(http.StatusUnprocessableEntity, ErrorResponse{Error: err.Error()})
	default:
		logger.Error(fallbackMsg, slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: fallbackMsg})
	}
}

// currentActor fetches the resolved user placed in the context by
// CurrentUserMiddleware, aborting with 401 when it is missing.
func currentActor(c *gin.Context) (*domain.User, bool) {
	actor, ok := middleware.GetCurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return nil, false
	}
	return actor, true
}
