package handlers

import (
	"errors"
	"net/http"

	request "archmarket/internal/adapter/http/dto/request"
	response "archmarket/internal/adapter/http/dto/response"
	"archmarket/internal/domain/entities"
	"archmarket/internal/usecase"
	"archmarket/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidEngagementPayload = pkg.NewDomainErrorSimple("INVALID_ENGAGEMENT_INPUT", "Invalid engagement payload", http.StatusBadRequest)

// EngagementHandler handles like/favorite toggles.
type EngagementHandler struct {
	usecase usecase.IEngagementUseCase
}

func NewEngagementHandler(uc usecase.IEngagementUseCase) *EngagementHandler {
	return &EngagementHandler{usecase: uc}
}

func (h *EngagementHandler) Toggle(c *gin.Context) {
	var payload request.ToggleEngagementRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidEngagementPayload.HTTPStatus, errInvalidEngagementPayload.ToHTTPError())
		return
	}

	result, err := h.usecase.Toggle(
		c.Request.Context(),
		entities.EntityKind(c.Param("kind")),
		c.Param("id"),
		payload.ResolveVisitorID(),
		payload.ResolveToggle(),
	)
	if err != nil {
		appErr := mapEngagementError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromToggleResult(result))
}

func (h *EngagementHandler) Counts(c *gin.Context) {
	counts, err := h.usecase.Counts(c.Request.Context(), entities.EntityKind(c.Param("kind")), c.Param("id"))
	if err != nil {
		appErr := mapEngagementError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, counts)
}

func mapEngagementError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidEntityKind),
		errors.Is(err, usecase.ErrInvalidToggleKind),
		errors.Is(err, usecase.ErrInvalidEntityID),
		errors.Is(err, usecase.ErrInvalidVisitorID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
