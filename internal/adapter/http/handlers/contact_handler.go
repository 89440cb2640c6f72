package handlers

import (
	"errors"
	"net/http"

	request "archmarket/internal/adapter/http/dto/request"
	response "archmarket/internal/adapter/http/dto/response"
	"archmarket/internal/usecase"
	"archmarket/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidContactPayload = pkg.NewDomainErrorSimple("INVALID_CONTACT_INPUT", "Invalid contact payload", http.StatusBadRequest)

// ContactHandler receives storefront contact-form submissions.
type ContactHandler struct {
	usecase usecase.IContactUseCase
}

func NewContactHandler(uc usecase.IContactUseCase) *ContactHandler {
	return &ContactHandler{usecase: uc}
}

func (h *ContactHandler) Submit(c *gin.Context) {
	var payload request.ContactRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidContactPayload.HTTPStatus, errInvalidContactPayload.ToHTTPError())
		return
	}

	message, err := h.usecase.Submit(c.Request.Context(), payload.ToEntity())
	if err != nil {
		appErr := mapContactError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromContactMessage(message))
}

func mapContactError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidContactMessage):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrNotificationFailed):
		return pkg.NewDomainErrorSimple("NOTIFICATION_FAILED", "Could not relay the message", http.StatusBadGateway)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
