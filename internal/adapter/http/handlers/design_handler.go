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

var errInvalidDesignPayload = pkg.NewDomainErrorSimple("INVALID_DESIGN_INPUT", "Invalid design payload", http.StatusBadRequest)

// DesignHandler handles HTTP requests for the design calculator.
type DesignHandler struct {
	usecase usecase.IDesignUseCase
}

func NewDesignHandler(uc usecase.IDesignUseCase) *DesignHandler {
	return &DesignHandler{usecase: uc}
}

// CreateEntry runs the area calculation and persists the quote.
func (h *DesignHandler) CreateEntry(c *gin.Context) {
	var payload request.DesignRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidDesignPayload.HTTPStatus, errInvalidDesignPayload.ToHTTPError())
		return
	}

	if !payload.Complete() {
		c.JSON(http.StatusBadRequest, pkg.NewDomainErrorSimple("MISSING_DESIGN_DATA", "Faltan datos", http.StatusBadRequest).ToHTTPError())
		return
	}

	entry, err := h.usecase.CreateEntry(c.Request.Context(), payload.ResolveAreaTotal(), payload.ResolveOptions(), payload.Email)
	if err != nil {
		appErr := mapDesignError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromDesignEntry(entry))
}

// ListEntries returns all persisted design quotes.
func (h *DesignHandler) ListEntries(c *gin.Context) {
	entries, err := h.usecase.ListEntries(c.Request.Context())
	if err != nil {
		appErr := mapDesignError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromDesignEntries(entries))
}

func mapDesignError(err error) *pkg.AppError {
	var insufficient *entities.InsufficientAreaError
	switch {
	case errors.As(err, &insufficient):
		// The calculator message is part of the public contract.
		return pkg.NewDomainErrorSimple("INSUFFICIENT_AREA", insufficient.Error(), http.StatusBadRequest)
	case errors.Is(err, usecase.ErrMissingDesignData):
		return pkg.NewDomainErrorSimple("MISSING_DESIGN_DATA", "Faltan datos", http.StatusBadRequest)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
