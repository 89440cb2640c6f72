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

var errInvalidSiteConfigPayload = pkg.NewDomainErrorSimple("INVALID_SITE_CONFIG_INPUT", "Invalid site config payload", http.StatusBadRequest)

// SiteConfigHandler serves the typed site configuration.
type SiteConfigHandler struct {
	usecase usecase.ISiteConfigUseCase
}

func NewSiteConfigHandler(uc usecase.ISiteConfigUseCase) *SiteConfigHandler {
	return &SiteConfigHandler{usecase: uc}
}

func (h *SiteConfigHandler) Get(c *gin.Context) {
	cfg, err := h.usecase.Get(c.Request.Context())
	if err != nil {
		appErr := mapSiteConfigError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromSiteConfig(cfg))
}

func (h *SiteConfigHandler) Update(c *gin.Context) {
	var payload request.SiteConfigRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidSiteConfigPayload.HTTPStatus, errInvalidSiteConfigPayload.ToHTTPError())
		return
	}

	cfg, err := h.usecase.Update(c.Request.Context(), payload.ToEntity())
	if err != nil {
		appErr := mapSiteConfigError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromSiteConfig(cfg))
}

func mapSiteConfigError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidSiteConfig):
		return pkg.NewDomainErrorSimple("INVALID_SITE_CONFIG", "Invalid site config", http.StatusBadRequest)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
