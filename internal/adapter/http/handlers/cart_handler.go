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

var errInvalidCartPayload = pkg.NewDomainErrorSimple("INVALID_CART_INPUT", "Invalid cart payload", http.StatusBadRequest)

// CartHandler handles HTTP requests for the shopping cart.
type CartHandler struct {
	usecase usecase.ICartUseCase
}

func NewCartHandler(uc usecase.ICartUseCase) *CartHandler {
	return &CartHandler{usecase: uc}
}

// GetCart resolves (or creates) the caller's active cart.
func (h *CartHandler) GetCart(c *gin.Context) {
	userID, _, ok := requireUser(c)
	if !ok {
		return
	}

	cart, err := h.usecase.ActiveCart(c.Request.Context(), userID)
	if err != nil {
		appErr := mapCartError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromCart(cart))
}

// AddItem adds a product line, replacing quantity and price if the product
// is already in the cart.
func (h *CartHandler) AddItem(c *gin.Context) {
	userID, _, ok := requireUser(c)
	if !ok {
		return
	}

	var payload request.AddCartItemRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidCartPayload.HTTPStatus, errInvalidCartPayload.ToHTTPError())
		return
	}

	cart, err := h.usecase.AddItem(
		c.Request.Context(),
		userID,
		payload.ResolveProductID(),
		payload.Quantity,
		payload.ResolvePlanType(),
		payload.ResolveAreaUnit(),
		payload.ResolvePrice(),
	)
	if err != nil {
		appErr := mapCartError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromCart(cart))
}

// UpdateItem changes a line's quantity; zero or negative removes it.
func (h *CartHandler) UpdateItem(c *gin.Context) {
	userID, _, ok := requireUser(c)
	if !ok {
		return
	}

	var payload request.UpdateCartItemRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidCartPayload.HTTPStatus, errInvalidCartPayload.ToHTTPError())
		return
	}

	cart, err := h.usecase.UpdateItemQuantity(c.Request.Context(), userID, c.Param("item_id"), payload.ResolveQuantity())
	if err != nil {
		appErr := mapCartError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromCart(cart))
}

func (h *CartHandler) RemoveItem(c *gin.Context) {
	userID, _, ok := requireUser(c)
	if !ok {
		return
	}

	cart, err := h.usecase.RemoveItem(c.Request.Context(), userID, c.Param("item_id"))
	if err != nil {
		appErr := mapCartError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromCart(cart))
}

func mapCartError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidUserID), errors.Is(err, usecase.ErrInvalidProductID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidQuantity):
		return pkg.NewDomainErrorSimple("INVALID_QUANTITY", "Quantity must be positive", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidPrice):
		return pkg.NewDomainErrorSimple("INVALID_PRICE", "Price must not be negative", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrProductNotFound):
		return pkg.NewDomainErrorSimple("PRODUCT_NOT_FOUND", "Product not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrCartItemNotFound):
		return pkg.NewDomainErrorSimple("CART_ITEM_NOT_FOUND", "Cart item not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
