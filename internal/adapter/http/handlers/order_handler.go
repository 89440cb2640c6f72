package handlers

import (
	"errors"
	"net/http"

	response "archmarket/internal/adapter/http/dto/response"
	"archmarket/internal/usecase"
	"archmarket/pkg"

	"github.com/gin-gonic/gin"
)

// OrderHandler serves order history and the manual fulfillment re-send.
type OrderHandler struct {
	usecase usecase.IOrderUseCase
}

func NewOrderHandler(uc usecase.IOrderUseCase) *OrderHandler {
	return &OrderHandler{usecase: uc}
}

func (h *OrderHandler) ListOrders(c *gin.Context) {
	userID, _, ok := requireUser(c)
	if !ok {
		return
	}

	orders, err := h.usecase.ListByUser(c.Request.Context(), userID)
	if err != nil {
		appErr := mapOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromOrders(orders))
}

func (h *OrderHandler) GetOrder(c *gin.Context) {
	userID, _, ok := requireUser(c)
	if !ok {
		return
	}

	order, err := h.usecase.GetByID(c.Request.Context(), userID, c.Param("id"))
	if err != nil {
		appErr := mapOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromOrder(order))
}

// ResendFulfillment re-runs the zip delivery email for an order.
func (h *OrderHandler) ResendFulfillment(c *gin.Context) {
	userID, _, ok := requireUser(c)
	if !ok {
		return
	}

	result, err := h.usecase.ResendFulfillment(c.Request.Context(), userID, c.Param("id"))
	if err != nil {
		appErr := mapOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromNotifyResult(result))
}

func mapOrderError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidUserID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrOrderNotFound):
		return pkg.NewDomainErrorSimple("ORDER_NOT_FOUND", "Order not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrNoRecipient):
		return pkg.NewDomainErrorSimple("NO_RECIPIENT", "No recipient email for order", http.StatusBadRequest)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
