package handlers

import (
	"errors"
	"net/http"

	response "archmarket/internal/adapter/http/dto/response"
	"archmarket/internal/usecase"
	"archmarket/pkg"

	"github.com/gin-gonic/gin"
)

// CheckoutHandler turns the caller's active cart into a pending order.
type CheckoutHandler struct {
	usecase usecase.ICheckoutUseCase
}

func NewCheckoutHandler(uc usecase.ICheckoutUseCase) *CheckoutHandler {
	return &CheckoutHandler{usecase: uc}
}

func (h *CheckoutHandler) Checkout(c *gin.Context) {
	userID, userEmail, ok := requireUser(c)
	if !ok {
		return
	}

	result, err := h.usecase.Checkout(c.Request.Context(), userID, userEmail)
	if err != nil {
		appErr := mapCheckoutError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromCheckoutResult(result))
}

// SimulateCheckout is the sandbox-only variant that force-completes the
// order without a real payment. Disabled unless the sandbox gate is set.
func (h *CheckoutHandler) SimulateCheckout(c *gin.Context) {
	userID, userEmail, ok := requireUser(c)
	if !ok {
		return
	}

	result, err := h.usecase.SimulateCompletion(c.Request.Context(), userID, userEmail)
	if err != nil {
		appErr := mapCheckoutError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromCheckoutResult(result))
}

func mapCheckoutError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidUserID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrNoActiveCart):
		return pkg.NewDomainErrorSimple("NO_ACTIVE_CART", "No active cart", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrEmptyCart):
		return pkg.NewDomainErrorSimple("EMPTY_CART", "Cart is empty", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPaymentGatewayUnavailable):
		return pkg.NewDomainErrorSimple("PAYMENT_GATEWAY_UNAVAILABLE", "Payment gateway unavailable", http.StatusBadGateway)
	case errors.Is(err, usecase.ErrSandboxCheckoutDisabled):
		return pkg.NewDomainErrorSimple("SANDBOX_DISABLED", "Sandbox checkout disabled", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
