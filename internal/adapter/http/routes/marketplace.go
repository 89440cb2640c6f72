package routes

import (
	"archmarket/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathDesign     = "/design"
	PathProducts   = "/products"
	PathCart       = "/cart"
	PathPayments   = "/payments"
	PathOrders     = "/orders"
	PathEngagement = "/engagement"
	PathSiteConfig = "/site-config"
	PathContact    = "/contact"
)

type marketplaceHandlers struct {
	design     *handlers.DesignHandler
	catalog    *handlers.CatalogHandler
	cart       *handlers.CartHandler
	checkout   *handlers.CheckoutHandler
	webhook    *handlers.WebhookHandler
	order      *handlers.OrderHandler
	engagement *handlers.EngagementHandler
	siteConfig *handlers.SiteConfigHandler
	contact    *handlers.ContactHandler
}

func addMarketplaceRoutes(rg *gin.RouterGroup, h marketplaceHandlers) {
	design := rg.Group(PathDesign)
	{
		design.POST("", h.design.CreateEntry)
		design.GET("/entries", h.design.ListEntries)
	}

	products := rg.Group(PathProducts)
	{
		products.GET("", h.catalog.ListProducts)
		products.GET("/:id", h.catalog.GetProduct)
	}

	cart := rg.Group(PathCart)
	{
		cart.GET("", h.cart.GetCart)
		cart.POST("/items", h.cart.AddItem)
		cart.POST("/items/:item_id", h.cart.UpdateItem)
		cart.DELETE("/items/:item_id", h.cart.RemoveItem)
		cart.POST("/checkout", h.checkout.Checkout)
		cart.POST("/checkout/simulate", h.checkout.SimulateCheckout)
	}

	payments := rg.Group(PathPayments)
	{
		payments.POST("/webhook", h.webhook.HandleWebhook)
	}

	orders := rg.Group(PathOrders)
	{
		orders.GET("", h.order.ListOrders)
		orders.GET("/:id", h.order.GetOrder)
		orders.POST("/:id/notify", h.order.ResendFulfillment)
	}

	engagement := rg.Group(PathEngagement)
	{
		engagement.POST("/:kind/:id/toggle", h.engagement.Toggle)
		engagement.GET("/:kind/:id", h.engagement.Counts)
	}

	siteConfig := rg.Group(PathSiteConfig)
	{
		siteConfig.GET("", h.siteConfig.Get)
		siteConfig.PUT("", h.siteConfig.Update)
	}

	contact := rg.Group(PathContact)
	{
		contact.POST("", h.contact.Submit)
	}
}
