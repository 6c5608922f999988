package router

import (
	"github.com/ahmed-faraz22/Bite-Xplore-sub000/internal/middleware"
	"github.com/ahmed-faraz22/Bite-Xplore-sub000/internal/rest"

	"github.com/labstack/echo/v4"
)

func SetupRestaurantRoutes(api *echo.Group, handler *rest.RestaurantHandler) {
	restaurants := api.Group("/restaurants")

	restaurants.GET("/:id", handler.GetByID)
	restaurants.POST("", handler.Register, middleware.AuthMiddleware(), middleware.SellerOrAdmin())

	admin := api.Group("/admin/restaurants", middleware.AuthMiddleware(), middleware.AdminOnly())
	admin.PATCH("/:id/verification", handler.SetVerification)
}

func SetupCommissionRoutes(api *echo.Group, handler *rest.CommissionHandler) {
	commission := api.Group("/restaurants/:id/commission", middleware.AuthMiddleware(), middleware.SellerOrAdmin())
	commission.GET("", handler.GetStatus)
	commission.GET("/payments", handler.GetPayments)
	commission.POST("/invoice", handler.CreateInvoice)

	admin := api.Group("/admin/commission", middleware.AuthMiddleware(), middleware.AdminOnly())
	admin.POST("/recalculate", handler.Recalculate)
}

func SetupSliderRoutes(api *echo.Group, handler *rest.SliderHandler) {
	api.GET("/slider", handler.Get)
}

func SetOrdersRoutes(api *echo.Group, ordersHandler *rest.OrdersHandler) {
	orders := api.Group("/orders", middleware.AuthMiddleware())
	orders.POST("", ordersHandler.CreateOrder)
	orders.GET("", ordersHandler.GetAllOrders)
	orders.GET("/:id", ordersHandler.GetOrderByID)
}

func SetWebhookHandler(api *echo.Group, webhookHandler *rest.WebhookHandler) {
	webhook := api.Group("/webhook")
	webhook.POST("/commission", webhookHandler.HandleCommissionWebhook)
}
