package router

import (
	"github.com/gin-gonic/gin"

	"github.com/obsidianspecter/demo-delivery/internal/interfaces/http/handler"
	"github.com/obsidianspecter/demo-delivery/pkg/metrics"
)

func RegisterRoutes(r *gin.Engine, menuHandler *handler.MenuHandler, orderHandler *handler.OrderHandler) {
	api := r.Group("/api")
	{
		api.GET("/menu", menuHandler.GetMenu)

		api.POST("/orders", orderHandler.PlaceOrder)
		api.GET("/orders", orderHandler.GetOrder)
		api.PATCH("/orders/:orderId/status", orderHandler.UpdateStatus)
		api.PATCH("/orders/:orderId/table", orderHandler.UpdateTable)

		api.GET("/kitchen/orders", orderHandler.ListOrders)
	}

	r.GET("/metrics", gin.WrapH(metrics.Handler()))
}
