package routes

import (
	controller "go-restaurant-reservation/controllers"
	"go-restaurant-reservation/middleware"

	"github.com/gin-gonic/gin"
)

func OrderRoutes(incomingRoutes *gin.Engine) {
	incomingRoutes.GET("/orders", controller.GetOrders())
	incomingRoutes.GET("/orders/:order_id", controller.GetOrder())
	incomingRoutes.POST("/orders", controller.CreateOrder())
	incomingRoutes.PATCH("/orders/:order_id/status", middleware.AdminOnly(), controller.UpdateOrderStatus())
	incomingRoutes.GET("/orderswithitems", middleware.AdminOnly(), controller.GetAllOrdersWithItems())
}

func OrderItemRoutes(incomingRoutes *gin.Engine) {
	incomingRoutes.GET("/orderitems", middleware.AdminOnly(), controller.GetOrderItems())
	incomingRoutes.GET("/orderitems/:order_id", controller.GetOrderItemsByOrder())
	incomingRoutes.PATCH("/orderitems/:order_item_id", controller.UpdateOrderItem())
}
