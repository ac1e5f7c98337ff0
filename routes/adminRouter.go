package routes

import (
	controller "go-restaurant-reservation/controllers"
	"go-restaurant-reservation/middleware"

	"github.com/gin-gonic/gin"
)

func AdminRoutes(incomingRoutes *gin.Engine) {
	incomingRoutes.GET("/admin/dashboard-stats", middleware.AdminOnly(), controller.GetDashboardStats())
	incomingRoutes.GET("/admin/contact-messages", middleware.AdminOnly(), controller.GetContactMessages())
}
