package routes

import (
	controller "go-restaurant-reservation/controllers"
	"go-restaurant-reservation/middleware"

	"github.com/gin-gonic/gin"
)

// TableRoutes holds the public availability lookup; the rest of the table
// surface is registered behind authentication.
func TableRoutes(incomingRoutes *gin.Engine) {
	incomingRoutes.GET("/tables/available", controller.GetAvailableTables())
}

func TableAdminRoutes(incomingRoutes *gin.Engine) {
	incomingRoutes.GET("/tables", controller.GetTables())
	incomingRoutes.GET("/tables/:table_id", controller.GetTable())
	incomingRoutes.POST("/tables", middleware.AdminOnly(), controller.CreateTable())
	incomingRoutes.PATCH("/tables/:table_id", middleware.AdminOnly(), controller.UpdateTable())
	incomingRoutes.DELETE("/tables/:table_id", middleware.AdminOnly(), controller.DeleteTable())
}
