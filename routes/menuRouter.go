package routes

import (
	controller "go-restaurant-reservation/controllers"
	"go-restaurant-reservation/middleware"

	"github.com/gin-gonic/gin"
)

// MenuRoutes is the public catalog surface.
func MenuRoutes(incomingRoutes *gin.Engine) {
	incomingRoutes.GET("/menus", controller.GetMenus())
	incomingRoutes.GET("/menus/:menu_id", controller.GetMenu())
	incomingRoutes.GET("/menuitems", controller.GetMenuItems())
	incomingRoutes.GET("/menuitems/:menu_item_id", controller.GetMenuItem())
	incomingRoutes.GET("/menuitemsbymenu/:menu_id", controller.GetMenuItemsByMenu())
}

func MenuAdminRoutes(incomingRoutes *gin.Engine) {
	incomingRoutes.POST("/menus", middleware.AdminOnly(), controller.CreateMenu())
	incomingRoutes.PATCH("/menus/:menu_id", middleware.AdminOnly(), controller.UpdateMenu())
	incomingRoutes.POST("/menuitems", middleware.AdminOnly(), controller.CreateMenuItem())
	incomingRoutes.PATCH("/menuitems/:menu_item_id", middleware.AdminOnly(), controller.UpdateMenuItem())
	incomingRoutes.DELETE("/menuitems/:menu_item_id", middleware.AdminOnly(), controller.DeleteMenuItem())
}
