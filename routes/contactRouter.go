package routes

import (
	controller "go-restaurant-reservation/controllers"

	"github.com/gin-gonic/gin"
)

func ContactRoutes(incomingRoutes *gin.Engine) {
	incomingRoutes.POST("/contact", controller.CreateContactMessage())
}
