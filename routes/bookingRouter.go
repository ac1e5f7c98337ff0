package routes

import (
	controller "go-restaurant-reservation/controllers"
	"go-restaurant-reservation/middleware"

	"github.com/gin-gonic/gin"
)

func BookingRoutes(incomingRoutes *gin.Engine) {
	incomingRoutes.GET("/bookings", controller.GetBookings())
	incomingRoutes.GET("/bookings/:booking_id", controller.GetBooking())
	incomingRoutes.GET("/bookingsByDates/:startDate/:endDate", middleware.AdminOnly(), controller.GetBookingsByDate())
	incomingRoutes.POST("/bookings", controller.CreateBooking())
	incomingRoutes.PATCH("/bookings/:booking_id/status", middleware.AdminOnly(), controller.UpdateBookingStatus())
	incomingRoutes.PATCH("/bookings/:booking_id/cancel", controller.CancelBooking())
}
