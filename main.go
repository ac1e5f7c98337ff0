package main

import (
	"log"
	"os"
	"time"

	"go-restaurant-reservation/database"
	middleware "go-restaurant-reservation/middleware"
	routes "go-restaurant-reservation/routes"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	err := godotenv.Load(".env")
	if err != nil {
		log.Println("No .env file found, relying on environment")
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "8000"
	}

	database.EnsureIndexes(database.Client)

	router := gin.New()
	router.Use(gin.Logger())
	router.Use(gin.Recovery())

	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:9000"},
		AllowMethods:     []string{"POST", "GET", "PATCH", "DELETE", "PUT", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "token"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	limiter := middleware.NewRateLimiter()
	router.Use(limiter.Limit())

	// Public surface
	routes.UserRoutes(router)
	routes.MenuRoutes(router)
	routes.TableRoutes(router)
	routes.ContactRoutes(router)

	// Everything below requires a valid session token
	router.Use(middleware.Authentication())
	routes.ProfileRoutes(router)
	routes.TableAdminRoutes(router)
	routes.BookingRoutes(router)
	routes.MenuAdminRoutes(router)
	routes.OrderRoutes(router)
	routes.OrderItemRoutes(router)
	routes.AdminRoutes(router)

	router.Run(":" + port)
}
