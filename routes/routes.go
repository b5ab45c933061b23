package routes

import (
	"github.com/zakariamer/fitnessWebsite/controllers"
	"github.com/zakariamer/fitnessWebsite/middlewares"

	"github.com/gin-gonic/gin"
)

func SetupRouter() *gin.Engine {
	r := gin.Default()

	// Public auth routes
	auth := r.Group("/auth")
	{
		auth.POST("/register", controllers.Register)
		auth.POST("/login", controllers.Login)
	}

	// Protected API routes
	api := r.Group("/api")
	api.Use(middlewares.AuthMiddleware())
	{
		api.GET("/profile", controllers.GetProfile)
		api.PUT("/profile", controllers.UpdateProfile)

		api.GET("/recommendations", controllers.GetRecommendations)

		api.GET("/calories", controllers.ListCalories)
		api.POST("/calories", controllers.AddCalorie)
		api.DELETE("/calories/:id", controllers.DeleteCalorie)
		api.GET("/calories/summary", controllers.CalorieSummary)

		api.POST("/photos", controllers.UploadPhoto)
	}

	// Locally stored upload images
	r.Static("/uploads", "./uploads")

	return r
}
