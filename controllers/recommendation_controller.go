package controllers

import (
	"net/http"

	"github.com/zakariamer/fitnessWebsite/config"
	"github.com/zakariamer/fitnessWebsite/models"
	"github.com/zakariamer/fitnessWebsite/services"

	"github.com/gin-gonic/gin"
)

func GetRecommendations(c *gin.Context) {
	userID := c.GetUint("userID")

	var user models.User
	if err := config.DB.First(&user, userID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
		return
	}

	recs := services.Recommend(user.Age, user.BMI, user.Goal)
	c.JSON(http.StatusOK, gin.H{"recommendations": recs})
}
