package controllers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/zakariamer/fitnessWebsite/config"
	"github.com/zakariamer/fitnessWebsite/services"
	"github.com/zakariamer/fitnessWebsite/utils"

	"github.com/gin-gonic/gin"
)

func calorieService() *services.CalorieService {
	return services.NewCalorieService(services.NewGormCalorieStore(config.DB))
}

func ListCalories(c *gin.Context) {
	userID := c.GetUint("userID")

	entries, err := calorieService().List(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"items": entries})
}

type AddCalorieInput struct {
	Description string  `json:"description"`
	Calories    float64 `json:"calories"`
}

func AddCalorie(c *gin.Context) {
	userID := c.GetUint("userID")

	var input AddCalorieInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	entry, err := calorieService().Append(userID, input.Description, input.Calories, time.Now().UTC())
	if err != nil {
		if errors.Is(err, services.ErrNegativeCalories) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, entry)
}

func DeleteCalorie(c *gin.Context) {
	userID := c.GetUint("userID")

	entryID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid entry id"})
		return
	}

	// Idempotent: deleting a nonexistent or non-owned entry still succeeds.
	if err := calorieService().Delete(userID, uint(entryID)); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

// CalorieSummary reports the two windows the dashboard shows: today's
// calendar day and the trailing seven days.
func CalorieSummary(c *gin.Context) {
	userID := c.GetUint("userID")
	svc := calorieService()
	now := time.Now().UTC()

	dayStart, dayEnd := services.DayWindow(now)
	today, err := svc.SumWindow(userID, dayStart, dayEnd)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	weekStart, weekEnd := services.TrailingWeekWindow(now)
	week, err := svc.SumWindow(userID, weekStart, weekEnd)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"today": utils.Round1(today),
		"week":  utils.Round1(week),
	})
}
