package controllers

import (
	"io"
	"log"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/zakariamer/fitnessWebsite/services"
	"github.com/zakariamer/fitnessWebsite/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const uploadDir = "uploads"

var allowedExtensions = map[string]string{
	".png":  "image/png",
	".jpg":  "image/jpeg",
	".jpeg": "image/jpeg",
}

// newFoodIdentifier wires the identification chain from the environment:
// SPOONACULAR_API_KEY enables the Spoonacular classifier + nutrition
// lookup; FOOD_RECOGNIZER=rekognition swaps in AWS Rekognition for
// classification (keeping Spoonacular for nutrition when configured).
// With neither, only the filename and geometry tiers run.
func newFoodIdentifier(c *gin.Context) *services.FoodIdentifier {
	spoon := services.NewSpoonacularService()
	var classifier services.FoodClassifier
	var nutrition services.NutritionLookup

	if os.Getenv("FOOD_RECOGNIZER") == "rekognition" {
		rek, err := services.NewRekognitionService(c.Request.Context())
		if err != nil {
			log.Printf("rekognition unavailable, remote tier disabled: %v", err)
		} else {
			classifier = rek
		}
		if spoon.Configured() {
			nutrition = spoon
		}
	} else if spoon.Configured() {
		classifier = spoon
		nutrition = spoon
	}

	return services.NewFoodIdentifier(classifier, nutrition)
}

// UploadPhoto accepts a multipart "photo" field, stores the image, runs
// the food identifier on it and returns the estimate alongside the stored
// image URL. The client decides whether to log the estimate as a calorie
// entry via the calorie API.
func UploadPhoto(c *gin.Context) {
	header, err := c.FormFile("photo")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing file"})
		return
	}

	ext := strings.ToLower(filepath.Ext(header.Filename))
	contentType, ok := allowedExtensions[ext]
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid file"})
		return
	}

	file, err := header.Open()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not read file"})
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not read file"})
		return
	}

	name := uuid.NewString() + "_" + filepath.Base(header.Filename)

	var imageURL string
	if utils.S3Enabled() {
		imageURL, err = utils.UploadImageToS3(c.Request.Context(), data, "uploads/"+name, contentType)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "upload failed", "detail": err.Error()})
			return
		}
	} else {
		if err := os.MkdirAll(uploadDir, 0o755); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "upload failed"})
			return
		}
		if err := os.WriteFile(filepath.Join(uploadDir, name), data, 0o644); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "upload failed"})
			return
		}
		imageURL = "/uploads/" + name
	}

	result := newFoodIdentifier(c).Identify(c.Request.Context(), data, header.Filename)

	c.JSON(http.StatusOK, gin.H{
		"result":    result,
		"image_url": imageURL,
	})
}
