package services

import (
	"errors"

	"github.com/zakariamer/fitnessWebsite/config"
	"github.com/zakariamer/fitnessWebsite/models"
	"github.com/zakariamer/fitnessWebsite/utils"
)

// ProfileInput carries a partial metrics update. Zero values mean "keep
// the stored value", matching the merge semantics of the profile API.
type ProfileInput struct {
	Age      int     `json:"age"`
	HeightCm float64 `json:"height_cm"`
	WeightKg float64 `json:"weight_kg"`
	Goal     string  `json:"goal"`
}

func GetUserProfile(userID uint) (map[string]interface{}, error) {
	var user models.User
	if err := config.DB.First(&user, userID).Error; err != nil {
		return nil, errors.New("user not found")
	}

	profile := map[string]interface{}{
		"id":         user.ID,
		"email":      user.Email,
		"full_name":  user.FullName,
		"age":        user.Age,
		"height_cm":  user.HeightCm,
		"weight_kg":  user.WeightKg,
		"bmi":        user.BMI,
		"goal":       user.Goal,
		"created_at": user.CreatedAt,
	}
	if user.BMI != nil {
		profile["bmi_category"] = utils.BMICategory(*user.BMI)
	}
	return profile, nil
}

// UpdateUserMetrics merges the supplied fields over the stored profile
// and recomputes BMI from the resulting height and weight. BMI is
// overwritten on every call; it cannot be edited directly.
func UpdateUserMetrics(userID uint, input ProfileInput) (*models.User, error) {
	var user models.User
	if err := config.DB.First(&user, userID).Error; err != nil {
		return nil, errors.New("user not found")
	}

	if input.Age > 0 {
		user.Age = input.Age
	}
	if input.HeightCm > 0 {
		user.HeightCm = input.HeightCm
	}
	if input.WeightKg > 0 {
		user.WeightKg = input.WeightKg
	}
	if input.Goal != "" {
		user.Goal = NormalizeGoal(input.Goal)
	}

	user.BMI = utils.ComputeBMIPtr(user.HeightCm, user.WeightKg)

	if err := config.DB.Save(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}
