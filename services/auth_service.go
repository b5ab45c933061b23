package services

import (
	"errors"

	"github.com/zakariamer/fitnessWebsite/config"
	"github.com/zakariamer/fitnessWebsite/models"
	"github.com/zakariamer/fitnessWebsite/utils"
)

// RegisterUser creates the account with its initial body metrics. BMI is
// derived here and on every later metrics update; it is never accepted
// from the client.
func RegisterUser(email, password, fullName string, age int, heightCm, weightKg float64, goal string) (*models.User, error) {
	hashedPassword, err := utils.HashPassword(password)
	if err != nil {
		return nil, err
	}

	user := models.User{
		Email:    email,
		Password: hashedPassword,
		FullName: fullName,
		Age:      age,
		HeightCm: heightCm,
		WeightKg: weightKg,
		BMI:      utils.ComputeBMIPtr(heightCm, weightKg),
		Goal:     NormalizeGoal(goal),
	}

	if err := config.DB.Create(&user).Error; err != nil {
		return nil, errors.New("email already registered or bad data")
	}
	return &user, nil
}

func AuthenticateUser(email, password string) (string, error) {
	var user models.User
	result := config.DB.Where("email = ?", email).First(&user)
	if result.Error != nil {
		return "", errors.New("user not found")
	}

	if !utils.CheckPasswordHash(password, user.Password) {
		return "", errors.New("incorrect password")
	}

	return utils.GenerateJWT(user.Email)
}

func FindUserByEmail(email string) (*models.User, error) {
	var user models.User
	result := config.DB.First(&user, "email = ?", email)
	if result.Error != nil {
		return nil, errors.New("user not found")
	}
	return &user, nil
}
