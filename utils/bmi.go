package utils

import "math"

// Round1 rounds to one decimal place, halves away from zero.
// Every BMI value and calorie total in the API goes through this.
func Round1(v float64) float64 {
	return math.Round(v*10) / 10
}

// ComputeBMI expects height in centimeters and weight in kilograms.
// ok is false when no BMI can be asserted (height unknown or zero);
// callers are expected to have sanitized negative/garbage input already.
func ComputeBMI(heightCm, weightKg float64) (float64, bool) {
	if heightCm <= 0 {
		return 0, false
	}
	h := heightCm / 100.0 // to meters
	return Round1(weightKg / (h * h)), true
}

// ComputeBMIPtr is ComputeBMI shaped for the nullable profile column.
func ComputeBMIPtr(heightCm, weightKg float64) *float64 {
	bmi, ok := ComputeBMI(heightCm, weightKg)
	if !ok {
		return nil
	}
	return &bmi
}

func BMICategory(bmi float64) string {
	switch {
	case bmi < 18.5:
		return "Underweight"
	case bmi < 25.0:
		return "Normal weight"
	case bmi < 30.0:
		return "Overweight"
	default:
		return "Obese"
	}
}
