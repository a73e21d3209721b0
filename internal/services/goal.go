package services

import (
	"math"
	"strings"
)

type Gender string

const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
)

func ParseGender(raw string) (Gender, bool) {
	switch Gender(strings.ToLower(strings.TrimSpace(raw))) {
	case GenderMale:
		return GenderMale, true
	case GenderFemale:
		return GenderFemale, true
	default:
		return GenderFemale, false
	}
}

type ActivityLevel string

const (
	ActivitySedentary  ActivityLevel = "sedentary"
	ActivityLight      ActivityLevel = "light"
	ActivityModerate   ActivityLevel = "moderate"
	ActivityActive     ActivityLevel = "active"
	ActivityVeryActive ActivityLevel = "very_active"
)

var activityFactors = map[ActivityLevel]float64{
	ActivitySedentary:  1.2,
	ActivityLight:      1.375,
	ActivityModerate:   1.55,
	ActivityActive:     1.725,
	ActivityVeryActive: 1.9,
}

func ParseActivityLevel(raw string) (ActivityLevel, bool) {
	level := ActivityLevel(strings.ToLower(strings.TrimSpace(raw)))
	if _, ok := activityFactors[level]; !ok {
		return ActivitySedentary, false
	}
	return level, true
}

// Factor falls back to the sedentary multiplier for unknown labels.
func (level ActivityLevel) Factor() float64 {
	if factor, ok := activityFactors[level]; ok {
		return factor
	}
	return activityFactors[ActivitySedentary]
}

// BasalMetabolicRate uses the revised Harris-Benedict equations; anything but male takes the female branch.
func BasalMetabolicRate(heightCM float64, weightKG float64, age int, gender Gender) float64 {
	years := float64(age)
	if gender == GenderMale {
		return 88.362 + 13.397*weightKG + 4.799*heightCM - 5.677*years
	}
	return 447.593 + 9.247*weightKG + 3.098*heightCM - 4.330*years
}

func CalorieGoal(heightCM float64, weightKG float64, age int, gender Gender, level ActivityLevel) int {
	return int(math.Floor(BasalMetabolicRate(heightCM, weightKG, age, gender) * level.Factor()))
}
