package models

import (
	"time"

	"gorm.io/datatypes"
)

type DietCategory string

const (
	DietCategoryWeightLoss DietCategory = "weight_loss"
	DietCategoryBalanced   DietCategory = "balanced"
	DietCategoryMuscleGain DietCategory = "muscle_gain"
	DietCategoryVegetarian DietCategory = "vegetarian"
	DietCategoryOther      DietCategory = "other"
)

func ParseDietCategory(raw string) DietCategory {
	switch DietCategory(raw) {
	case DietCategoryWeightLoss, DietCategoryBalanced, DietCategoryMuscleGain, DietCategoryVegetarian:
		return DietCategory(raw)
	default:
		return DietCategoryOther
	}
}

type DietMeal struct {
	MealType MealType `json:"meal_type"`
	Name     string   `json:"name"`
	Calories int      `json:"calories"`
}

type DietDay struct {
	Day   int        `json:"day"`
	Meals []DietMeal `json:"meals"`
}

type DietPlan struct {
	ID             string                       `gorm:"primaryKey" json:"diet_id"`
	Name           string                       `gorm:"not null" json:"name"`
	Description    string                       `json:"description"`
	DurationDays   int                          `gorm:"not null" json:"duration_days"`
	CaloriesPerDay int                          `gorm:"not null" json:"calories_per_day"`
	Days           datatypes.JSONSlice[DietDay] `json:"days"`
	IsPremium      bool                         `gorm:"not null;default:false" json:"is_premium"`
	Category       DietCategory                 `gorm:"not null" json:"category"`
	ImageURL       string                       `json:"image_url,omitempty"`
}

type UserDiet struct {
	ID             string     `gorm:"primaryKey" json:"id"`
	UserID         string     `gorm:"not null;index" json:"user_id"`
	DietID         *string    `json:"diet_id"`
	Name           string     `gorm:"not null" json:"name"`
	Description    string     `json:"description"`
	CaloriesPerDay int        `gorm:"not null" json:"calories_per_day"`
	DurationDays   int        `gorm:"not null" json:"duration_days"`
	IsCustom       bool       `gorm:"not null;default:false" json:"is_custom"`
	IsActive       bool       `gorm:"not null;default:false" json:"is_active"`
	StartedAt      *time.Time `json:"started_at"`
	CreatedAt      time.Time  `gorm:"not null" json:"created_at"`
}
