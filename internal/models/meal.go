package models

import "time"

type MealType string

const (
	MealTypeBreakfast MealType = "breakfast"
	MealTypeLunch     MealType = "lunch"
	MealTypeDinner    MealType = "dinner"
	MealTypeSnack     MealType = "snack"
)

// ParseMealType maps a free-form tag onto the closed set; unknown tags become snacks.
func ParseMealType(raw string) MealType {
	switch MealType(raw) {
	case MealTypeBreakfast, MealTypeLunch, MealTypeDinner, MealTypeSnack:
		return MealType(raw)
	default:
		return MealTypeSnack
	}
}

type Meal struct {
	ID          string    `gorm:"primaryKey" json:"meal_id"`
	UserID      string    `gorm:"not null;index:idx_meals_user_timestamp" json:"user_id"`
	Name        string    `gorm:"not null" json:"name"`
	Calories    int       `gorm:"not null" json:"calories"`
	Protein     float64   `gorm:"not null" json:"protein"`
	Carbs       float64   `gorm:"not null" json:"carbs"`
	Fat         float64   `gorm:"not null" json:"fat"`
	ImageBase64 string    `json:"image_base64"`
	ImageURL    string    `json:"image_url,omitempty"`
	MealType    MealType  `gorm:"not null" json:"meal_type"`
	Timestamp   time.Time `gorm:"not null;index:idx_meals_user_timestamp" json:"timestamp"`
}
