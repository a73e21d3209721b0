package models

import "time"

const (
	DefaultWaterGoal = 2500
	DefaultStepGoal  = 10000
)

type User struct {
	ID               string     `gorm:"primaryKey" json:"user_id"`
	Email            string     `gorm:"uniqueIndex;not null" json:"email"`
	Name             string     `gorm:"not null" json:"name"`
	Picture          string     `json:"picture,omitempty"`
	Height           *float64   `json:"height"`
	Weight           *float64   `json:"weight"`
	Age              *int       `json:"age"`
	Gender           *string    `json:"gender"`
	ActivityLevel    *string    `json:"activity_level"`
	DailyCalorieGoal *int       `json:"daily_calorie_goal"`
	WaterGoal        int        `gorm:"not null;default:2500" json:"water_goal"`
	StepGoal         int        `gorm:"not null;default:10000" json:"step_goal"`
	IsPremium        bool       `gorm:"not null;default:false" json:"is_premium"`
	PremiumExpiresAt *time.Time `json:"premium_expires_at"`
	AdsWatched       int        `gorm:"not null;default:0" json:"ads_watched"`
	CreatedAt        time.Time  `gorm:"not null" json:"created_at"`
}

type Session struct {
	ID        uint      `gorm:"primaryKey" json:"-"`
	TokenHash string    `gorm:"uniqueIndex;not null" json:"-"`
	UserID    string    `gorm:"not null;index" json:"user_id"`
	ExpiresAt time.Time `gorm:"not null" json:"expires_at"`
	CreatedAt time.Time `gorm:"not null" json:"created_at"`
}
