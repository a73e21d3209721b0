package models

import "time"

type UserVitamin struct {
	ID        string    `gorm:"primaryKey" json:"vitamin_id"`
	UserID    string    `gorm:"not null;index" json:"user_id"`
	Name      string    `gorm:"not null" json:"name"`
	Time      string    `gorm:"not null" json:"time"`
	IsTaken   bool      `gorm:"not null;default:false" json:"is_taken"`
	Date      string    `gorm:"not null" json:"date"`
	CreatedAt time.Time `gorm:"not null" json:"-"`
}

type VitaminTemplate struct {
	ID          string `json:"vitamin_id"`
	Name        string `json:"name"`
	DefaultTime string `json:"default_time"`
}
