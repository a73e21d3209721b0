package models

import "time"

type StepSource string

const (
	StepSourceNone        StepSource = "none"
	StepSourceManual      StepSource = "manual"
	StepSourceGoogleFit   StepSource = "google_fit"
	StepSourceAppleHealth StepSource = "apple_health"
)

func (source StepSource) IsSyncSource() bool {
	return source == StepSourceGoogleFit || source == StepSourceAppleHealth
}

type WaterLog struct {
	ID          uint            `gorm:"primaryKey" json:"-"`
	UserID      string          `gorm:"not null;uniqueIndex:uidx_water_user_date" json:"user_id"`
	Date        string          `gorm:"not null;uniqueIndex:uidx_water_user_date" json:"date"`
	TotalAmount int             `gorm:"not null;default:0" json:"total_amount"`
	Logs        []WaterLogEntry `gorm:"-" json:"logs"`
	CreatedAt   time.Time       `json:"-"`
	UpdatedAt   time.Time       `json:"-"`
}

type WaterLogEntry struct {
	ID        uint      `gorm:"primaryKey" json:"-"`
	UserID    string    `gorm:"not null;index:idx_water_entries_user_date" json:"-"`
	Date      string    `gorm:"not null;index:idx_water_entries_user_date" json:"-"`
	Amount    int       `gorm:"not null" json:"amount"`
	Timestamp time.Time `gorm:"not null" json:"timestamp"`
}

type WaterDay struct {
	Date   string `json:"date"`
	Amount int    `json:"amount"`
}

type StepLog struct {
	ID        uint       `gorm:"primaryKey" json:"-"`
	UserID    string     `gorm:"not null;uniqueIndex:uidx_steps_user_date" json:"user_id"`
	Date      string     `gorm:"not null;uniqueIndex:uidx_steps_user_date" json:"date"`
	Steps     int        `gorm:"not null;default:0" json:"steps"`
	Source    StepSource `gorm:"not null;default:none" json:"source"`
	UpdatedAt time.Time  `json:"updated_at"`
}
