package db

import (
	"time"

	"github.com/terraincognita07/kalori/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type WaterLogRepository struct {
	database *gorm.DB
}

func NewWaterLogRepository(database *gorm.DB) *WaterLogRepository {
	return &WaterLogRepository{database: database}
}

// UpsertIncrement creates the (user, date) total or adds delta to it in a single statement.
func (repo *WaterLogRepository) UpsertIncrement(userID string, date string, delta int) error {
	entry := models.WaterLog{
		UserID:      userID,
		Date:        date,
		TotalAmount: delta,
	}
	return repo.database.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "user_id"}, {Name: "date"}},
		DoUpdates: clause.Assignments(map[string]any{
			"total_amount": gorm.Expr("water_logs.total_amount + excluded.total_amount"),
			"updated_at":   time.Now().UTC(),
		}),
	}).Create(&entry).Error
}

func (repo *WaterLogRepository) AppendEntry(entry *models.WaterLogEntry) error {
	return repo.database.Create(entry).Error
}

// RecordIntake bumps the daily total and appends the detail entry together.
func (repo *WaterLogRepository) RecordIntake(entry *models.WaterLogEntry) error {
	return repo.database.Transaction(func(tx *gorm.DB) error {
		scoped := NewWaterLogRepository(tx)
		if err := scoped.UpsertIncrement(entry.UserID, entry.Date, entry.Amount); err != nil {
			return err
		}
		return scoped.AppendEntry(entry)
	})
}

func (repo *WaterLogRepository) FindByUserAndDate(userID string, date string) (models.WaterLog, bool, error) {
	var waterLog models.WaterLog
	result := repo.database.Where("user_id = ? AND date = ?", userID, date).Limit(1).Find(&waterLog)
	if result.Error != nil {
		return models.WaterLog{}, false, result.Error
	}
	if result.RowsAffected == 0 {
		return models.WaterLog{}, false, nil
	}

	entries := make([]models.WaterLogEntry, 0)
	if err := repo.database.
		Where("user_id = ? AND date = ?", userID, date).
		Order("timestamp ASC, id ASC").
		Find(&entries).Error; err != nil {
		return models.WaterLog{}, false, err
	}
	waterLog.Logs = entries
	return waterLog, true, nil
}

// TotalsByUserAndDates maps each date that has a log to its total; absent dates are omitted.
func (repo *WaterLogRepository) TotalsByUserAndDates(userID string, dates []string) (map[string]int, error) {
	totals := make(map[string]int, len(dates))
	if len(dates) == 0 {
		return totals, nil
	}

	logs := make([]models.WaterLog, 0, len(dates))
	if err := repo.database.
		Select("date", "total_amount").
		Where("user_id = ? AND date IN ?", userID, dates).
		Find(&logs).Error; err != nil {
		return nil, err
	}
	for _, entry := range logs {
		totals[entry.Date] = entry.TotalAmount
	}
	return totals, nil
}
