package db

import (
	"time"

	"github.com/terraincognita07/kalori/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type StepLogRepository struct {
	database *gorm.DB
}

func NewStepLogRepository(database *gorm.DB) *StepLogRepository {
	return &StepLogRepository{database: database}
}

// UpsertOverwrite replaces the day's step count regardless of the previous source.
func (repo *StepLogRepository) UpsertOverwrite(userID string, date string, steps int, source models.StepSource) error {
	now := time.Now().UTC()
	entry := models.StepLog{
		UserID:    userID,
		Date:      date,
		Steps:     steps,
		Source:    source,
		UpdatedAt: now,
	}
	return repo.database.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "user_id"}, {Name: "date"}},
		DoUpdates: clause.Assignments(map[string]any{
			"steps":      steps,
			"source":     source,
			"updated_at": now,
		}),
	}).Create(&entry).Error
}

func (repo *StepLogRepository) FindByUserAndDate(userID string, date string) (models.StepLog, bool, error) {
	var stepLog models.StepLog
	result := repo.database.Where("user_id = ? AND date = ?", userID, date).Limit(1).Find(&stepLog)
	if result.Error != nil {
		return models.StepLog{}, false, result.Error
	}
	if result.RowsAffected == 0 {
		return models.StepLog{}, false, nil
	}
	return stepLog, true, nil
}
