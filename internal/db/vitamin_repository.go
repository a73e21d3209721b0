package db

import (
	"github.com/terraincognita07/kalori/internal/models"
	"gorm.io/gorm"
)

type VitaminRepository struct {
	database *gorm.DB
}

func NewVitaminRepository(database *gorm.DB) *VitaminRepository {
	return &VitaminRepository{database: database}
}

func (repo *VitaminRepository) Create(vitamin *models.UserVitamin) error {
	return repo.database.Create(vitamin).Error
}

func (repo *VitaminRepository) ListByUser(userID string) ([]models.UserVitamin, error) {
	vitamins := make([]models.UserVitamin, 0)
	if err := repo.database.
		Where("user_id = ?", userID).
		Order("created_at ASC, id ASC").
		Find(&vitamins).Error; err != nil {
		return nil, err
	}
	return vitamins, nil
}

func (repo *VitaminRepository) FindByUserAndID(userID string, vitaminID string) (models.UserVitamin, bool, error) {
	var vitamin models.UserVitamin
	result := repo.database.Where("id = ? AND user_id = ?", vitaminID, userID).Limit(1).Find(&vitamin)
	if result.Error != nil {
		return models.UserVitamin{}, false, result.Error
	}
	if result.RowsAffected == 0 {
		return models.UserVitamin{}, false, nil
	}
	return vitamin, true, nil
}

func (repo *VitaminRepository) SetStatus(userID string, vitaminID string, isTaken bool, date string) error {
	return repo.database.Model(&models.UserVitamin{}).
		Where("id = ? AND user_id = ?", vitaminID, userID).
		Updates(map[string]any{
			"is_taken": isTaken,
			"date":     date,
		}).Error
}

// ResetForDate clears the taken flag and advances the date, but only when the stored date differs.
func (repo *VitaminRepository) ResetForDate(userID string, vitaminID string, date string) (bool, error) {
	result := repo.database.Model(&models.UserVitamin{}).
		Where("id = ? AND user_id = ? AND date <> ?", vitaminID, userID, date).
		Updates(map[string]any{
			"is_taken": false,
			"date":     date,
		})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}
