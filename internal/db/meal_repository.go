package db

import (
	"time"

	"github.com/terraincognita07/kalori/internal/models"
	"gorm.io/gorm"
)

type MealRepository struct {
	database *gorm.DB
}

func NewMealRepository(database *gorm.DB) *MealRepository {
	return &MealRepository{database: database}
}

func (repo *MealRepository) Create(meal *models.Meal) error {
	return repo.database.Create(meal).Error
}

// ListByUserRange returns meals with timestamp in [from, to).
func (repo *MealRepository) ListByUserRange(userID string, from time.Time, to time.Time) ([]models.Meal, error) {
	meals := make([]models.Meal, 0)
	if err := repo.database.
		Where("user_id = ? AND timestamp >= ? AND timestamp < ?", userID, from.UTC(), to.UTC()).
		Order("timestamp ASC, id ASC").
		Find(&meals).Error; err != nil {
		return nil, err
	}
	return meals, nil
}
