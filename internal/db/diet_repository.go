package db

import (
	"errors"
	"time"

	"github.com/terraincognita07/kalori/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var errUserDietMissing = errors.New("user diet missing")

type DietRepository struct {
	database *gorm.DB
}

func NewDietRepository(database *gorm.DB) *DietRepository {
	return &DietRepository{database: database}
}

func (repo *DietRepository) ListCatalog(category string) ([]models.DietPlan, error) {
	plans := make([]models.DietPlan, 0)
	query := repo.database.Model(&models.DietPlan{})
	if category != "" {
		query = query.Where("category = ?", category)
	}
	if err := query.Order("name ASC, id ASC").Find(&plans).Error; err != nil {
		return nil, err
	}
	return plans, nil
}

func (repo *DietRepository) FindCatalogByID(dietID string) (models.DietPlan, bool, error) {
	var plan models.DietPlan
	result := repo.database.Where("id = ?", dietID).Limit(1).Find(&plan)
	if result.Error != nil {
		return models.DietPlan{}, false, result.Error
	}
	if result.RowsAffected == 0 {
		return models.DietPlan{}, false, nil
	}
	return plan, true, nil
}

func (repo *DietRepository) CountCatalog() (int64, error) {
	var count int64
	if err := repo.database.Model(&models.DietPlan{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (repo *DietRepository) UpsertCatalog(plans []models.DietPlan) error {
	if len(plans) == 0 {
		return nil
	}
	return repo.database.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		UpdateAll: true,
	}).Create(&plans).Error
}

func (repo *DietRepository) ListUserDiets(userID string) ([]models.UserDiet, error) {
	diets := make([]models.UserDiet, 0)
	if err := repo.database.
		Where("user_id = ?", userID).
		Order("created_at DESC, id DESC").
		Find(&diets).Error; err != nil {
		return nil, err
	}
	return diets, nil
}

func (repo *DietRepository) CreateUserDiet(diet *models.UserDiet) error {
	return repo.database.Create(diet).Error
}

func (repo *DietRepository) DeleteUserDiet(userID string, userDietID string) (bool, error) {
	result := repo.database.Where("id = ? AND user_id = ?", userDietID, userID).Delete(&models.UserDiet{})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

// ActivateUserDiet deactivates every diet of the user and then activates the given one.
// Both steps share a transaction, so an unknown id leaves the previous active diet in place.
func (repo *DietRepository) ActivateUserDiet(userID string, userDietID string, startedAt time.Time) (bool, error) {
	err := repo.database.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.UserDiet{}).
			Where("user_id = ? AND is_active = ?", userID, true).
			Update("is_active", false).Error; err != nil {
			return err
		}

		result := tx.Model(&models.UserDiet{}).
			Where("id = ? AND user_id = ?", userDietID, userID).
			Updates(map[string]any{
				"is_active":  true,
				"started_at": startedAt,
			})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return errUserDietMissing
		}
		return nil
	})
	if errors.Is(err, errUserDietMissing) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}
