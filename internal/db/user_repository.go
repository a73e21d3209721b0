package db

import (
	"time"

	"github.com/terraincognita07/kalori/internal/models"
	"gorm.io/gorm"
)

type UserRepository struct {
	database *gorm.DB
}

func NewUserRepository(database *gorm.DB) *UserRepository {
	return &UserRepository{database: database}
}

func (repo *UserRepository) FindByID(userID string) (models.User, bool, error) {
	var user models.User
	result := repo.database.Where("id = ?", userID).Limit(1).Find(&user)
	if result.Error != nil {
		return models.User{}, false, result.Error
	}
	if result.RowsAffected == 0 {
		return models.User{}, false, nil
	}
	return user, true, nil
}

func (repo *UserRepository) FindByEmail(email string) (models.User, bool, error) {
	var user models.User
	result := repo.database.Where("email = ?", email).Limit(1).Find(&user)
	if result.Error != nil {
		return models.User{}, false, result.Error
	}
	if result.RowsAffected == 0 {
		return models.User{}, false, nil
	}
	return user, true, nil
}

func (repo *UserRepository) Create(user *models.User) error {
	return repo.database.Create(user).Error
}

func (repo *UserRepository) UpdateByID(userID string, updates map[string]any) error {
	if len(updates) == 0 {
		return nil
	}
	return repo.database.Model(&models.User{}).Where("id = ?", userID).Updates(updates).Error
}

// IncrementAdsWatched adds delta to the counter and returns the value after the increment.
func (repo *UserRepository) IncrementAdsWatched(userID string, delta int) (int, error) {
	var updated int
	err := repo.database.Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&models.User{}).
			Where("id = ?", userID).
			UpdateColumn("ads_watched", gorm.Expr("ads_watched + ?", delta))
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return tx.Model(&models.User{}).Where("id = ?", userID).Select("ads_watched").Scan(&updated).Error
	})
	if err != nil {
		return 0, err
	}
	return updated, nil
}

func (repo *UserRepository) GrantPremium(userID string, expiresAt time.Time) error {
	return repo.database.Model(&models.User{}).Where("id = ?", userID).Updates(map[string]any{
		"is_premium":         true,
		"premium_expires_at": expiresAt,
	}).Error
}

// ExpirePremium clears the premium flag only while it is still set and already past its expiry.
func (repo *UserRepository) ExpirePremium(userID string, now time.Time) (bool, error) {
	result := repo.database.Model(&models.User{}).
		Where("id = ? AND is_premium = ? AND premium_expires_at IS NOT NULL AND premium_expires_at < ?", userID, true, now).
		Update("is_premium", false)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}
