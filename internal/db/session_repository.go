package db

import (
	"github.com/terraincognita07/kalori/internal/models"
	"gorm.io/gorm"
)

type SessionRepository struct {
	database *gorm.DB
}

func NewSessionRepository(database *gorm.DB) *SessionRepository {
	return &SessionRepository{database: database}
}

func (repo *SessionRepository) Create(session *models.Session) error {
	return repo.database.Create(session).Error
}

// FindByTokenHash does not filter on expiry; callers decide what an expired session means.
func (repo *SessionRepository) FindByTokenHash(tokenHash string) (models.Session, bool, error) {
	var session models.Session
	result := repo.database.Where("token_hash = ?", tokenHash).Limit(1).Find(&session)
	if result.Error != nil {
		return models.Session{}, false, result.Error
	}
	if result.RowsAffected == 0 {
		return models.Session{}, false, nil
	}
	return session, true, nil
}

func (repo *SessionRepository) DeleteByTokenHash(tokenHash string) error {
	return repo.database.Where("token_hash = ?", tokenHash).Delete(&models.Session{}).Error
}
