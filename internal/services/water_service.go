package services

import (
	"errors"
	"fmt"

	"github.com/terraincognita07/kalori/internal/models"
)

var ErrInvalidWaterAmount = errors.New("invalid water amount")

const maxWaterAdditionML = 5000

type WaterLogRepository interface {
	RecordIntake(entry *models.WaterLogEntry) error
	FindByUserAndDate(userID string, date string) (models.WaterLog, bool, error)
	TotalsByUserAndDates(userID string, dates []string) (map[string]int, error)
}

type WaterService struct {
	logs  WaterLogRepository
	clock Clock
}

func NewWaterService(logs WaterLogRepository, clock Clock) *WaterService {
	return &WaterService{logs: logs, clock: clock}
}

// AddWater increments today's total and appends the entry; returns the updated day.
func (service *WaterService) AddWater(userID string, amount int) (models.WaterLog, error) {
	if amount <= 0 || amount > maxWaterAdditionML {
		return models.WaterLog{}, ErrInvalidWaterAmount
	}

	now := service.clock.Now().UTC()
	entry := models.WaterLogEntry{
		UserID:    userID,
		Date:      CanonicalDate(now),
		Amount:    amount,
		Timestamp: now,
	}
	if err := service.logs.RecordIntake(&entry); err != nil {
		return models.WaterLog{}, fmt.Errorf("record water intake: %w", err)
	}
	return service.Today(userID)
}

func (service *WaterService) Today(userID string) (models.WaterLog, error) {
	today := CanonicalDate(service.clock.Now())
	waterLog, found, err := service.logs.FindByUserAndDate(userID, today)
	if err != nil {
		return models.WaterLog{}, fmt.Errorf("load water log: %w", err)
	}
	if !found {
		return models.WaterLog{
			UserID: userID,
			Date:   today,
			Logs:   []models.WaterLogEntry{},
		}, nil
	}
	if waterLog.Logs == nil {
		waterLog.Logs = []models.WaterLogEntry{}
	}
	return waterLog, nil
}

// Weekly always returns seven entries ending today; days without a log report 0.
func (service *WaterService) Weekly(userID string) ([]models.WaterDay, error) {
	dates := WeekDates(service.clock.Now())
	totals, err := service.logs.TotalsByUserAndDates(userID, dates)
	if err != nil {
		return nil, fmt.Errorf("load weekly water: %w", err)
	}

	week := make([]models.WaterDay, 0, len(dates))
	for _, date := range dates {
		week = append(week, models.WaterDay{Date: date, Amount: totals[date]})
	}
	return week, nil
}
