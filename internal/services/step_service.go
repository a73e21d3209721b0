package services

import (
	"errors"
	"fmt"

	"github.com/terraincognita07/kalori/internal/models"
)

var (
	ErrInvalidStepCount  = errors.New("invalid step count")
	ErrInvalidStepSource = errors.New("invalid step source")
)

const maxDailySteps = 200000

type StepLogRepository interface {
	UpsertOverwrite(userID string, date string, steps int, source models.StepSource) error
	FindByUserAndDate(userID string, date string) (models.StepLog, bool, error)
}

type StepService struct {
	logs  StepLogRepository
	clock Clock
}

func NewStepService(logs StepLogRepository, clock Clock) *StepService {
	return &StepService{logs: logs, clock: clock}
}

func (service *StepService) Sync(userID string, steps int, source string) error {
	stepSource := models.StepSource(source)
	if !stepSource.IsSyncSource() {
		return ErrInvalidStepSource
	}
	return service.record(userID, steps, stepSource)
}

func (service *StepService) RecordManual(userID string, steps int) error {
	return service.record(userID, steps, models.StepSourceManual)
}

func (service *StepService) record(userID string, steps int, source models.StepSource) error {
	if steps < 0 || steps > maxDailySteps {
		return ErrInvalidStepCount
	}
	today := CanonicalDate(service.clock.Now())
	if err := service.logs.UpsertOverwrite(userID, today, steps, source); err != nil {
		return fmt.Errorf("save steps: %w", err)
	}
	return nil
}

func (service *StepService) Today(userID string) (models.StepLog, error) {
	today := CanonicalDate(service.clock.Now())
	stepLog, found, err := service.logs.FindByUserAndDate(userID, today)
	if err != nil {
		return models.StepLog{}, fmt.Errorf("load steps: %w", err)
	}
	if !found {
		return models.StepLog{
			UserID: userID,
			Date:   today,
			Source: models.StepSourceNone,
		}, nil
	}
	return stepLog, nil
}
