package services

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/terraincognita07/kalori/internal/models"
)

var (
	ErrVitaminNotFound     = errors.New("vitamin not found")
	ErrInvalidVitaminName  = errors.New("invalid vitamin name")
	ErrInvalidVitaminTime  = errors.New("invalid vitamin time")
	ErrCreateVitaminFailed = errors.New("create vitamin failed")
)

const (
	maxVitaminNameLength = 80
	maxVitaminTimeLength = 40
)

type VitaminRepository interface {
	Create(vitamin *models.UserVitamin) error
	ListByUser(userID string) ([]models.UserVitamin, error)
	FindByUserAndID(userID string, vitaminID string) (models.UserVitamin, bool, error)
	SetStatus(userID string, vitaminID string, isTaken bool, date string) error
	ResetForDate(userID string, vitaminID string, date string) (bool, error)
}

type VitaminTemplateSource interface {
	VitaminTemplates(language string) []models.VitaminTemplate
}

type VitaminService struct {
	vitamins  VitaminRepository
	templates VitaminTemplateSource
	clock     Clock
}

func NewVitaminService(vitamins VitaminRepository, templates VitaminTemplateSource, clock Clock) *VitaminService {
	return &VitaminService{
		vitamins:  vitamins,
		templates: templates,
		clock:     clock,
	}
}

func (service *VitaminService) Templates(language string) []models.VitaminTemplate {
	if service.templates == nil {
		return []models.VitaminTemplate{}
	}
	return service.templates.VitaminTemplates(language)
}

func (service *VitaminService) Add(userID string, name string, timeLabel string) (models.UserVitamin, error) {
	name = strings.TrimSpace(name)
	timeLabel = strings.TrimSpace(timeLabel)
	if name == "" || utf8.RuneCountInString(name) > maxVitaminNameLength {
		return models.UserVitamin{}, ErrInvalidVitaminName
	}
	if timeLabel == "" || utf8.RuneCountInString(timeLabel) > maxVitaminTimeLength {
		return models.UserVitamin{}, ErrInvalidVitaminTime
	}

	now := service.clock.Now().UTC()
	vitamin := models.UserVitamin{
		ID:        NewVitaminID(),
		UserID:    userID,
		Name:      name,
		Time:      timeLabel,
		IsTaken:   false,
		Date:      CanonicalDate(now),
		CreatedAt: now,
	}
	if err := service.vitamins.Create(&vitamin); err != nil {
		return models.UserVitamin{}, fmt.Errorf("%w: %v", ErrCreateVitaminFailed, err)
	}
	return vitamin, nil
}

// List returns the stored definitions without rollover.
func (service *VitaminService) List(userID string) ([]models.UserVitamin, error) {
	vitamins, err := service.vitamins.ListByUser(userID)
	if err != nil {
		return nil, fmt.Errorf("list vitamins: %w", err)
	}
	return vitamins, nil
}

// Today projects every vitamin onto the current date and persists stale rows.
// A second call on the same day performs no writes.
func (service *VitaminService) Today(userID string) ([]models.UserVitamin, error) {
	today := CanonicalDate(service.clock.Now())
	vitamins, err := service.vitamins.ListByUser(userID)
	if err != nil {
		return nil, fmt.Errorf("list vitamins: %w", err)
	}

	views := make([]models.UserVitamin, 0, len(vitamins))
	for _, vitamin := range vitamins {
		view, needsWriteBack := ProjectVitamin(vitamin, today)
		if needsWriteBack {
			if _, err := service.vitamins.ResetForDate(userID, vitamin.ID, today); err != nil {
				return nil, fmt.Errorf("roll over vitamin %s: %w", vitamin.ID, err)
			}
		}
		views = append(views, view)
	}
	return views, nil
}

// Toggle flips today's effective flag, so a stale "taken" toggles to taken rather than untaken.
func (service *VitaminService) Toggle(userID string, vitaminID string) (bool, error) {
	vitaminID = strings.TrimSpace(vitaminID)
	if vitaminID == "" {
		return false, ErrVitaminNotFound
	}

	vitamin, found, err := service.vitamins.FindByUserAndID(userID, vitaminID)
	if err != nil {
		return false, fmt.Errorf("load vitamin: %w", err)
	}
	if !found {
		return false, ErrVitaminNotFound
	}

	today := CanonicalDate(service.clock.Now())
	view, _ := ProjectVitamin(vitamin, today)
	isTaken := !view.IsTaken
	if err := service.vitamins.SetStatus(userID, vitaminID, isTaken, today); err != nil {
		return false, fmt.Errorf("update vitamin status: %w", err)
	}
	return isTaken, nil
}
