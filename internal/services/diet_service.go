package services

import (
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/terraincognita07/kalori/internal/models"
)

var (
	ErrDietNotFound          = errors.New("diet not found")
	ErrPremiumRequired       = errors.New("premium required")
	ErrInvalidDietCategory   = errors.New("invalid diet category")
	ErrInvalidDietName       = errors.New("invalid diet name")
	ErrInvalidDietDesc       = errors.New("invalid diet description")
	ErrInvalidDietCalories   = errors.New("invalid diet calories")
	ErrInvalidDietDuration   = errors.New("invalid diet duration")
	ErrInvalidDietPlan       = errors.New("invalid diet plan")
	ErrCreateUserDietFailed  = errors.New("create user diet failed")
	ErrActivateDietFailed    = errors.New("activate diet failed")
	ErrDeleteUserDietFailed  = errors.New("delete user diet failed")
	ErrDietCatalogSeedFailed = errors.New("diet catalog seed failed")
)

const (
	maxDietNameLength        = 120
	maxDietDescriptionLength = 1000
	maxDietDurationDays      = 365
	maxDietCaloriesPerDay    = 10000
)

type DietRepository interface {
	ListCatalog(category string) ([]models.DietPlan, error)
	FindCatalogByID(dietID string) (models.DietPlan, bool, error)
	CountCatalog() (int64, error)
	UpsertCatalog(plans []models.DietPlan) error
	ListUserDiets(userID string) ([]models.UserDiet, error)
	CreateUserDiet(diet *models.UserDiet) error
	DeleteUserDiet(userID string, userDietID string) (bool, error)
	ActivateUserDiet(userID string, userDietID string, startedAt time.Time) (bool, error)
}

type CreateUserDietInput struct {
	DietID         string
	Name           string
	Description    string
	CaloriesPerDay int
	DurationDays   int
	Activate       bool
}

type DietService struct {
	diets DietRepository
	clock Clock
}

func NewDietService(diets DietRepository, clock Clock) *DietService {
	return &DietService{diets: diets, clock: clock}
}

func (service *DietService) Catalog(category string) ([]models.DietPlan, error) {
	category = strings.ToLower(strings.TrimSpace(category))
	if category != "" && string(models.ParseDietCategory(category)) != category {
		return nil, ErrInvalidDietCategory
	}
	plans, err := service.diets.ListCatalog(category)
	if err != nil {
		return nil, fmt.Errorf("list diet catalog: %w", err)
	}
	return plans, nil
}

func (service *DietService) UserDiets(userID string) ([]models.UserDiet, error) {
	diets, err := service.diets.ListUserDiets(userID)
	if err != nil {
		return nil, fmt.Errorf("list user diets: %w", err)
	}
	return diets, nil
}

// CreateUserDiet adopts a catalog plan when DietID is set, otherwise creates a custom plan.
// Premium catalog plans need an active entitlement.
func (service *DietService) CreateUserDiet(user models.User, input CreateUserDietInput) (models.UserDiet, error) {
	now := service.clock.Now().UTC()
	diet := models.UserDiet{
		ID:        NewUserDietID(),
		UserID:    user.ID,
		CreatedAt: now,
	}

	dietID := strings.TrimSpace(input.DietID)
	if dietID != "" {
		plan, found, err := service.diets.FindCatalogByID(dietID)
		if err != nil {
			return models.UserDiet{}, fmt.Errorf("load catalog diet: %w", err)
		}
		if !found {
			return models.UserDiet{}, ErrDietNotFound
		}
		if plan.IsPremium && !HasActivePremium(user, now) {
			return models.UserDiet{}, ErrPremiumRequired
		}
		diet.DietID = &plan.ID
		diet.Name = plan.Name
		diet.Description = plan.Description
		diet.CaloriesPerDay = plan.CaloriesPerDay
		diet.DurationDays = plan.DurationDays
	} else {
		if err := validateCustomDiet(input); err != nil {
			return models.UserDiet{}, err
		}
		diet.Name = strings.TrimSpace(input.Name)
		diet.Description = strings.TrimSpace(input.Description)
		diet.CaloriesPerDay = input.CaloriesPerDay
		diet.DurationDays = input.DurationDays
		diet.IsCustom = true
	}

	if err := service.diets.CreateUserDiet(&diet); err != nil {
		return models.UserDiet{}, fmt.Errorf("%w: %v", ErrCreateUserDietFailed, err)
	}

	if input.Activate {
		if err := service.ActivateUserDiet(user.ID, diet.ID); err != nil {
			return models.UserDiet{}, err
		}
		diet.IsActive = true
		diet.StartedAt = &now
	}
	return diet, nil
}

func validateCustomDiet(input CreateUserDietInput) error {
	name := strings.TrimSpace(input.Name)
	if name == "" || utf8.RuneCountInString(name) > maxDietNameLength {
		return ErrInvalidDietName
	}
	if utf8.RuneCountInString(strings.TrimSpace(input.Description)) > maxDietDescriptionLength {
		return ErrInvalidDietDesc
	}
	if input.CaloriesPerDay <= 0 || input.CaloriesPerDay > maxDietCaloriesPerDay {
		return ErrInvalidDietCalories
	}
	if input.DurationDays <= 0 || input.DurationDays > maxDietDurationDays {
		return ErrInvalidDietDuration
	}
	return nil
}

func (service *DietService) DeleteUserDiet(userID string, userDietID string) error {
	deleted, err := service.diets.DeleteUserDiet(userID, strings.TrimSpace(userDietID))
	if err != nil {
		return fmt.Errorf("%w: %v", ErrDeleteUserDietFailed, err)
	}
	if !deleted {
		return ErrDietNotFound
	}
	return nil
}

// ActivateUserDiet leaves exactly one active diet; an unknown id changes nothing.
func (service *DietService) ActivateUserDiet(userID string, userDietID string) error {
	activated, err := service.diets.ActivateUserDiet(userID, strings.TrimSpace(userDietID), service.clock.Now().UTC())
	if err != nil {
		return fmt.Errorf("%w: %v", ErrActivateDietFailed, err)
	}
	if !activated {
		return ErrDietNotFound
	}
	return nil
}

// SeedDefaultCatalog inserts the built-in plans when the catalog is empty and returns how many were written.
func (service *DietService) SeedDefaultCatalog() (int, error) {
	count, err := service.diets.CountCatalog()
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrDietCatalogSeedFailed, err)
	}
	if count > 0 {
		return 0, nil
	}
	plans := DefaultDietCatalog()
	if err := service.ImportCatalog(plans); err != nil {
		return 0, err
	}
	return len(plans), nil
}

// ImportCatalog validates and upserts catalog plans by id.
func (service *DietService) ImportCatalog(plans []models.DietPlan) error {
	normalized := make([]models.DietPlan, 0, len(plans))
	for _, plan := range plans {
		plan.ID = strings.TrimSpace(plan.ID)
		plan.Name = strings.TrimSpace(plan.Name)
		if plan.ID == "" || plan.Name == "" {
			return fmt.Errorf("%w: id and name are required", ErrInvalidDietPlan)
		}
		if plan.CaloriesPerDay <= 0 || plan.DurationDays <= 0 {
			return fmt.Errorf("%w: %s needs positive calories and duration", ErrInvalidDietPlan, plan.ID)
		}
		plan.Category = models.ParseDietCategory(strings.ToLower(strings.TrimSpace(string(plan.Category))))
		for dayIndex := range plan.Days {
			for mealIndex := range plan.Days[dayIndex].Meals {
				meal := &plan.Days[dayIndex].Meals[mealIndex]
				meal.MealType = models.ParseMealType(string(meal.MealType))
			}
		}
		normalized = append(normalized, plan)
	}

	if err := service.diets.UpsertCatalog(normalized); err != nil {
		return fmt.Errorf("%w: %v", ErrDietCatalogSeedFailed, err)
	}
	return nil
}
