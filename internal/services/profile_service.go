package services

import (
	"errors"
	"fmt"
	"math"

	"github.com/terraincognita07/kalori/internal/models"
)

var (
	ErrUserNotFound         = errors.New("user not found")
	ErrInvalidHeight        = errors.New("invalid height")
	ErrInvalidWeight        = errors.New("invalid weight")
	ErrInvalidAge           = errors.New("invalid age")
	ErrInvalidGender        = errors.New("invalid gender")
	ErrInvalidActivityLevel = errors.New("invalid activity level")
	ErrInvalidCalorieGoal   = errors.New("invalid calorie goal")
	ErrInvalidWaterGoal     = errors.New("invalid water goal")
	ErrInvalidStepGoal      = errors.New("invalid step goal")
	ErrUpdateProfileFailed  = errors.New("update profile failed")
	ErrProfileLookupFailed  = errors.New("profile lookup failed")
)

const (
	maxHeightCM    = 300
	maxWeightKG    = 700
	maxAgeYears    = 150
	maxCalorieGoal = 20000
	maxWaterGoalML = 20000
	maxStepGoal    = 200000
)

type ProfileUserRepository interface {
	FindByID(userID string) (models.User, bool, error)
	UpdateByID(userID string, updates map[string]any) error
}

type ProfileUpdate struct {
	Height        *float64
	Weight        *float64
	Age           *int
	Gender        *string
	ActivityLevel *string
}

type GoalsUpdate struct {
	DailyCalorieGoal *int
	WaterGoal        *int
	StepGoal         *int
}

type ProfileService struct {
	users ProfileUserRepository
}

func NewProfileService(users ProfileUserRepository) *ProfileService {
	return &ProfileService{users: users}
}

func (service *ProfileService) Profile(userID string) (models.User, error) {
	user, found, err := service.users.FindByID(userID)
	if err != nil {
		return models.User{}, fmt.Errorf("%w: %v", ErrProfileLookupFailed, err)
	}
	if !found {
		return models.User{}, ErrUserNotFound
	}
	return user, nil
}

// UpdateProfile persists the provided biometric fields. The calorie goal is recomputed only
// when all five fields arrive in the same call; earlier partial updates do not count.
func (service *ProfileService) UpdateProfile(userID string, update ProfileUpdate) (models.User, error) {
	updates, err := profileUpdates(update)
	if err != nil {
		return models.User{}, err
	}

	if update.Height != nil && update.Weight != nil && update.Age != nil && update.Gender != nil && update.ActivityLevel != nil {
		gender, _ := ParseGender(*update.Gender)
		level, _ := ParseActivityLevel(*update.ActivityLevel)
		updates["daily_calorie_goal"] = CalorieGoal(*update.Height, *update.Weight, *update.Age, gender, level)
	}

	if err := service.users.UpdateByID(userID, updates); err != nil {
		return models.User{}, fmt.Errorf("%w: %v", ErrUpdateProfileFailed, err)
	}
	return service.Profile(userID)
}

func profileUpdates(update ProfileUpdate) (map[string]any, error) {
	updates := make(map[string]any)
	if update.Height != nil {
		if !positiveWithin(*update.Height, maxHeightCM) {
			return nil, ErrInvalidHeight
		}
		updates["height"] = *update.Height
	}
	if update.Weight != nil {
		if !positiveWithin(*update.Weight, maxWeightKG) {
			return nil, ErrInvalidWeight
		}
		updates["weight"] = *update.Weight
	}
	if update.Age != nil {
		if *update.Age <= 0 || *update.Age > maxAgeYears {
			return nil, ErrInvalidAge
		}
		updates["age"] = *update.Age
	}
	if update.Gender != nil {
		gender, ok := ParseGender(*update.Gender)
		if !ok {
			return nil, ErrInvalidGender
		}
		updates["gender"] = string(gender)
	}
	if update.ActivityLevel != nil {
		level, ok := ParseActivityLevel(*update.ActivityLevel)
		if !ok {
			return nil, ErrInvalidActivityLevel
		}
		updates["activity_level"] = string(level)
	}
	return updates, nil
}

func positiveWithin(value float64, limit float64) bool {
	return value > 0 && value <= limit && !math.IsNaN(value)
}

func (service *ProfileService) UpdateGoals(userID string, update GoalsUpdate) (models.User, error) {
	updates := make(map[string]any)
	if update.DailyCalorieGoal != nil {
		if *update.DailyCalorieGoal <= 0 || *update.DailyCalorieGoal > maxCalorieGoal {
			return models.User{}, ErrInvalidCalorieGoal
		}
		updates["daily_calorie_goal"] = *update.DailyCalorieGoal
	}
	if update.WaterGoal != nil {
		if *update.WaterGoal <= 0 || *update.WaterGoal > maxWaterGoalML {
			return models.User{}, ErrInvalidWaterGoal
		}
		updates["water_goal"] = *update.WaterGoal
	}
	if update.StepGoal != nil {
		if *update.StepGoal <= 0 || *update.StepGoal > maxStepGoal {
			return models.User{}, ErrInvalidStepGoal
		}
		updates["step_goal"] = *update.StepGoal
	}

	if err := service.users.UpdateByID(userID, updates); err != nil {
		return models.User{}, fmt.Errorf("%w: %v", ErrUpdateProfileFailed, err)
	}
	return service.Profile(userID)
}
