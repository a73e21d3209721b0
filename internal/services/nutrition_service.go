package services

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/terraincognita07/kalori/internal/models"
	"go.uber.org/zap"
)

var (
	ErrInvalidMealName      = errors.New("invalid meal name")
	ErrInvalidMealNutrition = errors.New("invalid meal nutrition")
	ErrCreateMealFailed     = errors.New("create meal failed")
)

const (
	maxMealNameLength = 120
	maxMealCalories   = 20000
)

type MealRepository interface {
	Create(meal *models.Meal) error
	ListByUserRange(userID string, from time.Time, to time.Time) ([]models.Meal, error)
}

// MealImageStore persists a meal photo. An empty URL means the payload stays inline on the meal.
type MealImageStore interface {
	SaveMealImage(ctx context.Context, userID string, mealID string, imageBase64 string) (string, error)
}

type FoodCatalog interface {
	FoodDatabase(language string) []models.FoodItem
}

type AddMealInput struct {
	Name        string
	Calories    int
	Protein     float64
	Carbs       float64
	Fat         float64
	ImageBase64 string
	MealType    string
}

type DailySummary struct {
	Date          string        `json:"date"`
	TotalCalories int           `json:"total_calories"`
	TotalProtein  float64       `json:"total_protein"`
	TotalCarbs    float64       `json:"total_carbs"`
	TotalFat      float64       `json:"total_fat"`
	Meals         []models.Meal `json:"meals"`
}

type NutritionService struct {
	meals  MealRepository
	images MealImageStore
	foods  FoodCatalog
	clock  Clock
	logger *zap.Logger
}

func NewNutritionService(meals MealRepository, images MealImageStore, foods FoodCatalog, clock Clock, logger *zap.Logger) *NutritionService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &NutritionService{
		meals:  meals,
		images: images,
		foods:  foods,
		clock:  clock,
		logger: logger,
	}
}

func (service *NutritionService) AddMeal(ctx context.Context, userID string, input AddMealInput) (models.Meal, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" || utf8.RuneCountInString(name) > maxMealNameLength {
		return models.Meal{}, ErrInvalidMealName
	}
	if input.Calories < 0 || input.Calories > maxMealCalories {
		return models.Meal{}, ErrInvalidMealNutrition
	}
	for _, value := range []float64{input.Protein, input.Carbs, input.Fat} {
		if value < 0 || math.IsNaN(value) || math.IsInf(value, 0) {
			return models.Meal{}, ErrInvalidMealNutrition
		}
	}

	meal := models.Meal{
		ID:          NewMealID(),
		UserID:      userID,
		Name:        name,
		Calories:    input.Calories,
		Protein:     input.Protein,
		Carbs:       input.Carbs,
		Fat:         input.Fat,
		ImageBase64: strings.TrimSpace(input.ImageBase64),
		MealType:    models.ParseMealType(strings.ToLower(strings.TrimSpace(input.MealType))),
		Timestamp:   service.clock.Now().UTC(),
	}

	if meal.ImageBase64 != "" && service.images != nil {
		imageURL, err := service.images.SaveMealImage(ctx, userID, meal.ID, meal.ImageBase64)
		switch {
		case err != nil:
			service.logger.Warn("meal image upload failed, keeping inline payload",
				zap.String("user_id", userID),
				zap.String("meal_id", meal.ID),
				zap.Error(err),
			)
		case imageURL != "":
			meal.ImageURL = imageURL
			meal.ImageBase64 = ""
		}
	}

	if err := service.meals.Create(&meal); err != nil {
		return models.Meal{}, fmt.Errorf("%w: %v", ErrCreateMealFailed, err)
	}
	return meal, nil
}

func (service *NutritionService) Today(userID string) ([]models.Meal, error) {
	from, to := DayRange(service.clock.Now(), time.UTC)
	meals, err := service.meals.ListByUserRange(userID, from, to)
	if err != nil {
		return nil, fmt.Errorf("list meals: %w", err)
	}
	return meals, nil
}

// DailySummary totals the macros of meals timestamped within today's UTC day.
func (service *NutritionService) DailySummary(userID string) (DailySummary, error) {
	now := service.clock.Now()
	meals, err := service.Today(userID)
	if err != nil {
		return DailySummary{}, err
	}
	return SummarizeMeals(CanonicalDate(now), meals), nil
}

func SummarizeMeals(date string, meals []models.Meal) DailySummary {
	summary := DailySummary{
		Date:  date,
		Meals: meals,
	}
	if summary.Meals == nil {
		summary.Meals = []models.Meal{}
	}
	for _, meal := range meals {
		summary.TotalCalories += meal.Calories
		summary.TotalProtein += meal.Protein
		summary.TotalCarbs += meal.Carbs
		summary.TotalFat += meal.Fat
	}
	return summary
}

func (service *NutritionService) FoodDatabase(language string) []models.FoodItem {
	if service.foods == nil {
		return []models.FoodItem{}
	}
	return service.foods.FoodDatabase(language)
}
