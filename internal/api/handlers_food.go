package api

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/terraincognita07/kalori/internal/services"
)

type analyzeFoodInput struct {
	ImageBase64 string `json:"image_base64"`
}

type addMealInput struct {
	Name        string   `json:"name"`
	Calories    *int     `json:"calories"`
	Protein     *float64 `json:"protein"`
	Carbs       *float64 `json:"carbs"`
	Fat         *float64 `json:"fat"`
	ImageBase64 string   `json:"image_base64"`
	MealType    string   `json:"meal_type"`
}

// A missing macro is a malformed request, not zero.
func (input addMealInput) complete() bool {
	return input.Calories != nil && input.Protein != nil && input.Carbs != nil && input.Fat != nil
}

func (handler *Handler) AnalyzeFood(c *fiber.Ctx) error {
	input := analyzeFoodInput{}
	if err := parseJSONBody(c, &input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}

	ctx, cancel := handler.upstreamContext(c)
	defer cancel()

	analysis, err := handler.analyzer.Analyze(ctx, input.ImageBase64)
	if err != nil {
		return handler.respondServiceError(c, err)
	}
	return c.JSON(analysis)
}

func (handler *Handler) AddMeal(c *fiber.Ctx) error {
	user := currentUser(c)
	if user == nil {
		return apiError(c, fiber.StatusUnauthorized, "not authenticated")
	}

	input := addMealInput{}
	if err := parseJSONBody(c, &input); err != nil || !input.complete() {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}

	ctx, cancel := handler.upstreamContext(c)
	defer cancel()

	meal, err := handler.nutrition.AddMeal(ctx, user.ID, services.AddMealInput{
		Name:        input.Name,
		Calories:    *input.Calories,
		Protein:     *input.Protein,
		Carbs:       *input.Carbs,
		Fat:         *input.Fat,
		ImageBase64: input.ImageBase64,
		MealType:    input.MealType,
	})
	if err != nil {
		return handler.respondServiceError(c, err)
	}
	return c.JSON(meal)
}

func (handler *Handler) TodayMeals(c *fiber.Ctx) error {
	user := currentUser(c)
	if user == nil {
		return apiError(c, fiber.StatusUnauthorized, "not authenticated")
	}

	meals, err := handler.nutrition.Today(user.ID)
	if err != nil {
		return handler.respondServiceError(c, err)
	}
	return c.JSON(meals)
}

func (handler *Handler) DailySummary(c *fiber.Ctx) error {
	user := currentUser(c)
	if user == nil {
		return apiError(c, fiber.StatusUnauthorized, "not authenticated")
	}

	summary, err := handler.nutrition.DailySummary(user.ID)
	if err != nil {
		return handler.respondServiceError(c, err)
	}
	return c.JSON(summary)
}

func (handler *Handler) FoodDatabase(c *fiber.Ctx) error {
	return c.JSON(handler.nutrition.FoodDatabase(handler.requestLanguage(c)))
}

// requestLanguage reads ?lang= first, then Accept-Language.
func (handler *Handler) requestLanguage(c *fiber.Ctx) string {
	if lang := strings.TrimSpace(c.Query("lang")); lang != "" {
		return handler.languages.NormalizeLanguage(lang)
	}
	return handler.languages.DetectFromAcceptLanguage(c.Get(fiber.HeaderAcceptLanguage))
}
