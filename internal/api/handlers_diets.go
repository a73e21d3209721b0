package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/terraincognita07/kalori/internal/services"
)

type createUserDietInput struct {
	DietID         string `json:"diet_id"`
	Name           string `json:"name"`
	Description    string `json:"description"`
	CaloriesPerDay int    `json:"calories_per_day"`
	DurationDays   int    `json:"duration_days"`
	Activate       bool   `json:"activate"`
}

func (handler *Handler) DietCatalog(c *fiber.Ctx) error {
	plans, err := handler.diets.Catalog(c.Query("category"))
	if err != nil {
		return handler.respondServiceError(c, err)
	}
	return c.JSON(plans)
}

func (handler *Handler) UserDiets(c *fiber.Ctx) error {
	user := currentUser(c)
	if user == nil {
		return apiError(c, fiber.StatusUnauthorized, "not authenticated")
	}

	diets, err := handler.diets.UserDiets(user.ID)
	if err != nil {
		return handler.respondServiceError(c, err)
	}
	return c.JSON(diets)
}

func (handler *Handler) CreateUserDiet(c *fiber.Ctx) error {
	user := currentUser(c)
	if user == nil {
		return apiError(c, fiber.StatusUnauthorized, "not authenticated")
	}

	input := createUserDietInput{}
	if err := parseJSONBody(c, &input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}

	diet, err := handler.diets.CreateUserDiet(*user, services.CreateUserDietInput{
		DietID:         input.DietID,
		Name:           input.Name,
		Description:    input.Description,
		CaloriesPerDay: input.CaloriesPerDay,
		DurationDays:   input.DurationDays,
		Activate:       input.Activate,
	})
	if err != nil {
		return handler.respondServiceError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(diet)
}

func (handler *Handler) DeleteUserDiet(c *fiber.Ctx) error {
	user := currentUser(c)
	if user == nil {
		return apiError(c, fiber.StatusUnauthorized, "not authenticated")
	}

	if err := handler.diets.DeleteUserDiet(user.ID, c.Params("id")); err != nil {
		return handler.respondServiceError(c, err)
	}
	return messageResponse(c, "Diet deleted")
}

func (handler *Handler) ActivateUserDiet(c *fiber.Ctx) error {
	user := currentUser(c)
	if user == nil {
		return apiError(c, fiber.StatusUnauthorized, "not authenticated")
	}

	if err := handler.diets.ActivateUserDiet(user.ID, c.Params("id")); err != nil {
		return handler.respondServiceError(c, err)
	}
	return messageResponse(c, "Diet activated")
}
