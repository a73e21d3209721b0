package api

import (
	"github.com/gofiber/fiber/v2"
)

type addVitaminInput struct {
	Name string `json:"name"`
	Time string `json:"time"`
}

type toggleVitaminInput struct {
	VitaminID string `json:"vitamin_id"`
}

func (handler *Handler) VitaminTemplates(c *fiber.Ctx) error {
	return c.JSON(handler.vitamins.Templates(handler.requestLanguage(c)))
}

func (handler *Handler) UserVitamins(c *fiber.Ctx) error {
	user := currentUser(c)
	if user == nil {
		return apiError(c, fiber.StatusUnauthorized, "not authenticated")
	}

	vitamins, err := handler.vitamins.List(user.ID)
	if err != nil {
		return handler.respondServiceError(c, err)
	}
	return c.JSON(vitamins)
}

func (handler *Handler) AddVitamin(c *fiber.Ctx) error {
	user := currentUser(c)
	if user == nil {
		return apiError(c, fiber.StatusUnauthorized, "not authenticated")
	}

	input := addVitaminInput{}
	if err := parseJSONBody(c, &input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}

	vitamin, err := handler.vitamins.Add(user.ID, input.Name, input.Time)
	if err != nil {
		return handler.respondServiceError(c, err)
	}
	return c.JSON(vitamin)
}

func (handler *Handler) ToggleVitamin(c *fiber.Ctx) error {
	user := currentUser(c)
	if user == nil {
		return apiError(c, fiber.StatusUnauthorized, "not authenticated")
	}

	input := toggleVitaminInput{}
	if err := parseJSONBody(c, &input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}

	isTaken, err := handler.vitamins.Toggle(user.ID, input.VitaminID)
	if err != nil {
		return handler.respondServiceError(c, err)
	}
	return c.JSON(fiber.Map{
		"message":  "Vitamin status updated",
		"is_taken": isTaken,
	})
}

func (handler *Handler) TodayVitamins(c *fiber.Ctx) error {
	user := currentUser(c)
	if user == nil {
		return apiError(c, fiber.StatusUnauthorized, "not authenticated")
	}

	vitamins, err := handler.vitamins.Today(user.ID)
	if err != nil {
		return handler.respondServiceError(c, err)
	}
	return c.JSON(vitamins)
}
