package api

import (
	"github.com/gofiber/fiber/v2"
)

type addWaterInput struct {
	Amount int `json:"amount"`
}

type syncStepsInput struct {
	Steps  *int   `json:"steps"`
	Source string `json:"source"`
}

type manualStepsInput struct {
	Steps *int `json:"steps"`
}

func (handler *Handler) AddWater(c *fiber.Ctx) error {
	user := currentUser(c)
	if user == nil {
		return apiError(c, fiber.StatusUnauthorized, "not authenticated")
	}

	input := addWaterInput{}
	if err := parseJSONBody(c, &input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}

	waterLog, err := handler.water.AddWater(user.ID, input.Amount)
	if err != nil {
		return handler.respondServiceError(c, err)
	}
	return c.JSON(fiber.Map{
		"message":      "Water added successfully",
		"total_amount": waterLog.TotalAmount,
	})
}

func (handler *Handler) TodayWater(c *fiber.Ctx) error {
	user := currentUser(c)
	if user == nil {
		return apiError(c, fiber.StatusUnauthorized, "not authenticated")
	}

	waterLog, err := handler.water.Today(user.ID)
	if err != nil {
		return handler.respondServiceError(c, err)
	}
	return c.JSON(waterLog)
}

func (handler *Handler) WeeklyWater(c *fiber.Ctx) error {
	user := currentUser(c)
	if user == nil {
		return apiError(c, fiber.StatusUnauthorized, "not authenticated")
	}

	week, err := handler.water.Weekly(user.ID)
	if err != nil {
		return handler.respondServiceError(c, err)
	}
	return c.JSON(week)
}

func (handler *Handler) SyncSteps(c *fiber.Ctx) error {
	user := currentUser(c)
	if user == nil {
		return apiError(c, fiber.StatusUnauthorized, "not authenticated")
	}

	input := syncStepsInput{}
	if err := parseJSONBody(c, &input); err != nil || input.Steps == nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}

	if err := handler.steps.Sync(user.ID, *input.Steps, input.Source); err != nil {
		return handler.respondServiceError(c, err)
	}
	return messageResponse(c, "Steps synced successfully")
}

func (handler *Handler) TodaySteps(c *fiber.Ctx) error {
	user := currentUser(c)
	if user == nil {
		return apiError(c, fiber.StatusUnauthorized, "not authenticated")
	}

	stepLog, err := handler.steps.Today(user.ID)
	if err != nil {
		return handler.respondServiceError(c, err)
	}
	return c.JSON(stepLog)
}

func (handler *Handler) ManualSteps(c *fiber.Ctx) error {
	user := currentUser(c)
	if user == nil {
		return apiError(c, fiber.StatusUnauthorized, "not authenticated")
	}

	input := manualStepsInput{}
	if err := parseJSONBody(c, &input); err != nil || input.Steps == nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}

	if err := handler.steps.RecordManual(user.ID, *input.Steps); err != nil {
		return handler.respondServiceError(c, err)
	}
	return messageResponse(c, "Steps added successfully")
}
