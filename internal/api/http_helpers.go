package api

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/terraincognita07/kalori/internal/identity"
	"github.com/terraincognita07/kalori/internal/services"
	"github.com/terraincognita07/kalori/internal/vision"
	"go.uber.org/zap"
)

func apiError(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(fiber.Map{"error": message})
}

func messageResponse(c *fiber.Ctx, message string) error {
	return c.JSON(fiber.Map{"message": message})
}

func parseJSONBody(c *fiber.Ctx, target any) error {
	if len(c.Body()) == 0 {
		return errors.New("empty body")
	}
	if !strings.HasPrefix(strings.ToLower(c.Get(fiber.HeaderContentType)), fiber.MIMEApplicationJSON) {
		c.Request().Header.SetContentType(fiber.MIMEApplicationJSON)
	}
	return c.BodyParser(target)
}

type errorStatus struct {
	err    error
	status int
}

// Client-facing messages come from the sentinel, never from the wrapped cause.
var serviceErrorStatuses = []errorStatus{
	{services.ErrUnauthenticated, fiber.StatusUnauthorized},
	{identity.ErrExchangeFailed, fiber.StatusBadRequest},

	{services.ErrInvalidWaterAmount, fiber.StatusBadRequest},
	{services.ErrInvalidStepCount, fiber.StatusBadRequest},
	{services.ErrInvalidStepSource, fiber.StatusBadRequest},
	{services.ErrInvalidVitaminName, fiber.StatusBadRequest},
	{services.ErrInvalidVitaminTime, fiber.StatusBadRequest},
	{services.ErrInvalidMealName, fiber.StatusBadRequest},
	{services.ErrInvalidMealNutrition, fiber.StatusBadRequest},
	{services.ErrInvalidHeight, fiber.StatusBadRequest},
	{services.ErrInvalidWeight, fiber.StatusBadRequest},
	{services.ErrInvalidAge, fiber.StatusBadRequest},
	{services.ErrInvalidGender, fiber.StatusBadRequest},
	{services.ErrInvalidActivityLevel, fiber.StatusBadRequest},
	{services.ErrInvalidCalorieGoal, fiber.StatusBadRequest},
	{services.ErrInvalidWaterGoal, fiber.StatusBadRequest},
	{services.ErrInvalidStepGoal, fiber.StatusBadRequest},
	{services.ErrInvalidAdCount, fiber.StatusBadRequest},
	{services.ErrInvalidDietCategory, fiber.StatusBadRequest},
	{services.ErrInvalidDietName, fiber.StatusBadRequest},
	{services.ErrInvalidDietDesc, fiber.StatusBadRequest},
	{services.ErrInvalidDietCalories, fiber.StatusBadRequest},
	{services.ErrInvalidDietDuration, fiber.StatusBadRequest},
	{services.ErrInvalidDietPlan, fiber.StatusBadRequest},
	{vision.ErrEmptyImage, fiber.StatusBadRequest},

	{services.ErrUserNotFound, fiber.StatusNotFound},
	{services.ErrVitaminNotFound, fiber.StatusNotFound},
	{services.ErrDietNotFound, fiber.StatusNotFound},

	{services.ErrPremiumRequired, fiber.StatusForbidden},

	{vision.ErrNotConfigured, fiber.StatusServiceUnavailable},
	{vision.ErrAnalysisFailed, fiber.StatusInternalServerError},
}

func (handler *Handler) respondServiceError(c *fiber.Ctx, err error) error {
	for _, entry := range serviceErrorStatuses {
		if errors.Is(err, entry.err) {
			if entry.status >= fiber.StatusInternalServerError {
				handler.logger.Error("request failed", zap.String("path", c.Path()), zap.Error(err))
			}
			return apiError(c, entry.status, entry.err.Error())
		}
	}

	handler.logger.Error("request failed", zap.String("path", c.Path()), zap.Error(err))
	return apiError(c, fiber.StatusInternalServerError, "internal error")
}
