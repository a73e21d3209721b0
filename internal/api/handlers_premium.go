package api

import (
	"github.com/gofiber/fiber/v2"
)

type watchAdsInput struct {
	AdCount *int `json:"ad_count"`
}

func (handler *Handler) ActivatePremium(c *fiber.Ctx) error {
	user := currentUser(c)
	if user == nil {
		return apiError(c, fiber.StatusUnauthorized, "not authenticated")
	}

	status, err := handler.premium.Activate(user.ID)
	if err != nil {
		return handler.respondServiceError(c, err)
	}
	return c.JSON(status)
}

func (handler *Handler) PremiumStatus(c *fiber.Ctx) error {
	user := currentUser(c)
	if user == nil {
		return apiError(c, fiber.StatusUnauthorized, "not authenticated")
	}

	status, err := handler.premium.Status(user.ID)
	if err != nil {
		return handler.respondServiceError(c, err)
	}
	return c.JSON(status)
}

// WatchAds accepts an empty body as a single ad.
func (handler *Handler) WatchAds(c *fiber.Ctx) error {
	user := currentUser(c)
	if user == nil {
		return apiError(c, fiber.StatusUnauthorized, "not authenticated")
	}

	count := 1
	if len(c.Body()) > 0 {
		input := watchAdsInput{}
		if err := parseJSONBody(c, &input); err != nil {
			return apiError(c, fiber.StatusBadRequest, "invalid input")
		}
		if input.AdCount != nil {
			count = *input.AdCount
		}
	}

	result, err := handler.premium.WatchAds(user.ID, count)
	if err != nil {
		return handler.respondServiceError(c, err)
	}
	return c.JSON(result)
}
