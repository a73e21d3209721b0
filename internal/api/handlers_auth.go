package api

import (
	"context"
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/terraincognita07/kalori/internal/identity"
	"github.com/terraincognita07/kalori/internal/services"
	"go.uber.org/zap"
)

type sessionResponse struct {
	UserID       string `json:"user_id"`
	Email        string `json:"email"`
	Name         string `json:"name"`
	Picture      string `json:"picture,omitempty"`
	SessionToken string `json:"session_token"`
}

type profileInput struct {
	Height        *float64 `json:"height"`
	Weight        *float64 `json:"weight"`
	Age           *int     `json:"age"`
	Gender        *string  `json:"gender"`
	ActivityLevel *string  `json:"activity_level"`
}

type goalsInput struct {
	DailyCalorieGoal *int `json:"daily_calorie_goal"`
	WaterGoal        *int `json:"water_goal"`
	StepGoal         *int `json:"step_goal"`
}

func (handler *Handler) ExchangeSession(c *fiber.Ctx) error {
	now := handler.clock.Now()
	limiterKey := requestLimiterKey(c)
	if handler.exchangeLimiter.blocked(limiterKey, now) {
		return apiError(c, fiber.StatusTooManyRequests, "too many session attempts")
	}

	sessionID := strings.TrimSpace(c.Get(identity.SessionIDHeader))
	if sessionID == "" {
		return apiError(c, fiber.StatusBadRequest, "X-Session-ID header required")
	}

	ctx, cancel := handler.upstreamContext(c)
	defer cancel()

	result, err := handler.auth.Exchange(ctx, sessionID)
	if err != nil {
		if errors.Is(err, identity.ErrExchangeFailed) {
			handler.exchangeLimiter.recordFailure(limiterKey, now)
			handler.logger.Warn("session exchange rejected", zap.String("ip", limiterKey), zap.Error(err))
			return apiError(c, fiber.StatusBadRequest, "invalid session id")
		}
		return handler.respondServiceError(c, err)
	}
	handler.exchangeLimiter.reset(limiterKey)

	handler.setSessionCookie(c, result.Token, result.ExpiresAt)
	return c.JSON(sessionResponse{
		UserID:       result.User.ID,
		Email:        result.User.Email,
		Name:         result.User.Name,
		Picture:      result.User.Picture,
		SessionToken: result.Token,
	})
}

func (handler *Handler) Me(c *fiber.Ctx) error {
	user := currentUser(c)
	if user == nil {
		return apiError(c, fiber.StatusUnauthorized, "not authenticated")
	}
	return c.JSON(user)
}

func (handler *Handler) Logout(c *fiber.Ctx) error {
	if err := handler.auth.Logout(sessionTokenFromRequest(c)); err != nil {
		return handler.respondServiceError(c, err)
	}
	handler.clearSessionCookie(c)
	return messageResponse(c, "Logged out successfully")
}

func (handler *Handler) UpdateProfile(c *fiber.Ctx) error {
	user := currentUser(c)
	if user == nil {
		return apiError(c, fiber.StatusUnauthorized, "not authenticated")
	}

	input := profileInput{}
	if err := parseJSONBody(c, &input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}

	updated, err := handler.profile.UpdateProfile(user.ID, services.ProfileUpdate{
		Height:        input.Height,
		Weight:        input.Weight,
		Age:           input.Age,
		Gender:        input.Gender,
		ActivityLevel: input.ActivityLevel,
	})
	if err != nil {
		return handler.respondServiceError(c, err)
	}
	return c.JSON(updated)
}

func (handler *Handler) UpdateGoals(c *fiber.Ctx) error {
	user := currentUser(c)
	if user == nil {
		return apiError(c, fiber.StatusUnauthorized, "not authenticated")
	}

	input := goalsInput{}
	if err := parseJSONBody(c, &input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}

	updated, err := handler.profile.UpdateGoals(user.ID, services.GoalsUpdate{
		DailyCalorieGoal: input.DailyCalorieGoal,
		WaterGoal:        input.WaterGoal,
		StepGoal:         input.StepGoal,
	})
	if err != nil {
		return handler.respondServiceError(c, err)
	}
	return c.JSON(updated)
}

func (handler *Handler) upstreamContext(c *fiber.Ctx) (context.Context, context.CancelFunc) {
	ctx := c.UserContext()
	if handler.upstreamTimeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, handler.upstreamTimeout)
}
