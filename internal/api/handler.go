package api

import (
	"context"
	"errors"
	"time"

	"github.com/terraincognita07/kalori/internal/i18n"
	"github.com/terraincognita07/kalori/internal/models"
	"github.com/terraincognita07/kalori/internal/services"
	"go.uber.org/zap"
)

type FoodAnalyzer interface {
	Analyze(ctx context.Context, imageBase64 string) (models.FoodAnalysis, error)
}

type Dependencies struct {
	Auth      *services.AuthService
	Profile   *services.ProfileService
	Nutrition *services.NutritionService
	Water     *services.WaterService
	Steps     *services.StepService
	Vitamins  *services.VitaminService
	Diets     *services.DietService
	Premium   *services.PremiumService
	Analyzer  FoodAnalyzer
	Languages *i18n.Manager
	Clock     services.Clock
	Logger    *zap.Logger
}

type Handler struct {
	auth      *services.AuthService
	profile   *services.ProfileService
	nutrition *services.NutritionService
	water     *services.WaterService
	steps     *services.StepService
	vitamins  *services.VitaminService
	diets     *services.DietService
	premium   *services.PremiumService
	analyzer  FoodAnalyzer
	languages *i18n.Manager
	clock     services.Clock
	logger    *zap.Logger

	cookieSecure    bool
	upstreamTimeout time.Duration
	exchangeLimiter *attemptLimiter
}

func NewHandler(deps Dependencies, cookieSecure bool, upstreamTimeout time.Duration) (*Handler, error) {
	switch {
	case deps.Auth == nil, deps.Profile == nil, deps.Nutrition == nil, deps.Water == nil:
		return nil, errors.New("api: tracking services are required")
	case deps.Steps == nil, deps.Vitamins == nil, deps.Diets == nil, deps.Premium == nil:
		return nil, errors.New("api: tracking services are required")
	case deps.Analyzer == nil:
		return nil, errors.New("api: food analyzer is required")
	case deps.Languages == nil:
		return nil, errors.New("api: i18n manager is required")
	}

	clock := deps.Clock
	if clock == nil {
		clock = services.SystemClock{}
	}
	logger := deps.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Handler{
		auth:            deps.Auth,
		profile:         deps.Profile,
		nutrition:       deps.Nutrition,
		water:           deps.Water,
		steps:           deps.Steps,
		vitamins:        deps.Vitamins,
		diets:           deps.Diets,
		premium:         deps.Premium,
		analyzer:        deps.Analyzer,
		languages:       deps.Languages,
		clock:           clock,
		logger:          logger,
		cookieSecure:    cookieSecure,
		upstreamTimeout: upstreamTimeout,
		exchangeLimiter: newAttemptLimiter(sessionExchangeAttemptsLimit, sessionExchangeAttemptsWindow),
	}, nil
}
