package api

import "github.com/gofiber/fiber/v2"

func RegisterRoutes(app *fiber.App, handler *Handler) {
	app.Get("/healthz", handler.Health)

	api := app.Group("/api")

	auth := api.Group("/auth")
	auth.Post("/session", handler.ExchangeSession)
	auth.Get("/me", handler.AuthRequired, handler.Me)
	auth.Post("/logout", handler.AuthRequired, handler.Logout)
	auth.Put("/profile", handler.AuthRequired, handler.UpdateProfile)

	user := api.Group("/user", handler.AuthRequired)
	user.Get("/profile", handler.Me)
	user.Put("/goals", handler.UpdateGoals)

	food := api.Group("/food", handler.AuthRequired)
	food.Post("/analyze", handler.AnalyzeFood)
	food.Post("/add-meal", handler.AddMeal)
	food.Get("/today", handler.TodayMeals)
	food.Get("/daily-summary", handler.DailySummary)
	food.Get("/database", handler.FoodDatabase)

	water := api.Group("/water", handler.AuthRequired)
	water.Post("/add", handler.AddWater)
	water.Get("/today", handler.TodayWater)
	water.Get("/weekly", handler.WeeklyWater)

	steps := api.Group("/steps", handler.AuthRequired)
	steps.Post("/sync", handler.SyncSteps)
	steps.Get("/today", handler.TodaySteps)
	steps.Post("/manual", handler.ManualSteps)

	vitamins := api.Group("/vitamins", handler.AuthRequired)
	vitamins.Get("/templates", handler.VitaminTemplates)
	vitamins.Get("/user", handler.UserVitamins)
	vitamins.Post("/add", handler.AddVitamin)
	vitamins.Put("/toggle", handler.ToggleVitamin)
	vitamins.Get("/today", handler.TodayVitamins)

	diets := api.Group("/diets", handler.AuthRequired)
	diets.Get("/premium", handler.DietCatalog)
	diets.Get("/user", handler.UserDiets)
	diets.Post("/user", handler.CreateUserDiet)
	diets.Delete("/user/:id", handler.DeleteUserDiet)
	diets.Post("/user/:id/activate", handler.ActivateUserDiet)

	api.Post("/premium/activate", handler.AuthRequired, handler.ActivatePremium)
	api.Get("/premium/status", handler.AuthRequired, handler.PremiumStatus)
	api.Post("/ads/watch", handler.AuthRequired, handler.WatchAds)

	app.Use(handler.NotFound)
}
