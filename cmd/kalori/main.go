package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/terraincognita07/kalori/internal/api"
	"github.com/terraincognita07/kalori/internal/cli"
	"github.com/terraincognita07/kalori/internal/config"
	"github.com/terraincognita07/kalori/internal/db"
	"github.com/terraincognita07/kalori/internal/i18n"
	"github.com/terraincognita07/kalori/internal/identity"
	"github.com/terraincognita07/kalori/internal/logging"
	"github.com/terraincognita07/kalori/internal/services"
	"github.com/terraincognita07/kalori/internal/storage"
	"github.com/terraincognita07/kalori/internal/vision"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config load failed: %v", err)
	}

	if len(os.Args) > 1 {
		if err := runCommand(cfg, os.Args[1:]); err != nil {
			log.Fatalf("%v", err)
		}
		return
	}

	appLogger, err := logging.Setup(cfg.LogLevel)
	if err != nil {
		log.Fatalf("logger init failed: %v", err)
	}
	defer appLogger.Sync()

	if err := serve(cfg, appLogger); err != nil {
		appLogger.Fatal("server exited", zap.Error(err))
	}
}

func runCommand(cfg config.Config, args []string) error {
	switch args[0] {
	case "seed-diets":
		if len(args) != 2 {
			return errors.New("usage: kalori seed-diets <file.json>")
		}
		return cli.RunSeedDietsCommand(cfg.Database, args[1], os.Stdout)
	default:
		return fmt.Errorf("unknown command %q", args[0])
	}
}

func serve(cfg config.Config, appLogger *zap.Logger) error {
	database, err := db.Open(cfg.Database)
	if err != nil {
		return fmt.Errorf("database init failed: %w", err)
	}

	app, err := newApp(cfg, database, services.SystemClock{}, appLogger)
	if err != nil {
		return err
	}

	sigCtx, stopSignals := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stopSignals()

	go func() {
		<-sigCtx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := app.ShutdownWithContext(shutdownCtx); err != nil {
			appLogger.Error("server shutdown failed", zap.Error(err))
		}
	}()

	appLogger.Info("kalori listening",
		zap.String("port", cfg.Port),
		zap.String("db_driver", cfg.Database.Driver),
		zap.Bool("vision_configured", cfg.Vision.APIKey != ""),
		zap.Bool("s3_images", cfg.S3.Enabled()),
	)
	return app.Listen(":" + cfg.Port)
}

// newApp wires repositories, upstream clients and services into a fiber app.
func newApp(cfg config.Config, database *gorm.DB, clock services.Clock, appLogger *zap.Logger) (*fiber.App, error) {
	languages, err := i18n.NewManager(cfg.DefaultLanguage)
	if err != nil {
		return nil, fmt.Errorf("i18n init failed: %w", err)
	}

	repos := db.NewRepositories(database)

	diets := services.NewDietService(repos.Diets, clock)
	seeded, err := diets.SeedDefaultCatalog()
	if err != nil {
		return nil, err
	}
	if seeded > 0 {
		appLogger.Info("seeded diet catalog", zap.Int("plans", seeded))
	}

	analyzer := vision.NewAnalyzer(vision.Config{
		APIKey:  cfg.Vision.APIKey,
		BaseURL: cfg.Vision.BaseURL,
		Model:   cfg.Vision.Model,
		Timeout: cfg.UpstreamTimeout,
	}, appLogger.Named("vision"))

	handler, err := api.NewHandler(api.Dependencies{
		Auth:      services.NewAuthService(repos.Users, repos.Sessions, identity.NewClient(cfg.Identity.SessionURL, cfg.UpstreamTimeout), clock),
		Profile:   services.NewProfileService(repos.Users),
		Nutrition: services.NewNutritionService(repos.Meals, mealImageStore(cfg.S3), languages, clock, appLogger.Named("nutrition")),
		Water:     services.NewWaterService(repos.WaterLogs, clock),
		Steps:     services.NewStepService(repos.StepLogs, clock),
		Vitamins:  services.NewVitaminService(repos.Vitamins, languages, clock),
		Diets:     diets,
		Premium:   services.NewPremiumService(repos.Users, clock),
		Analyzer:  analyzer,
		Languages: languages,
		Clock:     clock,
		Logger:    appLogger,
	}, cfg.CookieSecure, cfg.UpstreamTimeout)
	if err != nil {
		return nil, fmt.Errorf("handler init failed: %w", err)
	}

	app := fiber.New(fiber.Config{
		AppName:               "Kalori",
		DisableStartupMessage: true,
		BodyLimit:             16 * 1024 * 1024,
	})
	app.Use(recover.New())
	app.Use(logger.New())
	api.RegisterRoutes(app, handler)
	return app, nil
}

func mealImageStore(cfg config.S3Config) services.MealImageStore {
	if !cfg.Enabled() {
		return storage.InlineImageStore{}
	}
	return storage.NewS3ImageStore(storage.S3Config{
		Endpoint:  cfg.Endpoint,
		Bucket:    cfg.Bucket,
		Region:    cfg.Region,
		AccessKey: cfg.AccessKey,
		SecretKey: cfg.SecretKey,
		PublicURL: cfg.PublicURL,
	})
}
