package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/terraincognita07/kalori/internal/config"
	"github.com/terraincognita07/kalori/internal/db"
	"github.com/terraincognita07/kalori/internal/models"
	"github.com/terraincognita07/kalori/internal/services"
)

// RunSeedDietsCommand upserts the diet catalog from a JSON array of plans.
func RunSeedDietsCommand(databaseConfig config.DatabaseConfig, path string, out io.Writer) error {
	path = strings.TrimSpace(path)
	if path == "" {
		return errors.New("catalog file is required")
	}

	plans, err := readDietCatalog(path)
	if err != nil {
		return err
	}

	database, err := db.Open(databaseConfig)
	if err != nil {
		return fmt.Errorf("database init failed: %w", err)
	}
	if sqlDB, err := database.DB(); err == nil {
		defer sqlDB.Close()
	}

	diets := services.NewDietService(db.NewDietRepository(database), services.SystemClock{})
	if err := diets.ImportCatalog(plans); err != nil {
		return err
	}

	fmt.Fprintf(out, "✅ Imported %d diet plans from %s\n", len(plans), path)
	return nil
}

func readDietCatalog(path string) ([]models.DietPlan, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog: %w", err)
	}

	var plans []models.DietPlan
	if err := json.Unmarshal(raw, &plans); err != nil {
		return nil, fmt.Errorf("decode catalog: %w", err)
	}
	if len(plans) == 0 {
		return nil, errors.New("catalog is empty")
	}
	return plans, nil
}
