package db

import (
	"fmt"
	"sync"

	"github.com/pressly/goose/v3"
	embeddedmigrations "github.com/terraincognita07/kalori/migrations"
	"gorm.io/gorm"
)

type migrationDialect struct {
	goose string
	dir   string
}

var (
	dialectSQLite   = migrationDialect{goose: "sqlite3", dir: "sqlite"}
	dialectPostgres = migrationDialect{goose: "postgres", dir: "postgres"}
)

// goose keeps its base filesystem and dialect in package state.
var migrationMu sync.Mutex

func applyMigrations(database *gorm.DB, dialect migrationDialect) error {
	sqlDB, err := database.DB()
	if err != nil {
		return fmt.Errorf("resolve sql db: %w", err)
	}

	migrationMu.Lock()
	defer migrationMu.Unlock()

	goose.SetBaseFS(embeddedmigrations.Files)
	defer goose.SetBaseFS(nil)
	goose.SetLogger(migrationLogger())

	if err := goose.SetDialect(dialect.goose); err != nil {
		return fmt.Errorf("set dialect: %w", err)
	}
	if err := goose.Up(sqlDB, dialect.dir); err != nil {
		return fmt.Errorf("goose up: %w", err)
	}
	return nil
}
