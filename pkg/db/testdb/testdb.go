// Package testdb opens throwaway sqlite databases for repository tests.
package testdb

import (
	"path/filepath"
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/vanari-rv/caravan-configurator/pkg/db/models"
)

// Open returns a gorm handle backed by a fresh sqlite file with the
// full schema migrated. The file lives in the test's temp dir and is
// removed with it.
func Open(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := filepath.Join(t.TempDir(), "test.db")
	conn, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger:                 gormlogger.Default.LogMode(gormlogger.Silent),
		SkipDefaultTransaction: true,
	})
	if err != nil {
		t.Fatalf("opening sqlite test db: %v", err)
	}

	err = conn.AutoMigrate(
		&models.Category{},
		&models.ColorType{},
		&models.Color{},
		&models.Theme{},
		&models.VehicleModel{},
		&models.OptionCategory{},
		&models.AdditionalOption{},
		&models.ModelColorImage{},
		&models.ModelThemeImage{},
		&models.CustomerInfo{},
		&models.Order{},
		&models.OrderColor{},
		&models.OrderOption{},
	)
	if err != nil {
		t.Fatalf("migrating sqlite test db: %v", err)
	}

	t.Cleanup(func() {
		if sqlDB, dbErr := conn.DB(); dbErr == nil {
			_ = sqlDB.Close()
		}
	})

	return conn
}
