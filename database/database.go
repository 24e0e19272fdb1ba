package database

import (
	"fmt"
	"log"
	"strings"

	"cricket-club-site/models"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	_ "modernc.org/sqlite"
)

const sqlitePrefix = "sqlite://"

// Open connects to Postgres, or to SQLite when dsn starts with "sqlite://".
func Open(dsn string) (*gorm.DB, error) {
	cfg := &gorm.Config{Logger: logger.Default.LogMode(logger.Warn)}

	if strings.HasPrefix(dsn, sqlitePrefix) {
		return openSQLite(strings.TrimPrefix(dsn, sqlitePrefix), cfg)
	}

	db, err := gorm.Open(postgres.Open(dsn), cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	return db, nil
}

func openSQLite(path string, cfg *gorm.Config) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.New(sqlite.Config{
		DSN:        path + "?_pragma=busy_timeout(5000)&_pragma=foreign_keys(1)&_time_format=sqlite",
		DriverName: "sqlite",
	}), cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to open sqlite %s: %w", path, err)
	}

	// SQLite has a single writer; one connection keeps writes queued in-process
	// instead of failing with "database is locked".
	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(1)
	return db, nil
}

// Migrate creates or updates every table.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(models.All()...); err != nil {
		return fmt.Errorf("failed to migrate database: %w", err)
	}
	log.Println("✅ Database schema migrated")
	return nil
}

// Close releases the underlying connection pool.
func Close(db *gorm.DB) {
	if sqlDB, err := db.DB(); err == nil {
		_ = sqlDB.Close()
	}
}
