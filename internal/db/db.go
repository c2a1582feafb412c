package db

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"gorm.io/driver/postgres"
	gormsqlite "gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
	_ "modernc.org/sqlite"

	"github.com/BruksfildServices01/salon-scheduler/internal/config"
	"github.com/BruksfildServices01/salon-scheduler/internal/models"
	"github.com/BruksfildServices01/salon-scheduler/internal/timezone"
)

// Open connects using the configured URL, tunes the pool and migrates the schema.
func Open(cfg *config.Config) (*gorm.DB, error) {
	db, err := Connect(cfg.DBUrl, &gorm.Config{
		NowFunc: timezone.Clock(cfg.Timezone),
		Logger:  logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, fmt.Errorf("connect database: %w", err)
	}

	if err := Migrate(db); err != nil {
		return nil, fmt.Errorf("migrate: %w", err)
	}

	return db, nil
}

// Connect opens PostgreSQL for postgres:// URLs and SQLite (modernc driver)
// for anything else, which keeps local runs and tests free of a server.
func Connect(dsn string, gormCfg *gorm.Config) (*gorm.DB, error) {
	if gormCfg == nil {
		gormCfg = &gorm.Config{}
	}

	if isPostgres(dsn) {
		gormCfg.PrepareStmt = true
		db, err := gorm.Open(postgres.Open(dsn), gormCfg)
		if err != nil {
			return nil, err
		}
		if err := tunePool(db, 10, 5); err != nil {
			return nil, err
		}
		return db, nil
	}

	slog.Info("using sqlite database", "dsn", dsn)

	db, err := gorm.Open(gormsqlite.New(gormsqlite.Config{
		DriverName: "sqlite",
		DSN:        dsn,
	}), gormCfg)
	if err != nil {
		return nil, err
	}

	// SQLite allows a single writer. The connection is never recycled so
	// the pragmas below stick and in-memory databases survive.
	if err := tunePool(db, 1, 1); err != nil {
		return nil, err
	}
	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetConnMaxLifetime(0)
	sqlDB.SetConnMaxIdleTime(0)

	// LIKE filters match case-sensitively, as they do on postgres.
	if err := db.Exec("PRAGMA case_sensitive_like = ON").Error; err != nil {
		return nil, fmt.Errorf("enable case sensitive like: %w", err)
	}
	return db, nil
}

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.Service{},
		&models.Branch{},
		&models.Client{},
		&models.UserPhoto{},
		&models.AuditLog{},
	)
}

func tunePool(db *gorm.DB, maxOpen, maxIdle int) error {
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("get sql.DB: %w", err)
	}

	sqlDB.SetMaxOpenConns(maxOpen)
	sqlDB.SetMaxIdleConns(maxIdle)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)
	sqlDB.SetConnMaxIdleTime(10 * time.Minute)
	return nil
}

func isPostgres(dsn string) bool {
	return strings.HasPrefix(dsn, "postgres://") || strings.HasPrefix(dsn, "postgresql://")
}
