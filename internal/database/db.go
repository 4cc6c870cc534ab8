package database

import (
	"fmt"

	"carimport/internal/model"

	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// Options controls how the connection pool is opened.
type Options struct {
	AutoMigrate bool
	LogSQL      bool
	MaxOpen     int
	MaxIdle     int
}

// NewConnection initializes a new connection pool using GORM
func NewConnection(dsn string, opts Options, logger *zap.Logger) (*gorm.DB, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	level := gormlogger.Warn
	if opts.LogSQL {
		level = gormlogger.Info
	}

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: newGormLogger(logger.Named("gorm"), level),
	})
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("database handle: %w", err)
	}
	if opts.MaxOpen > 0 {
		sqlDB.SetMaxOpenConns(opts.MaxOpen)
	}
	if opts.MaxIdle > 0 {
		sqlDB.SetMaxIdleConns(opts.MaxIdle)
	}

	if opts.AutoMigrate {
		if err := Migrate(db); err != nil {
			logger.Warn("failed to auto-migrate models", zap.Error(err))
		}
	}

	return db, nil
}

// Migrate creates or updates the tables the service reads.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&model.ShippingCity{},
	)
}
