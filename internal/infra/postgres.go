package infra

import (
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"servio/internal/config"
	"servio/internal/models/db_models"
)

// InitPostgresql opens the connection pool and keeps the schema in
// sync. TranslateError is on so unique-index violations surface as
// gorm.ErrDuplicatedKey instead of driver-specific errors.
func InitPostgresql(cfg *config.Config) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(cfg.PostgresURL), &gorm.Config{
		TranslateError: true,
	})
	if err != nil {
		zap.L().Error("error connecting to database", zap.Error(err))
		return nil, err
	}

	if err := AutoMigrate(db); err != nil {
		zap.L().Error("error migrating schema", zap.Error(err))
		return nil, err
	}

	return db, nil
}

func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&db_models.User{},
		&db_models.Profile{},
		&db_models.Offer{},
		&db_models.Detail{},
		&db_models.Order{},
		&db_models.Review{},
	)
}

func ClosePostgresql(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		zap.L().Error("error getting database instance", zap.Error(err))
		return err
	}

	if err := sqlDB.Close(); err != nil {
		zap.L().Error("error closing database connection", zap.Error(err))
		return err
	}
	zap.L().Info("postgresql connection closed")
	return nil
}
