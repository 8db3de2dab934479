package dbfx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"servio/internal/config"
	"servio/internal/infra"
)

var Module = fx.Provide(provideDB)

func provideDB(cfg *config.Config) (*gorm.DB, error) {
	return infra.InitPostgresql(cfg)
}
