package dashboardfx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"servio/internal/config"
	"servio/internal/repositories"
	"servio/internal/services"
	mem "servio/pkg/memcache"
)

var Module = fx.Provide(provideDashboardRepo, provideDashboardService)

func provideDashboardRepo(db *gorm.DB) repositories.DashboardRepository {
	return repositories.NewDashboardRepository(db)
}

func provideDashboardService(repo repositories.DashboardRepository, cache mem.SnapshotStore, cfg *config.Config) services.DashboardServiceInterface {
	return services.NewDashboardService(repo, cache, cfg.DashboardCacheTTL)
}
