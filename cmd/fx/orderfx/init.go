package orderfx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"servio/internal/repositories"
	"servio/internal/services"
)

var Module = fx.Provide(provideOrderRepo, provideOrderService)

func provideOrderRepo(db *gorm.DB) repositories.OrderRepositoryInterface {
	return repositories.NewOrderRepository(db)
}

func provideOrderService(repo repositories.OrderRepositoryInterface, offers repositories.OfferRepositoryInterface, users repositories.UserRepositoryInterface) services.OrderServiceInterface {
	return services.NewOrderService(repo, offers, users)
}
