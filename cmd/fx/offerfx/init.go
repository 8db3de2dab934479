package offerfx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"servio/internal/repositories"
	"servio/internal/services"
)

var Module = fx.Provide(provideOfferRepo, provideOfferService)

func provideOfferRepo(db *gorm.DB) repositories.OfferRepositoryInterface {
	return repositories.NewOfferRepository(db)
}

func provideOfferService(repo repositories.OfferRepositoryInterface, users repositories.UserRepositoryInterface) services.OfferServiceInterface {
	return services.NewOfferService(repo, users)
}
