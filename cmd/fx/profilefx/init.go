package profilefx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"servio/internal/repositories"
	"servio/internal/services"
)

var Module = fx.Provide(provideProfileRepo, provideProfileService)

func provideProfileRepo(db *gorm.DB) repositories.ProfileRepositoryInterface {
	return repositories.NewProfileRepository(db)
}

func provideProfileService(repo repositories.ProfileRepositoryInterface, users repositories.UserRepositoryInterface) services.ProfileServiceInterface {
	return services.NewProfileService(repo, users)
}
