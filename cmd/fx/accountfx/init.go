package accountfx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"servio/internal/repositories"
	"servio/internal/services"
	"servio/pkg/utils"
)

var Module = fx.Provide(provideUserRepo, provideAccountService)

func provideUserRepo(db *gorm.DB) repositories.UserRepositoryInterface {
	return repositories.NewUserRepository(db)
}

func provideAccountService(repo repositories.UserRepositoryInterface, tokens *utils.TokenManager) services.AccountServiceInterface {
	return services.NewAccountService(repo, tokens)
}
