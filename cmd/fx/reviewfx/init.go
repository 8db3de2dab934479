package reviewfx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"servio/internal/repositories"
	"servio/internal/services"
)

var Module = fx.Provide(provideReviewRepo, provideReviewService)

func provideReviewRepo(db *gorm.DB) repositories.ReviewRepositoryInterface {
	return repositories.NewReviewRepository(db)
}

func provideReviewService(repo repositories.ReviewRepositoryInterface, users repositories.UserRepositoryInterface) services.ReviewServiceInterface {
	return services.NewReviewService(repo, users)
}
