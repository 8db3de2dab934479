package repositories

import (
	"context"

	"gorm.io/gorm"

	"servio/internal/models/db_models"
)

type DashboardRepository interface {
	CountReviews(ctx context.Context) (int64, error)

	// AverageRating is the raw mean over all reviews, 0 when none.
	AverageRating(ctx context.Context) (float64, error)

	CountBusinessUsers(ctx context.Context) (int64, error)
	CountOffers(ctx context.Context) (int64, error)
}

func NewDashboardRepository(db *gorm.DB) DashboardRepository {
	return &dashboardRepository{db: db}
}

type dashboardRepository struct {
	db *gorm.DB
}

func (r *dashboardRepository) CountReviews(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&db_models.Review{}).Count(&n).Error
	return n, err
}

func (r *dashboardRepository) AverageRating(ctx context.Context) (float64, error) {
	var avg float64
	err := r.db.WithContext(ctx).
		Model(&db_models.Review{}).
		Select("COALESCE(AVG(rating), 0)").
		Scan(&avg).Error
	return avg, err
}

func (r *dashboardRepository) CountBusinessUsers(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).
		Model(&db_models.User{}).
		Where("role = ?", db_models.RoleBusiness).
		Count(&n).Error
	return n, err
}

func (r *dashboardRepository) CountOffers(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&db_models.Offer{}).Count(&n).Error
	return n, err
}
