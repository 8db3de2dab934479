package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"servio/internal/models/db_models"
	"servio/pkg/utils"
)

type ReviewFilter struct {
	BusinessUserID string
	ReviewerID     string
	Ordering       string
}

type ReviewRepositoryInterface interface {
	// CreateReview inserts the review; the unique index on
	// (business_user_id, reviewer_id) rejects a second rating.
	CreateReview(ctx context.Context, review *db_models.Review) error

	GetReviewByID(ctx context.Context, id string) (*db_models.Review, error)
	ExistsForPair(ctx context.Context, businessUserID, reviewerID string) (bool, error)
	ListReviews(ctx context.Context, filter ReviewFilter) ([]db_models.Review, error)
	UpdateReview(ctx context.Context, review *db_models.Review) error
	DeleteReview(ctx context.Context, id string) error
}

func NewReviewRepository(db *gorm.DB) ReviewRepositoryInterface {
	return &reviewRepository{db: db}
}

type reviewRepository struct {
	db *gorm.DB
}

func (r *reviewRepository) CreateReview(ctx context.Context, review *db_models.Review) error {
	err := r.db.WithContext(ctx).Create(review).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return utils.ErrDuplicateRecord
	}
	return err
}

func (r *reviewRepository) GetReviewByID(ctx context.Context, id string) (*db_models.Review, error) {
	var review db_models.Review
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&review).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &review, nil
}

func (r *reviewRepository) ExistsForPair(ctx context.Context, businessUserID, reviewerID string) (bool, error) {
	var n int64
	err := r.db.WithContext(ctx).
		Model(&db_models.Review{}).
		Where("business_user_id = ? AND reviewer_id = ?", businessUserID, reviewerID).
		Count(&n).Error
	return n > 0, err
}

func (r *reviewRepository) ListReviews(ctx context.Context, filter ReviewFilter) ([]db_models.Review, error) {
	query := r.db.WithContext(ctx).Model(&db_models.Review{})

	if filter.BusinessUserID != "" {
		query = query.Where("business_user_id = ?", filter.BusinessUserID)
	}
	if filter.ReviewerID != "" {
		query = query.Where("reviewer_id = ?", filter.ReviewerID)
	}

	ordering := filter.Ordering
	if ordering == "" {
		ordering = "updated_at DESC"
	}

	var reviews []db_models.Review
	err := query.Order(ordering).Find(&reviews).Error
	if err != nil {
		return nil, err
	}
	return reviews, nil
}

func (r *reviewRepository) UpdateReview(ctx context.Context, review *db_models.Review) error {
	return r.db.WithContext(ctx).Omit("Business", "Reviewer").Save(review).Error
}

func (r *reviewRepository) DeleteReview(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Delete(&db_models.Review{}, "id = ?", id).Error
}
