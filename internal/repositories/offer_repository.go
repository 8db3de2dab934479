package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"servio/internal/models/db_models"
)

// OfferFilter carries the validated list query. Ordering is one of
// the whitelisted column expressions, "" for the default.
type OfferFilter struct {
	CreatorID       string
	MinPrice        *int64
	MaxDeliveryTime *int
	Search          string
	Ordering        string
	Page            int
	PageSize        int
}

type OfferRepositoryInterface interface {
	CreateOffer(ctx context.Context, offer *db_models.Offer) error
	GetOfferByID(ctx context.Context, id string) (*db_models.Offer, error)
	GetDetailByID(ctx context.Context, id string) (*db_models.Detail, error)
	ListOffers(ctx context.Context, filter OfferFilter) ([]db_models.Offer, int64, error)

	// UpdateOfferWithDetails saves the offer row and every detail row
	// in one transaction. Callers pass the full resulting state.
	UpdateOfferWithDetails(ctx context.Context, offer *db_models.Offer) error

	DeleteOffer(ctx context.Context, id string) error
}

func NewOfferRepository(db *gorm.DB) OfferRepositoryInterface {
	return &offerRepository{db: db}
}

type offerRepository struct {
	db *gorm.DB
}

func (r *offerRepository) CreateOffer(ctx context.Context, offer *db_models.Offer) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Create(offer).Error
	})
}

func (r *offerRepository) GetOfferByID(ctx context.Context, id string) (*db_models.Offer, error) {
	var offer db_models.Offer
	err := r.db.WithContext(ctx).
		Where("id = ?", id).
		Preload("Details").
		Preload("User.Profile").
		First(&offer).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &offer, nil
}

func (r *offerRepository) GetDetailByID(ctx context.Context, id string) (*db_models.Detail, error) {
	var detail db_models.Detail
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&detail).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &detail, nil
}

func (r *offerRepository) ListOffers(ctx context.Context, filter OfferFilter) ([]db_models.Offer, int64, error) {
	query := r.db.WithContext(ctx).Model(&db_models.Offer{})

	if filter.CreatorID != "" {
		query = query.Where("user_id = ?", filter.CreatorID)
	}
	if filter.MinPrice != nil {
		query = query.Where("min_price >= ?", *filter.MinPrice)
	}
	if filter.MaxDeliveryTime != nil {
		query = query.Where("min_delivery_time <= ?", *filter.MaxDeliveryTime)
	}
	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		query = query.Where("(title ILIKE ? OR description ILIKE ?)", pattern, pattern)
	}

	var count int64
	if err := query.Count(&count).Error; err != nil {
		return nil, 0, err
	}

	ordering := filter.Ordering
	if ordering == "" {
		ordering = "updated_at DESC"
	}

	var offers []db_models.Offer
	err := query.
		Order(ordering).
		Offset((filter.Page - 1) * filter.PageSize).
		Limit(filter.PageSize).
		Preload("Details").
		Preload("User.Profile").
		Find(&offers).Error
	if err != nil {
		return nil, 0, err
	}
	return offers, count, nil
}

func (r *offerRepository) UpdateOfferWithDetails(ctx context.Context, offer *db_models.Offer) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit("Details", "User").Save(offer).Error; err != nil {
			return err
		}
		for i := range offer.Details {
			if err := tx.Save(&offer.Details[i]).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *offerRepository) DeleteOffer(ctx context.Context, id string) error {
	// Details go with the offer through the FK cascade.
	return r.db.WithContext(ctx).Delete(&db_models.Offer{}, "id = ?", id).Error
}
