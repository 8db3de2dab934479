package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"servio/internal/models/db_models"
	"servio/pkg/utils"
)

type ProfileRepositoryInterface interface {
	// GetProfileByUserID loads the profile with its user row preloaded.
	GetProfileByUserID(ctx context.Context, userID string) (*db_models.Profile, error)

	ListProfilesByRole(ctx context.Context, role db_models.Role) ([]db_models.Profile, error)

	// UpdateProfileWithEmail saves the profile and, when newEmail is
	// set, the user's email in the same transaction.
	UpdateProfileWithEmail(ctx context.Context, profile *db_models.Profile, newEmail *string) error
}

func NewProfileRepository(db *gorm.DB) ProfileRepositoryInterface {
	return &profileRepository{db: db}
}

type profileRepository struct {
	db *gorm.DB
}

func (r *profileRepository) GetProfileByUserID(ctx context.Context, userID string) (*db_models.Profile, error) {
	var profile db_models.Profile
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Preload("User").
		First(&profile).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &profile, nil
}

func (r *profileRepository) ListProfilesByRole(ctx context.Context, role db_models.Role) ([]db_models.Profile, error) {
	var profiles []db_models.Profile
	err := r.db.WithContext(ctx).
		Joins("JOIN users ON users.id = profiles.user_id").
		Where("users.role = ?", role).
		Preload("User").
		Order("profiles.created_at DESC").
		Find(&profiles).Error
	if err != nil {
		return nil, err
	}
	return profiles, nil
}

func (r *profileRepository) UpdateProfileWithEmail(ctx context.Context, profile *db_models.Profile, newEmail *string) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit("User").Save(profile).Error; err != nil {
			return err
		}
		if newEmail != nil {
			return tx.Model(&db_models.User{}).
				Where("id = ?", profile.UserID).
				Update("email", *newEmail).Error
		}
		return nil
	})
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return utils.ErrDuplicateRecord
	}
	return err
}
