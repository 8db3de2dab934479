package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"servio/internal/models/db_models"
	"servio/pkg/utils"
)

type UserRepositoryInterface interface {
	// CreateUserWithProfile inserts the user and its empty profile in
	// one transaction so an account never exists half-registered.
	CreateUserWithProfile(ctx context.Context, user *db_models.User, profile *db_models.Profile) error

	GetUserByID(ctx context.Context, id string) (*db_models.User, error)
	GetUserByUsername(ctx context.Context, username string) (*db_models.User, error)
	GetUserByEmail(ctx context.Context, email string) (*db_models.User, error)
	UpdateUser(ctx context.Context, user *db_models.User) error
}

func NewUserRepository(db *gorm.DB) UserRepositoryInterface {
	return &userRepository{db: db}
}

type userRepository struct {
	db *gorm.DB
}

func (r *userRepository) CreateUserWithProfile(ctx context.Context, user *db_models.User, profile *db_models.Profile) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(user).Error; err != nil {
			return err
		}
		profile.UserID = user.ID
		return tx.Create(profile).Error
	})
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return utils.ErrDuplicateRecord
	}
	return err
}

func (r *userRepository) GetUserByID(ctx context.Context, id string) (*db_models.User, error) {
	var user db_models.User
	err := r.db.WithContext(ctx).Where("id = ?", id).Preload("Profile").First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) GetUserByUsername(ctx context.Context, username string) (*db_models.User, error) {
	var user db_models.User
	err := r.db.WithContext(ctx).Where("username = ?", username).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) GetUserByEmail(ctx context.Context, email string) (*db_models.User, error) {
	var user db_models.User
	err := r.db.WithContext(ctx).Where("email = ?", email).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) UpdateUser(ctx context.Context, user *db_models.User) error {
	err := r.db.WithContext(ctx).Save(user).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return utils.ErrDuplicateRecord
	}
	return err
}
