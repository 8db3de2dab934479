package services

import (
	"context"
	"errors"

	"servio/internal/models/db_models"
	"servio/internal/models/request_models"
	"servio/internal/models/response_models"
	"servio/internal/repositories"
	"servio/pkg/utils"
)

type AccountServiceInterface interface {
	Register(ctx context.Context, request request_models.RegistrationRequest) (*response_models.AuthResponse, error)
	Login(ctx context.Context, request request_models.LoginRequest) (*response_models.AuthResponse, error)
}

type AccountService struct {
	userRepo repositories.UserRepositoryInterface
	tokens   *utils.TokenManager
}

func NewAccountService(userRepo repositories.UserRepositoryInterface, tokens *utils.TokenManager) AccountServiceInterface {
	return &AccountService{
		userRepo: userRepo,
		tokens:   tokens,
	}
}

func (a *AccountService) Register(ctx context.Context, request request_models.RegistrationRequest) (*response_models.AuthResponse, error) {
	if request.Password != request.RepeatedPassword {
		return nil, utils.NewFieldError("password", "passwords do not match")
	}

	role := db_models.Role(request.Type)
	if request.Type == "" {
		role = db_models.RoleCustomer
	}
	if !role.Valid() {
		return nil, utils.NewFieldError("type", "type must be one of: customer, business")
	}

	existing, err := a.userRepo.GetUserByEmail(ctx, request.Email)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if existing != nil {
		return nil, utils.NewFieldError("email", "a user with that email already exists")
	}

	existing, err = a.userRepo.GetUserByUsername(ctx, request.Username)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if existing != nil {
		return nil, utils.NewFieldError("username", "a user with that username already exists")
	}

	hashedPassword, err := utils.HashPassword(request.Password)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	user := &db_models.User{
		Username:     request.Username,
		Email:        request.Email,
		PasswordHash: hashedPassword,
		Role:         role,
	}
	profile := &db_models.Profile{}

	if err := a.userRepo.CreateUserWithProfile(ctx, user, profile); err != nil {
		// The unique indexes catch writes that raced past the checks
		// above.
		if errors.Is(err, utils.ErrDuplicateRecord) {
			return nil, utils.NewFieldError("email", "a user with that email already exists")
		}
		return nil, utils.ErrDatabaseError
	}

	token, err := a.tokens.CreateToken(user.ID, string(user.Role))
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	return &response_models.AuthResponse{
		Token:    token,
		Username: user.Username,
		Email:    user.Email,
		UserID:   user.ID.String(),
	}, nil
}

func (a *AccountService) Login(ctx context.Context, request request_models.LoginRequest) (*response_models.AuthResponse, error) {
	user, err := a.userRepo.GetUserByUsername(ctx, request.Username)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if user == nil {
		return nil, utils.ErrInvalidCredentials
	}

	if err := utils.ComparePasswords(user.PasswordHash, request.Password); err != nil {
		return nil, utils.ErrInvalidCredentials
	}

	token, err := a.tokens.CreateToken(user.ID, string(user.Role))
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	return &response_models.AuthResponse{
		Token:    token,
		Username: user.Username,
		Email:    user.Email,
		UserID:   user.ID.String(),
	}, nil
}
