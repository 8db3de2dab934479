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

type ProfileServiceInterface interface {
	GetProfile(ctx context.Context, userID string) (*response_models.ProfileResponse, error)

	// UpdateProfile applies a partial update. Only the profile's own
	// user may call it; the ownership check runs before the lookup.
	UpdateProfile(ctx context.Context, actingUserID, targetUserID string, request request_models.UpdateProfileRequest) (*response_models.ProfileResponse, error)

	ListProfilesByRole(ctx context.Context, role db_models.Role) ([]response_models.ProfileResponse, error)
}

type ProfileService struct {
	profileRepo repositories.ProfileRepositoryInterface
	userRepo    repositories.UserRepositoryInterface
}

func NewProfileService(profileRepo repositories.ProfileRepositoryInterface, userRepo repositories.UserRepositoryInterface) ProfileServiceInterface {
	return &ProfileService{
		profileRepo: profileRepo,
		userRepo:    userRepo,
	}
}

func (p *ProfileService) GetProfile(ctx context.Context, userID string) (*response_models.ProfileResponse, error) {
	profile, err := p.profileRepo.GetProfileByUserID(ctx, userID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if profile == nil {
		return nil, utils.ErrProfileNotFound
	}
	return toProfileResponse(profile), nil
}

func (p *ProfileService) UpdateProfile(ctx context.Context, actingUserID, targetUserID string, request request_models.UpdateProfileRequest) (*response_models.ProfileResponse, error) {
	if actingUserID != targetUserID {
		return nil, utils.ErrForbidden
	}

	profile, err := p.profileRepo.GetProfileByUserID(ctx, targetUserID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if profile == nil {
		return nil, utils.ErrProfileNotFound
	}

	var newEmail *string
	if request.Email != nil && *request.Email != profile.User.Email {
		other, err := p.userRepo.GetUserByEmail(ctx, *request.Email)
		if err != nil {
			return nil, utils.ErrDatabaseError
		}
		if other != nil {
			return nil, utils.NewFieldError("email", "a user with that email already exists")
		}
		newEmail = request.Email
	}

	applyString := func(dst *string, src *string) {
		if src != nil {
			*dst = *src
		}
	}
	applyString(&profile.FirstName, request.FirstName)
	applyString(&profile.LastName, request.LastName)
	applyString(&profile.File, request.File)
	applyString(&profile.Location, request.Location)
	applyString(&profile.Tel, request.Tel)
	applyString(&profile.Description, request.Description)
	applyString(&profile.WorkingHours, request.WorkingHours)

	if err := p.profileRepo.UpdateProfileWithEmail(ctx, profile, newEmail); err != nil {
		if errors.Is(err, utils.ErrDuplicateRecord) {
			return nil, utils.NewFieldError("email", "a user with that email already exists")
		}
		return nil, utils.ErrDatabaseError
	}

	if newEmail != nil {
		profile.User.Email = *newEmail
	}
	return toProfileResponse(profile), nil
}

func (p *ProfileService) ListProfilesByRole(ctx context.Context, role db_models.Role) ([]response_models.ProfileResponse, error) {
	profiles, err := p.profileRepo.ListProfilesByRole(ctx, role)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	responses := make([]response_models.ProfileResponse, 0, len(profiles))
	for i := range profiles {
		responses = append(responses, *toProfileResponse(&profiles[i]))
	}
	return responses, nil
}

func toProfileResponse(profile *db_models.Profile) *response_models.ProfileResponse {
	return &response_models.ProfileResponse{
		User:         profile.UserID.String(),
		Username:     profile.User.Username,
		FirstName:    profile.FirstName,
		LastName:     profile.LastName,
		File:         profile.File,
		Location:     profile.Location,
		Tel:          profile.Tel,
		Description:  profile.Description,
		WorkingHours: profile.WorkingHours,
		Type:         string(profile.User.Role),
		Email:        profile.User.Email,
		CreatedAt:    utils.FormatUnix(profile.User.CreatedAt),
	}
}
