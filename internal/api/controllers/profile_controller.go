package controllers

import (
	"github.com/gin-gonic/gin"

	"servio/internal/models/db_models"
	"servio/internal/models/request_models"
	"servio/internal/services"
	"servio/pkg/utils"
)

type ProfileController struct {
	profileService services.ProfileServiceInterface
}

func NewProfileController(profileService services.ProfileServiceInterface) *ProfileController {
	return &ProfileController{
		profileService: profileService,
	}
}

// GetProfile godoc
// @Summary Get a user's profile
// @Tags Profiles
// @Produce json
// @Param pk path string true "User ID"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Security BearerAuth
// @Router /profile/{pk} [get]
func (p *ProfileController) GetProfile(c *gin.Context) {
	profile, err := p.profileService.GetProfile(c.Request.Context(), c.Param("pk"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, profile, "Profile fetched successfully")
}

// UpdateProfile godoc
// @Summary Update the caller's own profile
// @Tags Profiles
// @Accept json
// @Produce json
// @Param pk path string true "User ID"
// @Param request body request_models.UpdateProfileRequest true "Fields to update"
// @Success 200 {object} utils.APIResponse
// @Failure 403 {object} utils.APIResponse
// @Security BearerAuth
// @Router /profile/{pk} [patch]
func (p *ProfileController) UpdateProfile(c *gin.Context) {
	var req request_models.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondBindingError(c, err)
		return
	}

	profile, err := p.profileService.UpdateProfile(c.Request.Context(), c.GetString("user_id"), c.Param("pk"), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, profile, "Profile updated successfully")
}

// ListBusinessProfiles godoc
// @Summary List all business profiles
// @Tags Profiles
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /profiles/business [get]
func (p *ProfileController) ListBusinessProfiles(c *gin.Context) {
	profiles, err := p.profileService.ListProfilesByRole(c.Request.Context(), db_models.RoleBusiness)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, profiles, "Profiles fetched successfully")
}

// ListCustomerProfiles godoc
// @Summary List all customer profiles
// @Tags Profiles
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /profiles/customer [get]
func (p *ProfileController) ListCustomerProfiles(c *gin.Context) {
	profiles, err := p.profileService.ListProfilesByRole(c.Request.Context(), db_models.RoleCustomer)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, profiles, "Profiles fetched successfully")
}
