package controllers

import (
	"github.com/gin-gonic/gin"

	"servio/internal/models/request_models"
	"servio/internal/services"
	"servio/pkg/utils"
)

type ReviewController struct {
	reviewService services.ReviewServiceInterface
}

func NewReviewController(reviewService services.ReviewServiceInterface) *ReviewController {
	return &ReviewController{
		reviewService: reviewService,
	}
}

// CreateReview godoc
// @Summary Rate a business
// @Tags Reviews
// @Accept json
// @Produce json
// @Param request body request_models.CreateReviewRequest true "Review payload"
// @Success 201 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Failure 403 {object} utils.APIResponse
// @Security BearerAuth
// @Router /reviews [post]
func (r *ReviewController) CreateReview(c *gin.Context) {
	var req request_models.CreateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondBindingError(c, err)
		return
	}

	review, err := r.reviewService.CreateReview(c.Request.Context(), c.GetString("user_id"), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondCreated(c, review, "Review created successfully")
}

// ListReviews godoc
// @Summary List reviews
// @Tags Reviews
// @Produce json
// @Param business_user_id query string false "Filter by rated business"
// @Param reviewer_id query string false "Filter by author"
// @Param ordering query string false "updated_at, -updated_at, rating or -rating"
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /reviews [get]
func (r *ReviewController) ListReviews(c *gin.Context) {
	reviews, err := r.reviewService.ListReviews(
		c.Request.Context(),
		c.Query("business_user_id"),
		c.Query("reviewer_id"),
		c.Query("ordering"),
	)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, reviews, "Reviews fetched successfully")
}

// GetReview godoc
// @Summary Get one of the caller's reviews
// @Tags Reviews
// @Produce json
// @Param id path string true "Review ID"
// @Success 200 {object} utils.APIResponse
// @Failure 403 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Security BearerAuth
// @Router /reviews/{id} [get]
func (r *ReviewController) GetReview(c *gin.Context) {
	review, err := r.reviewService.GetReview(c.Request.Context(), c.GetString("user_id"), c.Param("id"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, review, "Review fetched successfully")
}

// UpdateReview godoc
// @Summary Update one of the caller's reviews
// @Tags Reviews
// @Accept json
// @Produce json
// @Param id path string true "Review ID"
// @Param request body request_models.UpdateReviewRequest true "Fields to update"
// @Success 200 {object} utils.APIResponse
// @Failure 403 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Security BearerAuth
// @Router /reviews/{id} [patch]
func (r *ReviewController) UpdateReview(c *gin.Context) {
	var req request_models.UpdateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondBindingError(c, err)
		return
	}

	review, err := r.reviewService.UpdateReview(c.Request.Context(), c.GetString("user_id"), c.Param("id"), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, review, "Review updated successfully")
}

// DeleteReview godoc
// @Summary Delete one of the caller's reviews
// @Tags Reviews
// @Param id path string true "Review ID"
// @Success 204
// @Failure 403 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Security BearerAuth
// @Router /reviews/{id} [delete]
func (r *ReviewController) DeleteReview(c *gin.Context) {
	if err := r.reviewService.DeleteReview(c.Request.Context(), c.GetString("user_id"), c.Param("id")); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondNoContent(c)
}
