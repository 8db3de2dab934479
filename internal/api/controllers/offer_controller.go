package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"servio/internal/models/request_models"
	"servio/internal/services"
	"servio/pkg/utils"
)

type OfferController struct {
	offerService services.OfferServiceInterface
}

func NewOfferController(offerService services.OfferServiceInterface) *OfferController {
	return &OfferController{
		offerService: offerService,
	}
}

// CreateOffer godoc
// @Summary Create an offer with its three pricing tiers
// @Tags Offers
// @Accept json
// @Produce json
// @Param request body request_models.CreateOfferRequest true "Offer payload"
// @Success 201 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Failure 403 {object} utils.APIResponse
// @Security BearerAuth
// @Router /offers [post]
func (o *OfferController) CreateOffer(c *gin.Context) {
	var req request_models.CreateOfferRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondBindingError(c, err)
		return
	}

	offer, err := o.offerService.CreateOffer(c.Request.Context(), c.GetString("user_id"), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondCreated(c, offer, "Offer created successfully")
}

// ListOffers godoc
// @Summary List offers with filters and pagination
// @Tags Offers
// @Produce json
// @Param creator_id query string false "Filter by owner"
// @Param min_price query int false "Minimum price floor"
// @Param max_delivery_time query int false "Maximum delivery time"
// @Param search query string false "Match in title or description"
// @Param ordering query string false "updated_at, -updated_at, min_price or -min_price"
// @Param page query int false "Page number"
// @Param page_size query int false "Page size, up to 12"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Router /offers [get]
func (o *OfferController) ListOffers(c *gin.Context) {
	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Page must be greater than 0")
		return
	}
	pageSize, err := strconv.Atoi(c.DefaultQuery("page_size", "6"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Page size out of range")
		return
	}

	query := request_models.OfferListQuery{
		CreatorID:       c.Query("creator_id"),
		MinPrice:        c.Query("min_price"),
		MaxDeliveryTime: c.Query("max_delivery_time"),
		Search:          c.Query("search"),
		Ordering:        c.Query("ordering"),
		Page:            page,
		PageSize:        pageSize,
	}

	offers, err := o.offerService.ListOffers(c.Request.Context(), query)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, offers, "Offers fetched successfully")
}

// GetOffer godoc
// @Summary Get one offer with tier links
// @Tags Offers
// @Produce json
// @Param id path string true "Offer ID"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /offers/{id} [get]
func (o *OfferController) GetOffer(c *gin.Context) {
	offer, err := o.offerService.GetOffer(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, offer, "Offer fetched successfully")
}

// UpdateOffer godoc
// @Summary Update an offer and selected tiers
// @Tags Offers
// @Accept json
// @Produce json
// @Param id path string true "Offer ID"
// @Param request body request_models.UpdateOfferRequest true "Fields to update"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Failure 403 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Security BearerAuth
// @Router /offers/{id} [patch]
func (o *OfferController) UpdateOffer(c *gin.Context) {
	var req request_models.UpdateOfferRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondBindingError(c, err)
		return
	}

	offer, err := o.offerService.UpdateOffer(c.Request.Context(), c.GetString("user_id"), c.Param("id"), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, offer, "Offer updated successfully")
}

// DeleteOffer godoc
// @Summary Delete an offer and its tiers
// @Tags Offers
// @Param id path string true "Offer ID"
// @Success 204
// @Failure 403 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Security BearerAuth
// @Router /offers/{id} [delete]
func (o *OfferController) DeleteOffer(c *gin.Context) {
	if err := o.offerService.DeleteOffer(c.Request.Context(), c.GetString("user_id"), c.Param("id")); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondNoContent(c)
}

// GetOfferDetail godoc
// @Summary Get one pricing tier in full
// @Tags Offers
// @Produce json
// @Param id path string true "Detail ID"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /offerdetails/{id} [get]
func (o *OfferController) GetOfferDetail(c *gin.Context) {
	detail, err := o.offerService.GetDetail(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, detail, "Offer detail fetched successfully")
}
