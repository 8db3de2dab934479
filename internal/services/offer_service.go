package services

import (
	"context"
	"sort"
	"strconv"

	"github.com/google/uuid"

	"servio/internal/models/db_models"
	"servio/internal/models/request_models"
	"servio/internal/models/response_models"
	"servio/internal/repositories"
	"servio/pkg/utils"
)

const (
	offerDefaultPageSize = 6
	offerMaxPageSize     = 12
	offerDetailURLPrefix = "/api/offerdetails/"
)

type OfferServiceInterface interface {
	// CreateOffer stores a new offer with its three tiers and the
	// cached minimums. Business accounts only.
	CreateOffer(ctx context.Context, actingUserID string, request request_models.CreateOfferRequest) (*response_models.OfferResponse, error)

	ListOffers(ctx context.Context, query request_models.OfferListQuery) (*response_models.PagedOffersResponse, error)
	GetOffer(ctx context.Context, id string) (*response_models.OfferResponse, error)
	GetDetail(ctx context.Context, id string) (*response_models.DetailResponse, error)

	// UpdateOffer patches scalars and tiers, validating every change
	// before applying any, then recomputes the cached minimums.
	UpdateOffer(ctx context.Context, actingUserID, offerID string, request request_models.UpdateOfferRequest) (*response_models.OfferPatchResponse, error)

	DeleteOffer(ctx context.Context, actingUserID, offerID string) error
}

type OfferService struct {
	offerRepo repositories.OfferRepositoryInterface
	userRepo  repositories.UserRepositoryInterface
}

func NewOfferService(offerRepo repositories.OfferRepositoryInterface, userRepo repositories.UserRepositoryInterface) OfferServiceInterface {
	return &OfferService{
		offerRepo: offerRepo,
		userRepo:  userRepo,
	}
}

func (o *OfferService) CreateOffer(ctx context.Context, actingUserID string, request request_models.CreateOfferRequest) (*response_models.OfferResponse, error) {
	user, err := o.userRepo.GetUserByID(ctx, actingUserID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if user == nil || user.Role != db_models.RoleBusiness {
		return nil, utils.ErrForbidden
	}

	seen := make(map[db_models.OfferTier]bool, 3)
	details := make([]db_models.Detail, 0, len(request.Details))
	for _, d := range request.Details {
		tier := db_models.OfferTier(d.OfferType)
		if seen[tier] {
			return nil, utils.NewFieldError("details", "details must contain one basic, one standard and one premium tier")
		}
		seen[tier] = true

		details = append(details, db_models.Detail{
			Title:              d.Title,
			Revisions:          d.Revisions,
			DeliveryTimeInDays: d.DeliveryTimeInDays,
			Price:              d.Price,
			Features:           append([]string{}, d.Features...),
			OfferType:          tier,
		})
	}
	for _, tier := range db_models.Tiers() {
		if !seen[tier] {
			return nil, utils.NewFieldError("details", "details must contain one basic, one standard and one premium tier")
		}
	}

	offer := &db_models.Offer{
		UserID:      user.ID,
		Title:       request.Title,
		Image:       request.Image,
		Description: request.Description,
		Details:     details,
	}
	offer.MinPrice, offer.MinDeliveryTime = computeMins(offer.Details)

	if err := o.offerRepo.CreateOffer(ctx, offer); err != nil {
		return nil, utils.ErrDatabaseError
	}

	return toOfferResponse(offer, user), nil
}

func (o *OfferService) ListOffers(ctx context.Context, query request_models.OfferListQuery) (*response_models.PagedOffersResponse, error) {
	if query.Page < 1 {
		return nil, utils.ErrInvalidPage
	}
	pageSize := query.PageSize
	if pageSize == 0 {
		pageSize = offerDefaultPageSize
	}
	if pageSize < 1 || pageSize > offerMaxPageSize {
		return nil, utils.ErrInvalidPageSize
	}

	filter := repositories.OfferFilter{
		Search:   query.Search,
		Ordering: offerOrdering(query.Ordering),
		Page:     query.Page,
		PageSize: pageSize,
	}

	if query.CreatorID != "" {
		if _, err := uuid.Parse(query.CreatorID); err != nil {
			return nil, utils.NewFieldError("creator_id", "must be a valid uuid")
		}
		filter.CreatorID = query.CreatorID
	}
	if query.MinPrice != "" {
		v, err := strconv.ParseInt(query.MinPrice, 10, 64)
		if err != nil {
			return nil, utils.NewFieldError("min_price", "must be an integer")
		}
		filter.MinPrice = &v
	}
	if query.MaxDeliveryTime != "" {
		v, err := strconv.Atoi(query.MaxDeliveryTime)
		if err != nil {
			return nil, utils.NewFieldError("max_delivery_time", "must be an integer")
		}
		filter.MaxDeliveryTime = &v
	}

	offers, count, err := o.offerRepo.ListOffers(ctx, filter)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	results := make([]response_models.OfferResponse, 0, len(offers))
	for i := range offers {
		results = append(results, *toOfferResponse(&offers[i], &offers[i].User))
	}

	return &response_models.PagedOffersResponse{
		Count:    count,
		Page:     query.Page,
		PageSize: pageSize,
		Results:  results,
	}, nil
}

func (o *OfferService) GetOffer(ctx context.Context, id string) (*response_models.OfferResponse, error) {
	offer, err := o.offerRepo.GetOfferByID(ctx, id)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if offer == nil {
		return nil, utils.ErrOfferNotFound
	}
	return toOfferResponse(offer, &offer.User), nil
}

func (o *OfferService) GetDetail(ctx context.Context, id string) (*response_models.DetailResponse, error) {
	detail, err := o.offerRepo.GetDetailByID(ctx, id)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if detail == nil {
		return nil, utils.ErrDetailNotFound
	}
	response := toDetailResponse(detail)
	return &response, nil
}

func (o *OfferService) UpdateOffer(ctx context.Context, actingUserID, offerID string, request request_models.UpdateOfferRequest) (*response_models.OfferPatchResponse, error) {
	offer, err := o.offerRepo.GetOfferByID(ctx, offerID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if offer == nil {
		return nil, utils.ErrOfferNotFound
	}
	if offer.UserID.String() != actingUserID {
		return nil, utils.ErrForbidden
	}

	// Resolve every addressed tier before touching anything so an
	// unknown offer_type rejects the whole request.
	type patchTarget struct {
		detail *db_models.Detail
		patch  request_models.UpdateDetailRequest
	}
	targets := make([]patchTarget, 0, len(request.Details))
	for _, d := range request.Details {
		tier := db_models.OfferTier(d.OfferType)
		if !tier.Valid() {
			return nil, utils.NewFieldError("details", "unknown offer_type: "+d.OfferType)
		}
		var match *db_models.Detail
		for i := range offer.Details {
			if offer.Details[i].OfferType == tier {
				match = &offer.Details[i]
				break
			}
		}
		if match == nil {
			return nil, utils.ErrDetailNotFound
		}
		targets = append(targets, patchTarget{detail: match, patch: d})
	}

	if request.Title != nil {
		offer.Title = *request.Title
	}
	if request.Image != nil {
		offer.Image = request.Image
	}
	if request.Description != nil {
		offer.Description = *request.Description
	}

	for _, t := range targets {
		if t.patch.Title != nil {
			t.detail.Title = *t.patch.Title
		}
		if t.patch.Revisions != nil {
			t.detail.Revisions = *t.patch.Revisions
		}
		if t.patch.DeliveryTimeInDays != nil {
			t.detail.DeliveryTimeInDays = *t.patch.DeliveryTimeInDays
		}
		if t.patch.Price != nil {
			t.detail.Price = *t.patch.Price
		}
		if t.patch.Features != nil {
			t.detail.Features = append([]string{}, (*t.patch.Features)...)
		}
	}

	offer.MinPrice, offer.MinDeliveryTime = computeMins(offer.Details)

	if err := o.offerRepo.UpdateOfferWithDetails(ctx, offer); err != nil {
		return nil, utils.ErrDatabaseError
	}

	sortDetails(offer.Details)
	detailResponses := make([]response_models.DetailResponse, 0, len(offer.Details))
	for i := range offer.Details {
		detailResponses = append(detailResponses, toDetailResponse(&offer.Details[i]))
	}

	return &response_models.OfferPatchResponse{
		ID:          offer.ID.String(),
		Title:       offer.Title,
		Image:       offer.Image,
		Description: offer.Description,
		Details:     detailResponses,
	}, nil
}

func (o *OfferService) DeleteOffer(ctx context.Context, actingUserID, offerID string) error {
	offer, err := o.offerRepo.GetOfferByID(ctx, offerID)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if offer == nil {
		return utils.ErrOfferNotFound
	}
	if offer.UserID.String() != actingUserID {
		return utils.ErrForbidden
	}

	if err := o.offerRepo.DeleteOffer(ctx, offerID); err != nil {
		return utils.ErrDatabaseError
	}
	return nil
}

// offerOrdering maps the public ordering parameter onto a column
// expression. Values outside the whitelist fall back to the default.
func offerOrdering(value string) string {
	switch value {
	case "updated_at":
		return "updated_at ASC"
	case "-updated_at":
		return "updated_at DESC"
	case "min_price":
		return "min_price ASC"
	case "-min_price":
		return "min_price DESC"
	default:
		return ""
	}
}

func computeMins(details []db_models.Detail) (int64, int) {
	if len(details) == 0 {
		return 0, 0
	}
	minPrice := details[0].Price
	minDelivery := details[0].DeliveryTimeInDays
	for _, d := range details[1:] {
		if d.Price < minPrice {
			minPrice = d.Price
		}
		if d.DeliveryTimeInDays < minDelivery {
			minDelivery = d.DeliveryTimeInDays
		}
	}
	return minPrice, minDelivery
}

func tierRank(tier db_models.OfferTier) int {
	switch tier {
	case db_models.TierBasic:
		return 0
	case db_models.TierStandard:
		return 1
	default:
		return 2
	}
}

func sortDetails(details []db_models.Detail) {
	sort.Slice(details, func(i, j int) bool {
		return tierRank(details[i].OfferType) < tierRank(details[j].OfferType)
	})
}

func toDetailResponse(detail *db_models.Detail) response_models.DetailResponse {
	features := []string(detail.Features)
	if features == nil {
		features = []string{}
	}
	return response_models.DetailResponse{
		ID:                 detail.ID.String(),
		Title:              detail.Title,
		Revisions:          detail.Revisions,
		DeliveryTimeInDays: detail.DeliveryTimeInDays,
		Price:              detail.Price,
		Features:           features,
		OfferType:          string(detail.OfferType),
	}
}

func toOfferResponse(offer *db_models.Offer, user *db_models.User) *response_models.OfferResponse {
	sortDetails(offer.Details)
	links := make([]response_models.DetailLink, 0, len(offer.Details))
	for i := range offer.Details {
		links = append(links, response_models.DetailLink{
			ID:  offer.Details[i].ID.String(),
			URL: offerDetailURLPrefix + offer.Details[i].ID.String(),
		})
	}

	response := &response_models.OfferResponse{
		ID:              offer.ID.String(),
		User:            offer.UserID.String(),
		Title:           offer.Title,
		Image:           offer.Image,
		Description:     offer.Description,
		CreatedAt:       utils.FormatUnix(offer.CreatedAt),
		UpdatedAt:       utils.FormatUnix(offer.UpdatedAt),
		Details:         links,
		MinPrice:        offer.MinPrice,
		MinDeliveryTime: offer.MinDeliveryTime,
	}
	if user != nil {
		response.UserDetails = &response_models.UserDetails{
			FirstName: user.Profile.FirstName,
			LastName:  user.Profile.LastName,
			Username:  user.Username,
		}
	}
	return response
}
