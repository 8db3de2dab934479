package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"servio/internal/models/db_models"
	"servio/internal/models/request_models"
	"servio/pkg/utils"
)

func offerRequest() request_models.CreateOfferRequest {
	return request_models.CreateOfferRequest{
		Title:       "Logo design",
		Description: "Professional logo work",
		Details: []request_models.CreateDetailRequest{
			{Title: "Basic logo", Revisions: 2, DeliveryTimeInDays: 7, Price: 100, Features: []string{"1 concept"}, OfferType: "basic"},
			{Title: "Standard logo", Revisions: 5, DeliveryTimeInDays: 5, Price: 200, Features: []string{"3 concepts"}, OfferType: "standard"},
			{Title: "Premium logo", Revisions: -1, DeliveryTimeInDays: 3, Price: 500, Features: []string{"5 concepts", "source files"}, OfferType: "premium"},
		},
	}
}

func seedOffer(t *testing.T, svc OfferServiceInterface, ownerID string) string {
	t.Helper()
	created, err := svc.CreateOffer(context.Background(), ownerID, offerRequest())
	require.NoError(t, err)
	return created.ID
}

func TestOfferService_Create_RequiresBusiness(t *testing.T) {
	users := newStubUserRepo()
	customer := seedUser(users, "buyer", db_models.RoleCustomer)
	svc := NewOfferService(newStubOfferRepo(), users)

	_, err := svc.CreateOffer(context.Background(), customer.ID.String(), offerRequest())
	assert.ErrorIs(t, err, utils.ErrForbidden)

	_, err = svc.CreateOffer(context.Background(), "11111111-1111-1111-1111-111111111111", offerRequest())
	assert.ErrorIs(t, err, utils.ErrForbidden)
}

func TestOfferService_Create_ComputesMinimums(t *testing.T) {
	users := newStubUserRepo()
	owner := seedUser(users, "studio", db_models.RoleBusiness)
	users.profiles[owner.ID.String()].FirstName = "Max"
	repo := newStubOfferRepo()
	svc := NewOfferService(repo, users)

	created, err := svc.CreateOffer(context.Background(), owner.ID.String(), offerRequest())
	require.NoError(t, err)

	assert.Equal(t, int64(100), created.MinPrice)
	assert.Equal(t, 3, created.MinDeliveryTime)
	assert.Len(t, created.Details, 3)
	require.NotNil(t, created.UserDetails)
	assert.Equal(t, "studio", created.UserDetails.Username)
	assert.Equal(t, "Max", created.UserDetails.FirstName)

	stored := repo.offers[created.ID]
	require.NotNil(t, stored)
	assert.Equal(t, int64(100), stored.MinPrice)
	assert.Equal(t, 3, stored.MinDeliveryTime)
}

func TestOfferService_Create_DuplicateTierRejected(t *testing.T) {
	users := newStubUserRepo()
	owner := seedUser(users, "studio", db_models.RoleBusiness)
	svc := NewOfferService(newStubOfferRepo(), users)

	req := offerRequest()
	req.Details[1].OfferType = "basic"

	_, err := svc.CreateOffer(context.Background(), owner.ID.String(), req)

	var fieldErr *utils.FieldError
	require.ErrorAs(t, err, &fieldErr)
	assert.Equal(t, "details", fieldErr.Field)
}

func TestOfferService_Create_MissingTierRejected(t *testing.T) {
	users := newStubUserRepo()
	owner := seedUser(users, "studio", db_models.RoleBusiness)
	svc := NewOfferService(newStubOfferRepo(), users)

	req := offerRequest()
	req.Details = req.Details[:2]

	_, err := svc.CreateOffer(context.Background(), owner.ID.String(), req)

	var fieldErr *utils.FieldError
	require.ErrorAs(t, err, &fieldErr)
	assert.Equal(t, "details", fieldErr.Field)
}

func TestOfferService_ListOffers_InvalidPage(t *testing.T) {
	svc := NewOfferService(newStubOfferRepo(), newStubUserRepo())

	_, err := svc.ListOffers(context.Background(), request_models.OfferListQuery{Page: 0})
	assert.ErrorIs(t, err, utils.ErrInvalidPage)
}

func TestOfferService_ListOffers_PageSizeBounds(t *testing.T) {
	repo := newStubOfferRepo()
	svc := NewOfferService(repo, newStubUserRepo())

	_, err := svc.ListOffers(context.Background(), request_models.OfferListQuery{Page: 1, PageSize: 13})
	assert.ErrorIs(t, err, utils.ErrInvalidPageSize)

	_, err = svc.ListOffers(context.Background(), request_models.OfferListQuery{Page: 1, PageSize: -1})
	assert.ErrorIs(t, err, utils.ErrInvalidPageSize)

	paged, err := svc.ListOffers(context.Background(), request_models.OfferListQuery{Page: 1})
	require.NoError(t, err)
	assert.Equal(t, 6, paged.PageSize, "page size defaults to 6")
	assert.Equal(t, 6, repo.lastFilter.PageSize)
}

func TestOfferService_ListOffers_ValidatesFilterValues(t *testing.T) {
	svc := NewOfferService(newStubOfferRepo(), newStubUserRepo())

	cases := []struct {
		field string
		query request_models.OfferListQuery
	}{
		{"creator_id", request_models.OfferListQuery{Page: 1, CreatorID: "not-a-uuid"}},
		{"min_price", request_models.OfferListQuery{Page: 1, MinPrice: "abc"}},
		{"max_delivery_time", request_models.OfferListQuery{Page: 1, MaxDeliveryTime: "soon"}},
	}
	for _, tc := range cases {
		_, err := svc.ListOffers(context.Background(), tc.query)
		var fieldErr *utils.FieldError
		require.ErrorAs(t, err, &fieldErr, "query %+v", tc.query)
		assert.Equal(t, tc.field, fieldErr.Field)
	}
}

func TestOfferService_ListOffers_PassesParsedFilter(t *testing.T) {
	repo := newStubOfferRepo()
	svc := NewOfferService(repo, newStubUserRepo())

	creator := "7d444840-9dc0-11d1-b245-5ffdce74fad2"
	_, err := svc.ListOffers(context.Background(), request_models.OfferListQuery{
		Page:            2,
		PageSize:        12,
		CreatorID:       creator,
		MinPrice:        "150",
		MaxDeliveryTime: "7",
		Search:          "logo",
	})
	require.NoError(t, err)

	assert.Equal(t, creator, repo.lastFilter.CreatorID)
	require.NotNil(t, repo.lastFilter.MinPrice)
	assert.Equal(t, int64(150), *repo.lastFilter.MinPrice)
	require.NotNil(t, repo.lastFilter.MaxDeliveryTime)
	assert.Equal(t, 7, *repo.lastFilter.MaxDeliveryTime)
	assert.Equal(t, "logo", repo.lastFilter.Search)
	assert.Equal(t, 2, repo.lastFilter.Page)
	assert.Equal(t, 12, repo.lastFilter.PageSize)
}

func TestOfferService_ListOffers_OrderingWhitelist(t *testing.T) {
	repo := newStubOfferRepo()
	svc := NewOfferService(repo, newStubUserRepo())

	cases := map[string]string{
		"updated_at":  "updated_at ASC",
		"-updated_at": "updated_at DESC",
		"min_price":   "min_price ASC",
		"-min_price":  "min_price DESC",
		"price":       "",
		"":            "",
	}
	for input, want := range cases {
		_, err := svc.ListOffers(context.Background(), request_models.OfferListQuery{Page: 1, Ordering: input})
		require.NoError(t, err)
		assert.Equal(t, want, repo.lastFilter.Ordering, "ordering %q", input)
	}
}

func TestOfferService_ListOffers_MapsResults(t *testing.T) {
	users := newStubUserRepo()
	owner := seedUser(users, "studio", db_models.RoleBusiness)
	repo := newStubOfferRepo()
	svc := NewOfferService(repo, users)

	offerID := seedOffer(t, svc, owner.ID.String())
	stored := repo.offers[offerID]
	repo.listResult = []db_models.Offer{*stored}
	repo.listCount = 9

	paged, err := svc.ListOffers(context.Background(), request_models.OfferListQuery{Page: 1})
	require.NoError(t, err)

	assert.Equal(t, int64(9), paged.Count)
	assert.Equal(t, 1, paged.Page)
	require.Len(t, paged.Results, 1)
	assert.Equal(t, offerID, paged.Results[0].ID)
	assert.Len(t, paged.Results[0].Details, 3)
}

func TestOfferService_GetOffer_NotFound(t *testing.T) {
	svc := NewOfferService(newStubOfferRepo(), newStubUserRepo())

	_, err := svc.GetOffer(context.Background(), "11111111-1111-1111-1111-111111111111")
	assert.ErrorIs(t, err, utils.ErrOfferNotFound)
}

func TestOfferService_GetDetail_MapsFields(t *testing.T) {
	users := newStubUserRepo()
	owner := seedUser(users, "studio", db_models.RoleBusiness)
	repo := newStubOfferRepo()
	svc := NewOfferService(repo, users)

	offerID := seedOffer(t, svc, owner.ID.String())
	detailID := repo.detailID(offerID, db_models.TierPremium)
	require.NotEmpty(t, detailID)

	detail, err := svc.GetDetail(context.Background(), detailID)
	require.NoError(t, err)

	assert.Equal(t, "Premium logo", detail.Title)
	assert.Equal(t, -1, detail.Revisions)
	assert.Equal(t, 3, detail.DeliveryTimeInDays)
	assert.Equal(t, int64(500), detail.Price)
	assert.Equal(t, []string{"5 concepts", "source files"}, detail.Features)
	assert.Equal(t, "premium", detail.OfferType)
}

func TestOfferService_GetDetail_NotFound(t *testing.T) {
	svc := NewOfferService(newStubOfferRepo(), newStubUserRepo())

	_, err := svc.GetDetail(context.Background(), "11111111-1111-1111-1111-111111111111")
	assert.ErrorIs(t, err, utils.ErrDetailNotFound)
}

func TestOfferService_Update_NotFoundBeforeForbidden(t *testing.T) {
	svc := NewOfferService(newStubOfferRepo(), newStubUserRepo())

	_, err := svc.UpdateOffer(context.Background(), "anyone", "11111111-1111-1111-1111-111111111111", request_models.UpdateOfferRequest{})
	assert.ErrorIs(t, err, utils.ErrOfferNotFound)
}

func TestOfferService_Update_ForbiddenForNonOwner(t *testing.T) {
	users := newStubUserRepo()
	owner := seedUser(users, "studio", db_models.RoleBusiness)
	other := seedUser(users, "rival", db_models.RoleBusiness)
	repo := newStubOfferRepo()
	svc := NewOfferService(repo, users)

	offerID := seedOffer(t, svc, owner.ID.String())

	_, err := svc.UpdateOffer(context.Background(), other.ID.String(), offerID, request_models.UpdateOfferRequest{
		Title: strPtr("Taken over"),
	})
	assert.ErrorIs(t, err, utils.ErrForbidden)
}

func TestOfferService_Update_UnknownTierRejectsWholePatch(t *testing.T) {
	users := newStubUserRepo()
	owner := seedUser(users, "studio", db_models.RoleBusiness)
	repo := newStubOfferRepo()
	svc := NewOfferService(repo, users)

	offerID := seedOffer(t, svc, owner.ID.String())

	_, err := svc.UpdateOffer(context.Background(), owner.ID.String(), offerID, request_models.UpdateOfferRequest{
		Title: strPtr("New title"),
		Details: []request_models.UpdateDetailRequest{
			{OfferType: "gold", Title: strPtr("Gold tier")},
		},
	})

	var fieldErr *utils.FieldError
	require.ErrorAs(t, err, &fieldErr)
	assert.Equal(t, "details", fieldErr.Field)
	assert.Equal(t, "Logo design", repo.offers[offerID].Title, "failed patch must not apply the scalar changes")
}

func TestOfferService_Update_PatchesTierAndRecomputesMins(t *testing.T) {
	users := newStubUserRepo()
	owner := seedUser(users, "studio", db_models.RoleBusiness)
	repo := newStubOfferRepo()
	svc := NewOfferService(repo, users)

	offerID := seedOffer(t, svc, owner.ID.String())

	newPrice := int64(40)
	patched, err := svc.UpdateOffer(context.Background(), owner.ID.String(), offerID, request_models.UpdateOfferRequest{
		Details: []request_models.UpdateDetailRequest{
			{OfferType: "premium", Price: &newPrice},
		},
	})
	require.NoError(t, err)

	require.Len(t, patched.Details, 3)
	assert.Equal(t, "basic", patched.Details[0].OfferType)
	assert.Equal(t, "standard", patched.Details[1].OfferType)
	assert.Equal(t, "premium", patched.Details[2].OfferType)
	assert.Equal(t, int64(40), patched.Details[2].Price)

	stored := repo.offers[offerID]
	assert.Equal(t, int64(40), stored.MinPrice, "cached minimum follows the cheapest tier")
	assert.Equal(t, 3, stored.MinDeliveryTime)
}

func TestOfferService_Update_ScalarsOnly(t *testing.T) {
	users := newStubUserRepo()
	owner := seedUser(users, "studio", db_models.RoleBusiness)
	repo := newStubOfferRepo()
	svc := NewOfferService(repo, users)

	offerID := seedOffer(t, svc, owner.ID.String())

	patched, err := svc.UpdateOffer(context.Background(), owner.ID.String(), offerID, request_models.UpdateOfferRequest{
		Title: strPtr("Refreshed title"),
	})
	require.NoError(t, err)

	assert.Equal(t, "Refreshed title", patched.Title)
	assert.Len(t, patched.Details, 3, "response always carries the full tier set")
	assert.Equal(t, "Refreshed title", repo.offers[offerID].Title)
	assert.Equal(t, int64(100), repo.offers[offerID].MinPrice, "untouched tiers keep the minimums")
}

func TestOfferService_Delete_NotFound(t *testing.T) {
	svc := NewOfferService(newStubOfferRepo(), newStubUserRepo())

	err := svc.DeleteOffer(context.Background(), "anyone", "11111111-1111-1111-1111-111111111111")
	assert.ErrorIs(t, err, utils.ErrOfferNotFound)
}

func TestOfferService_Delete_ForbiddenForNonOwner(t *testing.T) {
	users := newStubUserRepo()
	owner := seedUser(users, "studio", db_models.RoleBusiness)
	other := seedUser(users, "rival", db_models.RoleBusiness)
	repo := newStubOfferRepo()
	svc := NewOfferService(repo, users)

	offerID := seedOffer(t, svc, owner.ID.String())

	err := svc.DeleteOffer(context.Background(), other.ID.String(), offerID)
	assert.ErrorIs(t, err, utils.ErrForbidden)
	assert.Contains(t, repo.offers, offerID)
}

func TestOfferService_Delete_RemovesOffer(t *testing.T) {
	users := newStubUserRepo()
	owner := seedUser(users, "studio", db_models.RoleBusiness)
	repo := newStubOfferRepo()
	svc := NewOfferService(repo, users)

	offerID := seedOffer(t, svc, owner.ID.String())

	err := svc.DeleteOffer(context.Background(), owner.ID.String(), offerID)
	require.NoError(t, err)
	assert.NotContains(t, repo.offers, offerID)
}
