package services

import (
	"context"
	"time"

	"github.com/google/uuid"

	"servio/internal/models/db_models"
	"servio/internal/repositories"
	"servio/pkg/utils"
)

func testTokens() *utils.TokenManager {
	return utils.NewTokenManager("test-secret", time.Hour)
}

// ---------------------------------------------------------------------------
// In-memory user repository
// ---------------------------------------------------------------------------

type stubUserRepo struct {
	users    map[string]*db_models.User
	profiles map[string]*db_models.Profile

	createErr error
	getErr    error
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{
		users:    make(map[string]*db_models.User),
		profiles: make(map[string]*db_models.Profile),
	}
}

func (r *stubUserRepo) add(user *db_models.User) *db_models.User {
	if user.ID == uuid.Nil {
		user.ID = uuid.New()
	}
	if user.CreatedAt == 0 {
		now := time.Now().Unix()
		user.CreatedAt = now
		user.UpdatedAt = now
	}
	r.users[user.ID.String()] = user
	r.profiles[user.ID.String()] = &db_models.Profile{
		BaseModel: db_models.BaseModel{ID: uuid.New()},
		UserID:    user.ID,
	}
	return user
}

func seedUser(repo *stubUserRepo, username string, role db_models.Role) *db_models.User {
	return repo.add(&db_models.User{
		Username: username,
		Email:    username + "@example.com",
		Role:     role,
	})
}

func (r *stubUserRepo) CreateUserWithProfile(_ context.Context, user *db_models.User, profile *db_models.Profile) error {
	if r.createErr != nil {
		return r.createErr
	}
	for _, u := range r.users {
		if u.Email == user.Email || u.Username == user.Username {
			return utils.ErrDuplicateRecord
		}
	}
	if user.ID == uuid.Nil {
		user.ID = uuid.New()
	}
	now := time.Now().Unix()
	user.CreatedAt = now
	user.UpdatedAt = now
	profile.UserID = user.ID
	if profile.ID == uuid.Nil {
		profile.ID = uuid.New()
	}
	r.users[user.ID.String()] = user
	r.profiles[user.ID.String()] = profile
	return nil
}

func (r *stubUserRepo) GetUserByID(_ context.Context, id string) (*db_models.User, error) {
	if r.getErr != nil {
		return nil, r.getErr
	}
	u, ok := r.users[id]
	if !ok {
		return nil, nil
	}
	clone := *u
	if p, ok := r.profiles[id]; ok {
		clone.Profile = *p
	}
	return &clone, nil
}

func (r *stubUserRepo) GetUserByUsername(_ context.Context, username string) (*db_models.User, error) {
	for _, u := range r.users {
		if u.Username == username {
			clone := *u
			return &clone, nil
		}
	}
	return nil, nil
}

func (r *stubUserRepo) GetUserByEmail(_ context.Context, email string) (*db_models.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			clone := *u
			return &clone, nil
		}
	}
	return nil, nil
}

func (r *stubUserRepo) UpdateUser(_ context.Context, user *db_models.User) error {
	clone := *user
	r.users[user.ID.String()] = &clone
	return nil
}

// ---------------------------------------------------------------------------
// In-memory profile repository, backed by the user stub
// ---------------------------------------------------------------------------

type stubProfileRepo struct {
	users     *stubUserRepo
	updateErr error
	lastEmail *string
}

func newStubProfileRepo(users *stubUserRepo) *stubProfileRepo {
	return &stubProfileRepo{users: users}
}

func (r *stubProfileRepo) GetProfileByUserID(_ context.Context, userID string) (*db_models.Profile, error) {
	p, ok := r.users.profiles[userID]
	if !ok {
		return nil, nil
	}
	clone := *p
	if u, ok := r.users.users[userID]; ok {
		clone.User = *u
	}
	return &clone, nil
}

func (r *stubProfileRepo) ListProfilesByRole(_ context.Context, role db_models.Role) ([]db_models.Profile, error) {
	var out []db_models.Profile
	for userID, p := range r.users.profiles {
		u, ok := r.users.users[userID]
		if !ok || u.Role != role {
			continue
		}
		clone := *p
		clone.User = *u
		out = append(out, clone)
	}
	return out, nil
}

func (r *stubProfileRepo) UpdateProfileWithEmail(_ context.Context, profile *db_models.Profile, newEmail *string) error {
	if r.updateErr != nil {
		return r.updateErr
	}
	r.lastEmail = newEmail
	stored := *profile
	stored.User = db_models.User{}
	r.users.profiles[profile.UserID.String()] = &stored
	if newEmail != nil {
		if u, ok := r.users.users[profile.UserID.String()]; ok {
			u.Email = *newEmail
		}
	}
	return nil
}

// ---------------------------------------------------------------------------
// In-memory offer repository
// ---------------------------------------------------------------------------

type stubOfferRepo struct {
	offers map[string]*db_models.Offer

	lastFilter repositories.OfferFilter
	listResult []db_models.Offer
	listCount  int64
	createErr  error
	updateErr  error
}

func newStubOfferRepo() *stubOfferRepo {
	return &stubOfferRepo{offers: make(map[string]*db_models.Offer)}
}

func (r *stubOfferRepo) CreateOffer(_ context.Context, offer *db_models.Offer) error {
	if r.createErr != nil {
		return r.createErr
	}
	if offer.ID == uuid.Nil {
		offer.ID = uuid.New()
	}
	now := time.Now().Unix()
	offer.CreatedAt = now
	offer.UpdatedAt = now
	for i := range offer.Details {
		if offer.Details[i].ID == uuid.Nil {
			offer.Details[i].ID = uuid.New()
		}
		offer.Details[i].OfferID = offer.ID
	}
	r.offers[offer.ID.String()] = offer
	return nil
}

func (r *stubOfferRepo) GetOfferByID(_ context.Context, id string) (*db_models.Offer, error) {
	o, ok := r.offers[id]
	if !ok {
		return nil, nil
	}
	clone := *o
	clone.Details = append([]db_models.Detail{}, o.Details...)
	return &clone, nil
}

func (r *stubOfferRepo) GetDetailByID(_ context.Context, id string) (*db_models.Detail, error) {
	for _, o := range r.offers {
		for i := range o.Details {
			if o.Details[i].ID.String() == id {
				clone := o.Details[i]
				return &clone, nil
			}
		}
	}
	return nil, nil
}

func (r *stubOfferRepo) ListOffers(_ context.Context, filter repositories.OfferFilter) ([]db_models.Offer, int64, error) {
	r.lastFilter = filter
	return r.listResult, r.listCount, nil
}

func (r *stubOfferRepo) UpdateOfferWithDetails(_ context.Context, offer *db_models.Offer) error {
	if r.updateErr != nil {
		return r.updateErr
	}
	clone := *offer
	clone.Details = append([]db_models.Detail{}, offer.Details...)
	r.offers[offer.ID.String()] = &clone
	return nil
}

func (r *stubOfferRepo) DeleteOffer(_ context.Context, id string) error {
	delete(r.offers, id)
	return nil
}

// detailID finds the stored tier of the given type for an offer.
func (r *stubOfferRepo) detailID(offerID string, tier db_models.OfferTier) string {
	o := r.offers[offerID]
	for i := range o.Details {
		if o.Details[i].OfferType == tier {
			return o.Details[i].ID.String()
		}
	}
	return ""
}

// ---------------------------------------------------------------------------
// In-memory order repository
// ---------------------------------------------------------------------------

type stubOrderRepo struct {
	orders    map[string]*db_models.Order
	createErr error
}

func newStubOrderRepo() *stubOrderRepo {
	return &stubOrderRepo{orders: make(map[string]*db_models.Order)}
}

func (r *stubOrderRepo) CreateOrder(_ context.Context, order *db_models.Order) error {
	if r.createErr != nil {
		return r.createErr
	}
	if order.ID == uuid.Nil {
		order.ID = uuid.New()
	}
	now := time.Now().Unix()
	order.CreatedAt = now
	order.UpdatedAt = now
	clone := *order
	r.orders[order.ID.String()] = &clone
	return nil
}

func (r *stubOrderRepo) GetOrderByID(_ context.Context, id string) (*db_models.Order, error) {
	o, ok := r.orders[id]
	if !ok {
		return nil, nil
	}
	clone := *o
	return &clone, nil
}

func (r *stubOrderRepo) ListOrdersForUser(_ context.Context, userID string, role db_models.Role) ([]db_models.Order, error) {
	var out []db_models.Order
	for _, o := range r.orders {
		if role == db_models.RoleBusiness && o.BusinessUserID.String() == userID {
			out = append(out, *o)
		}
		if role == db_models.RoleCustomer && o.CustomerUserID.String() == userID {
			out = append(out, *o)
		}
	}
	return out, nil
}

func (r *stubOrderRepo) UpdateOrder(_ context.Context, order *db_models.Order) error {
	clone := *order
	r.orders[order.ID.String()] = &clone
	return nil
}

func (r *stubOrderRepo) DeleteOrder(_ context.Context, id string) error {
	delete(r.orders, id)
	return nil
}

func (r *stubOrderRepo) CountOrdersForBusiness(_ context.Context, businessUserID string, status db_models.OrderStatus) (int64, error) {
	var n int64
	for _, o := range r.orders {
		if o.BusinessUserID.String() == businessUserID && o.Status == status {
			n++
		}
	}
	return n, nil
}

// ---------------------------------------------------------------------------
// In-memory review repository
// ---------------------------------------------------------------------------

type stubReviewRepo struct {
	reviews    map[string]*db_models.Review
	lastFilter repositories.ReviewFilter
	createErr  error
}

func newStubReviewRepo() *stubReviewRepo {
	return &stubReviewRepo{reviews: make(map[string]*db_models.Review)}
}

func (r *stubReviewRepo) CreateReview(_ context.Context, review *db_models.Review) error {
	if r.createErr != nil {
		return r.createErr
	}
	for _, existing := range r.reviews {
		if existing.BusinessUserID == review.BusinessUserID && existing.ReviewerID == review.ReviewerID {
			return utils.ErrDuplicateRecord
		}
	}
	if review.ID == uuid.Nil {
		review.ID = uuid.New()
	}
	now := time.Now().Unix()
	review.CreatedAt = now
	review.UpdatedAt = now
	clone := *review
	r.reviews[review.ID.String()] = &clone
	return nil
}

func (r *stubReviewRepo) GetReviewByID(_ context.Context, id string) (*db_models.Review, error) {
	rv, ok := r.reviews[id]
	if !ok {
		return nil, nil
	}
	clone := *rv
	return &clone, nil
}

func (r *stubReviewRepo) ExistsForPair(_ context.Context, businessUserID, reviewerID string) (bool, error) {
	for _, rv := range r.reviews {
		if rv.BusinessUserID.String() == businessUserID && rv.ReviewerID.String() == reviewerID {
			return true, nil
		}
	}
	return false, nil
}

func (r *stubReviewRepo) ListReviews(_ context.Context, filter repositories.ReviewFilter) ([]db_models.Review, error) {
	r.lastFilter = filter
	var out []db_models.Review
	for _, rv := range r.reviews {
		if filter.BusinessUserID != "" && rv.BusinessUserID.String() != filter.BusinessUserID {
			continue
		}
		if filter.ReviewerID != "" && rv.ReviewerID.String() != filter.ReviewerID {
			continue
		}
		out = append(out, *rv)
	}
	return out, nil
}

func (r *stubReviewRepo) UpdateReview(_ context.Context, review *db_models.Review) error {
	clone := *review
	r.reviews[review.ID.String()] = &clone
	return nil
}

func (r *stubReviewRepo) DeleteReview(_ context.Context, id string) error {
	delete(r.reviews, id)
	return nil
}

// ---------------------------------------------------------------------------
// Canned dashboard repository
// ---------------------------------------------------------------------------

type stubDashboardRepo struct {
	reviews  int64
	avg      float64
	business int64
	offers   int64

	calls int
	err   error
}

func (r *stubDashboardRepo) CountReviews(_ context.Context) (int64, error) {
	r.calls++
	if r.err != nil {
		return 0, r.err
	}
	return r.reviews, nil
}

func (r *stubDashboardRepo) AverageRating(_ context.Context) (float64, error) {
	if r.err != nil {
		return 0, r.err
	}
	return r.avg, nil
}

func (r *stubDashboardRepo) CountBusinessUsers(_ context.Context) (int64, error) {
	if r.err != nil {
		return 0, r.err
	}
	return r.business, nil
}

func (r *stubDashboardRepo) CountOffers(_ context.Context) (int64, error) {
	if r.err != nil {
		return 0, r.err
	}
	return r.offers, nil
}
