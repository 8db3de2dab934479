package services

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"servio/internal/models/db_models"
	"servio/internal/models/request_models"
	"servio/internal/models/response_models"
	"servio/internal/repositories"
	"servio/pkg/utils"
)

type ReviewServiceInterface interface {
	// CreateReview stores a customer's rating of a business. Each
	// reviewer may rate a given business once.
	CreateReview(ctx context.Context, actingUserID string, request request_models.CreateReviewRequest) (*response_models.ReviewResponse, error)

	ListReviews(ctx context.Context, businessUserID, reviewerID, ordering string) ([]response_models.ReviewResponse, error)
	GetReview(ctx context.Context, actingUserID, id string) (*response_models.ReviewResponse, error)
	UpdateReview(ctx context.Context, actingUserID, id string, request request_models.UpdateReviewRequest) (*response_models.ReviewResponse, error)
	DeleteReview(ctx context.Context, actingUserID, id string) error
}

type ReviewService struct {
	reviewRepo repositories.ReviewRepositoryInterface
	userRepo   repositories.UserRepositoryInterface
}

func NewReviewService(reviewRepo repositories.ReviewRepositoryInterface, userRepo repositories.UserRepositoryInterface) ReviewServiceInterface {
	return &ReviewService{
		reviewRepo: reviewRepo,
		userRepo:   userRepo,
	}
}

func (s *ReviewService) CreateReview(ctx context.Context, actingUserID string, request request_models.CreateReviewRequest) (*response_models.ReviewResponse, error) {
	reviewer, err := s.userRepo.GetUserByID(ctx, actingUserID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if reviewer == nil || reviewer.Role != db_models.RoleCustomer {
		return nil, utils.ErrForbidden
	}

	business, err := s.userRepo.GetUserByID(ctx, request.BusinessUser)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if business == nil {
		return nil, utils.NewFieldError("business_user", "business user not found")
	}
	if business.Role != db_models.RoleBusiness {
		return nil, utils.NewFieldError("business_user", "user is not a business account")
	}

	if err := validRating(*request.Rating); err != nil {
		return nil, err
	}

	exists, err := s.reviewRepo.ExistsForPair(ctx, business.ID.String(), reviewer.ID.String())
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if exists {
		return nil, utils.NewFieldError("business_user", "you have already rated this business")
	}

	review := &db_models.Review{
		BusinessUserID: business.ID,
		ReviewerID:     reviewer.ID,
		Rating:         *request.Rating,
		Description:    request.Description,
	}

	if err := s.reviewRepo.CreateReview(ctx, review); err != nil {
		// The (business, reviewer) unique index closes the window
		// between the existence check and the insert.
		if errors.Is(err, utils.ErrDuplicateRecord) {
			return nil, utils.NewFieldError("business_user", "you have already rated this business")
		}
		return nil, utils.ErrDatabaseError
	}

	return toReviewResponse(review), nil
}

func (s *ReviewService) ListReviews(ctx context.Context, businessUserID, reviewerID, ordering string) ([]response_models.ReviewResponse, error) {
	filter := repositories.ReviewFilter{Ordering: reviewOrdering(ordering)}

	if businessUserID != "" {
		if _, err := uuid.Parse(businessUserID); err != nil {
			return nil, utils.NewFieldError("business_user_id", "must be a valid uuid")
		}
		filter.BusinessUserID = businessUserID
	}
	if reviewerID != "" {
		if _, err := uuid.Parse(reviewerID); err != nil {
			return nil, utils.NewFieldError("reviewer_id", "must be a valid uuid")
		}
		filter.ReviewerID = reviewerID
	}

	reviews, err := s.reviewRepo.ListReviews(ctx, filter)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	responses := make([]response_models.ReviewResponse, 0, len(reviews))
	for i := range reviews {
		responses = append(responses, *toReviewResponse(&reviews[i]))
	}
	return responses, nil
}

func (s *ReviewService) GetReview(ctx context.Context, actingUserID, id string) (*response_models.ReviewResponse, error) {
	review, err := s.loadOwnReview(ctx, actingUserID, id)
	if err != nil {
		return nil, err
	}
	return toReviewResponse(review), nil
}

func (s *ReviewService) UpdateReview(ctx context.Context, actingUserID, id string, request request_models.UpdateReviewRequest) (*response_models.ReviewResponse, error) {
	review, err := s.loadOwnReview(ctx, actingUserID, id)
	if err != nil {
		return nil, err
	}

	if request.Rating != nil {
		if err := validRating(*request.Rating); err != nil {
			return nil, err
		}
		review.Rating = *request.Rating
	}
	if request.Description != nil {
		review.Description = *request.Description
	}

	if err := s.reviewRepo.UpdateReview(ctx, review); err != nil {
		return nil, utils.ErrDatabaseError
	}
	return toReviewResponse(review), nil
}

func (s *ReviewService) DeleteReview(ctx context.Context, actingUserID, id string) error {
	if _, err := s.loadOwnReview(ctx, actingUserID, id); err != nil {
		return err
	}

	if err := s.reviewRepo.DeleteReview(ctx, id); err != nil {
		return utils.ErrDatabaseError
	}
	return nil
}

// loadOwnReview fetches the review and enforces that the caller wrote
// it. Missing reviews 404 before the ownership check runs.
func (s *ReviewService) loadOwnReview(ctx context.Context, actingUserID, id string) (*db_models.Review, error) {
	review, err := s.reviewRepo.GetReviewByID(ctx, id)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if review == nil {
		return nil, utils.ErrReviewNotFound
	}
	if review.ReviewerID.String() != actingUserID {
		return nil, utils.ErrForbidden
	}
	return review, nil
}

func validRating(rating int) error {
	if rating < db_models.RatingMin || rating > db_models.RatingMax {
		return utils.NewFieldError("rating", "rating must be between 0 and 5")
	}
	return nil
}

func reviewOrdering(value string) string {
	switch value {
	case "updated_at":
		return "updated_at ASC"
	case "-updated_at":
		return "updated_at DESC"
	case "rating":
		return "rating ASC"
	case "-rating":
		return "rating DESC"
	default:
		return ""
	}
}

func toReviewResponse(review *db_models.Review) *response_models.ReviewResponse {
	return &response_models.ReviewResponse{
		ID:           review.ID.String(),
		BusinessUser: review.BusinessUserID.String(),
		Reviewer:     review.ReviewerID.String(),
		Rating:       review.Rating,
		Description:  review.Description,
		CreatedAt:    utils.FormatUnix(review.CreatedAt),
		UpdatedAt:    utils.FormatUnix(review.UpdatedAt),
	}
}
