package services

import (
	"context"

	"servio/internal/models/db_models"
	"servio/internal/models/request_models"
	"servio/internal/models/response_models"
	"servio/internal/repositories"
	"servio/pkg/utils"
)

type OrderServiceInterface interface {
	// CreateOrder snapshots the chosen tier into a new in_progress
	// order. Customer accounts only.
	CreateOrder(ctx context.Context, actingUserID string, request request_models.CreateOrderRequest) (*response_models.OrderResponse, error)

	// ListOrders returns the caller's orders: placed ones for
	// customers, received ones for businesses. Anonymous callers get
	// an empty list.
	ListOrders(ctx context.Context, actingUserID string) ([]response_models.OrderResponse, error)

	GetOrder(ctx context.Context, orderID string) (*response_models.OrderResponse, error)

	// UpdateOrderStatus moves the order through its lifecycle. Only
	// the assigned business account may call it.
	UpdateOrderStatus(ctx context.Context, actingUserID, orderID string, request request_models.UpdateOrderRequest) (*response_models.OrderResponse, error)

	// DeleteOrder removes an order outright. Staff accounts only.
	DeleteOrder(ctx context.Context, actingUserID, orderID string) error

	CountOrders(ctx context.Context, businessUserID string) (*response_models.OrderCountResponse, error)
	CountCompletedOrders(ctx context.Context, businessUserID string) (*response_models.CompletedOrderCountResponse, error)
}

type OrderService struct {
	orderRepo repositories.OrderRepositoryInterface
	offerRepo repositories.OfferRepositoryInterface
	userRepo  repositories.UserRepositoryInterface
}

func NewOrderService(orderRepo repositories.OrderRepositoryInterface, offerRepo repositories.OfferRepositoryInterface, userRepo repositories.UserRepositoryInterface) OrderServiceInterface {
	return &OrderService{
		orderRepo: orderRepo,
		offerRepo: offerRepo,
		userRepo:  userRepo,
	}
}

func (s *OrderService) CreateOrder(ctx context.Context, actingUserID string, request request_models.CreateOrderRequest) (*response_models.OrderResponse, error) {
	user, err := s.userRepo.GetUserByID(ctx, actingUserID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if user == nil || user.Role != db_models.RoleCustomer {
		return nil, utils.ErrForbidden
	}

	detail, err := s.offerRepo.GetDetailByID(ctx, request.OfferDetailID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if detail == nil {
		return nil, utils.ErrDetailNotFound
	}

	offer, err := s.offerRepo.GetOfferByID(ctx, detail.OfferID.String())
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if offer == nil {
		return nil, utils.ErrDetailNotFound
	}

	order := &db_models.Order{
		CustomerUserID:     user.ID,
		BusinessUserID:     offer.UserID,
		Title:              detail.Title,
		Revisions:          detail.Revisions,
		DeliveryTimeInDays: detail.DeliveryTimeInDays,
		Price:              detail.Price,
		Features:           append([]string{}, detail.Features...),
		OfferType:          detail.OfferType,
		Status:             db_models.OrderInProgress,
	}

	if err := s.orderRepo.CreateOrder(ctx, order); err != nil {
		return nil, utils.ErrDatabaseError
	}

	return toOrderResponse(order), nil
}

func (s *OrderService) ListOrders(ctx context.Context, actingUserID string) ([]response_models.OrderResponse, error) {
	if actingUserID == "" {
		return []response_models.OrderResponse{}, nil
	}

	user, err := s.userRepo.GetUserByID(ctx, actingUserID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if user == nil {
		return []response_models.OrderResponse{}, nil
	}

	orders, err := s.orderRepo.ListOrdersForUser(ctx, actingUserID, user.Role)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	responses := make([]response_models.OrderResponse, 0, len(orders))
	for i := range orders {
		responses = append(responses, *toOrderResponse(&orders[i]))
	}
	return responses, nil
}

func (s *OrderService) GetOrder(ctx context.Context, orderID string) (*response_models.OrderResponse, error) {
	order, err := s.orderRepo.GetOrderByID(ctx, orderID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if order == nil {
		return nil, utils.ErrOrderNotFound
	}
	return toOrderResponse(order), nil
}

func (s *OrderService) UpdateOrderStatus(ctx context.Context, actingUserID, orderID string, request request_models.UpdateOrderRequest) (*response_models.OrderResponse, error) {
	order, err := s.orderRepo.GetOrderByID(ctx, orderID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if order == nil {
		return nil, utils.ErrOrderNotFound
	}
	if order.BusinessUserID.String() != actingUserID {
		return nil, utils.ErrForbidden
	}

	status := db_models.OrderStatus(request.Status)
	if !status.Valid() {
		return nil, utils.NewFieldError("status", "status must be one of: in_progress, completed, canceled")
	}

	order.Status = status
	if err := s.orderRepo.UpdateOrder(ctx, order); err != nil {
		return nil, utils.ErrDatabaseError
	}
	return toOrderResponse(order), nil
}

func (s *OrderService) DeleteOrder(ctx context.Context, actingUserID, orderID string) error {
	user, err := s.userRepo.GetUserByID(ctx, actingUserID)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if user == nil || !user.IsStaff {
		return utils.ErrForbidden
	}

	order, err := s.orderRepo.GetOrderByID(ctx, orderID)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if order == nil {
		return utils.ErrOrderNotFound
	}

	if err := s.orderRepo.DeleteOrder(ctx, orderID); err != nil {
		return utils.ErrDatabaseError
	}
	return nil
}

func (s *OrderService) CountOrders(ctx context.Context, businessUserID string) (*response_models.OrderCountResponse, error) {
	if err := s.requireBusinessUser(ctx, businessUserID); err != nil {
		return nil, err
	}

	n, err := s.orderRepo.CountOrdersForBusiness(ctx, businessUserID, db_models.OrderInProgress)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	return &response_models.OrderCountResponse{OrderCount: n}, nil
}

func (s *OrderService) CountCompletedOrders(ctx context.Context, businessUserID string) (*response_models.CompletedOrderCountResponse, error) {
	if err := s.requireBusinessUser(ctx, businessUserID); err != nil {
		return nil, err
	}

	n, err := s.orderRepo.CountOrdersForBusiness(ctx, businessUserID, db_models.OrderCompleted)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	return &response_models.CompletedOrderCountResponse{CompletedOrderCount: n}, nil
}

func (s *OrderService) requireBusinessUser(ctx context.Context, userID string) error {
	user, err := s.userRepo.GetUserByID(ctx, userID)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if user == nil || user.Role != db_models.RoleBusiness {
		return utils.ErrUserNotFound
	}
	return nil
}

func toOrderResponse(order *db_models.Order) *response_models.OrderResponse {
	features := []string(order.Features)
	if features == nil {
		features = []string{}
	}
	return &response_models.OrderResponse{
		ID:                 order.ID.String(),
		CustomerUser:       order.CustomerUserID.String(),
		BusinessUser:       order.BusinessUserID.String(),
		Title:              order.Title,
		Revisions:          order.Revisions,
		DeliveryTimeInDays: order.DeliveryTimeInDays,
		Price:              order.Price,
		Features:           features,
		OfferType:          string(order.OfferType),
		Status:             string(order.Status),
		CreatedAt:          utils.FormatUnix(order.CreatedAt),
		UpdatedAt:          utils.FormatUnix(order.UpdatedAt),
	}
}
