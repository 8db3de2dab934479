package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"servio/internal/models/db_models"
)

type OrderRepositoryInterface interface {
	CreateOrder(ctx context.Context, order *db_models.Order) error
	GetOrderByID(ctx context.Context, id string) (*db_models.Order, error)

	// ListOrdersForUser returns the orders the user participates in,
	// matched on the side their role plays, newest first.
	ListOrdersForUser(ctx context.Context, userID string, role db_models.Role) ([]db_models.Order, error)

	UpdateOrder(ctx context.Context, order *db_models.Order) error
	DeleteOrder(ctx context.Context, id string) error
	CountOrdersForBusiness(ctx context.Context, businessUserID string, status db_models.OrderStatus) (int64, error)
}

func NewOrderRepository(db *gorm.DB) OrderRepositoryInterface {
	return &orderRepository{db: db}
}

type orderRepository struct {
	db *gorm.DB
}

func (r *orderRepository) CreateOrder(ctx context.Context, order *db_models.Order) error {
	return r.db.WithContext(ctx).Create(order).Error
}

func (r *orderRepository) GetOrderByID(ctx context.Context, id string) (*db_models.Order, error) {
	var order db_models.Order
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&order).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &order, nil
}

func (r *orderRepository) ListOrdersForUser(ctx context.Context, userID string, role db_models.Role) ([]db_models.Order, error) {
	column := "customer_user_id"
	if role == db_models.RoleBusiness {
		column = "business_user_id"
	}

	var orders []db_models.Order
	err := r.db.WithContext(ctx).
		Where(column+" = ?", userID).
		Order("created_at DESC").
		Find(&orders).Error
	if err != nil {
		return nil, err
	}
	return orders, nil
}

func (r *orderRepository) UpdateOrder(ctx context.Context, order *db_models.Order) error {
	return r.db.WithContext(ctx).Omit("Customer", "Business").Save(order).Error
}

func (r *orderRepository) DeleteOrder(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Delete(&db_models.Order{}, "id = ?", id).Error
}

func (r *orderRepository) CountOrdersForBusiness(ctx context.Context, businessUserID string, status db_models.OrderStatus) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).
		Model(&db_models.Order{}).
		Where("business_user_id = ? AND status = ?", businessUserID, status).
		Count(&n).Error
	return n, err
}
