package controllers

import (
	"github.com/gin-gonic/gin"

	"servio/internal/models/request_models"
	"servio/internal/services"
	"servio/pkg/utils"
)

type OrderController struct {
	orderService services.OrderServiceInterface
}

func NewOrderController(orderService services.OrderServiceInterface) *OrderController {
	return &OrderController{
		orderService: orderService,
	}
}

// CreateOrder godoc
// @Summary Order a pricing tier
// @Tags Orders
// @Accept json
// @Produce json
// @Param request body request_models.CreateOrderRequest true "Order payload"
// @Success 201 {object} utils.APIResponse
// @Failure 403 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Security BearerAuth
// @Router /orders [post]
func (o *OrderController) CreateOrder(c *gin.Context) {
	var req request_models.CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondBindingError(c, err)
		return
	}

	order, err := o.orderService.CreateOrder(c.Request.Context(), c.GetString("user_id"), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondCreated(c, order, "Order created successfully")
}

// ListOrders godoc
// @Summary List the caller's orders
// @Description Customers see orders they placed, businesses the ones they received. Anonymous callers get an empty list.
// @Tags Orders
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Router /orders [get]
func (o *OrderController) ListOrders(c *gin.Context) {
	orders, err := o.orderService.ListOrders(c.Request.Context(), c.GetString("user_id"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, orders, "Orders fetched successfully")
}

// GetOrder godoc
// @Summary Get one order
// @Tags Orders
// @Produce json
// @Param id path string true "Order ID"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Security BearerAuth
// @Router /orders/{id} [get]
func (o *OrderController) GetOrder(c *gin.Context) {
	order, err := o.orderService.GetOrder(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, order, "Order fetched successfully")
}

// UpdateOrder godoc
// @Summary Update an order's status
// @Tags Orders
// @Accept json
// @Produce json
// @Param id path string true "Order ID"
// @Param request body request_models.UpdateOrderRequest true "New status"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Failure 403 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Security BearerAuth
// @Router /orders/{id} [patch]
func (o *OrderController) UpdateOrder(c *gin.Context) {
	var req request_models.UpdateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondBindingError(c, err)
		return
	}

	order, err := o.orderService.UpdateOrderStatus(c.Request.Context(), c.GetString("user_id"), c.Param("id"), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, order, "Order updated successfully")
}

// DeleteOrder godoc
// @Summary Delete an order (staff only)
// @Tags Orders
// @Param id path string true "Order ID"
// @Success 204
// @Failure 403 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Security BearerAuth
// @Router /orders/{id} [delete]
func (o *OrderController) DeleteOrder(c *gin.Context) {
	if err := o.orderService.DeleteOrder(c.Request.Context(), c.GetString("user_id"), c.Param("id")); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondNoContent(c)
}

// OrderCount godoc
// @Summary Count a business's in-progress orders
// @Tags Orders
// @Produce json
// @Param business_user_id path string true "Business user ID"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Security BearerAuth
// @Router /order-count/{business_user_id} [get]
func (o *OrderController) OrderCount(c *gin.Context) {
	count, err := o.orderService.CountOrders(c.Request.Context(), c.Param("business_user_id"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, count, "Order count fetched successfully")
}

// CompletedOrderCount godoc
// @Summary Count a business's completed orders
// @Tags Orders
// @Produce json
// @Param business_user_id path string true "Business user ID"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Security BearerAuth
// @Router /completed-order-count/{business_user_id} [get]
func (o *OrderController) CompletedOrderCount(c *gin.Context) {
	count, err := o.orderService.CountCompletedOrders(c.Request.Context(), c.Param("business_user_id"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, count, "Completed order count fetched successfully")
}
