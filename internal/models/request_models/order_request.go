package request_models

type CreateOrderRequest struct {
	OfferDetailID string `json:"offer_detail_id" binding:"required,uuid"`
}

type UpdateOrderRequest struct {
	Status string `json:"status" binding:"required"`
}
