package response_models

type OrderResponse struct {
	ID                 string   `json:"id"`
	CustomerUser       string   `json:"customer_user"`
	BusinessUser       string   `json:"business_user"`
	Title              string   `json:"title"`
	Revisions          int      `json:"revisions"`
	DeliveryTimeInDays int      `json:"delivery_time_in_days"`
	Price              int64    `json:"price"`
	Features           []string `json:"features"`
	OfferType          string   `json:"offer_type"`
	Status             string   `json:"status"`
	CreatedAt          string   `json:"created_at"`
	UpdatedAt          string   `json:"updated_at"`
}

type OrderCountResponse struct {
	OrderCount int64 `json:"order_count"`
}

type CompletedOrderCountResponse struct {
	CompletedOrderCount int64 `json:"completed_order_count"`
}
