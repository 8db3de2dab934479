package request_models

type CreateOfferRequest struct {
	Title       string                `json:"title" binding:"required,max=255"`
	Image       *string               `json:"image"`
	Description string                `json:"description" binding:"required"`
	Details     []CreateDetailRequest `json:"details" binding:"required,len=3,dive"`
}

type CreateDetailRequest struct {
	Title              string   `json:"title" binding:"required,max=255"`
	Revisions          int      `json:"revisions" binding:"gte=-1"`
	DeliveryTimeInDays int      `json:"delivery_time_in_days" binding:"required,gte=1"`
	Price              int64    `json:"price" binding:"required,gt=0"`
	Features           []string `json:"features"`
	OfferType          string   `json:"offer_type" binding:"required,oneof=basic standard premium"`
}

// OfferListQuery carries the raw list filters as they arrived on the
// query string; the service parses and validates them.
type OfferListQuery struct {
	CreatorID       string
	MinPrice        string
	MaxDeliveryTime string
	Search          string
	Ordering        string
	Page            int
	PageSize        int
}

// UpdateOfferRequest patches scalars and, when details are present,
// the tiers they address. Details are matched by offer_type.
type UpdateOfferRequest struct {
	Title       *string               `json:"title" binding:"omitempty,max=255"`
	Image       *string               `json:"image"`
	Description *string               `json:"description"`
	Details     []UpdateDetailRequest `json:"details" binding:"omitempty,dive"`
}

type UpdateDetailRequest struct {
	OfferType          string    `json:"offer_type" binding:"required"`
	Title              *string   `json:"title" binding:"omitempty,max=255"`
	Revisions          *int      `json:"revisions" binding:"omitempty,gte=-1"`
	DeliveryTimeInDays *int      `json:"delivery_time_in_days" binding:"omitempty,gte=1"`
	Price              *int64    `json:"price" binding:"omitempty,gt=0"`
	Features           *[]string `json:"features"`
}
