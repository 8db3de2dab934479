package response_models

// DetailLink points a client at the full tier payload without
// inlining it into offer listings.
type DetailLink struct {
	ID  string `json:"id"`
	URL string `json:"url"`
}

type UserDetails struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Username  string `json:"username"`
}

type OfferResponse struct {
	ID              string       `json:"id"`
	User            string       `json:"user"`
	Title           string       `json:"title"`
	Image           *string      `json:"image"`
	Description     string       `json:"description"`
	CreatedAt       string       `json:"created_at"`
	UpdatedAt       string       `json:"updated_at"`
	Details         []DetailLink `json:"details"`
	MinPrice        int64        `json:"min_price"`
	MinDeliveryTime int          `json:"min_delivery_time"`
	UserDetails     *UserDetails `json:"user_details,omitempty"`
}

type DetailResponse struct {
	ID                 string   `json:"id"`
	Title              string   `json:"title"`
	Revisions          int      `json:"revisions"`
	DeliveryTimeInDays int      `json:"delivery_time_in_days"`
	Price              int64    `json:"price"`
	Features           []string `json:"features"`
	OfferType          string   `json:"offer_type"`
}

// OfferPatchResponse is the update result: scalars plus the full
// resulting tier set.
type OfferPatchResponse struct {
	ID          string           `json:"id"`
	Title       string           `json:"title"`
	Image       *string          `json:"image"`
	Description string           `json:"description"`
	Details     []DetailResponse `json:"details"`
}

type PagedOffersResponse struct {
	Count    int64           `json:"count"`
	Page     int             `json:"page"`
	PageSize int             `json:"page_size"`
	Results  []OfferResponse `json:"results"`
}
