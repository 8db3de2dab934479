package response_models

// BaseInfoResponse is the public marketplace summary. AverageRating
// carries one decimal of precision, 0.0 when no reviews exist.
type BaseInfoResponse struct {
	ReviewCount          int64   `json:"review_count"`
	AverageRating        float64 `json:"average_rating"`
	BusinessProfileCount int64   `json:"business_profile_count"`
	OfferCount           int64   `json:"offer_count"`
}
