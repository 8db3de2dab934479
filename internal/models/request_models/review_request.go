package request_models

type CreateReviewRequest struct {
	BusinessUser string `json:"business_user" binding:"required,uuid"`
	Rating       *int   `json:"rating" binding:"required,gte=0,lte=5"`
	Description  string `json:"description"`
}

// UpdateReviewRequest may change rating and description only; the
// reviewed business is fixed at creation.
type UpdateReviewRequest struct {
	Rating      *int    `json:"rating" binding:"omitempty,gte=0,lte=5"`
	Description *string `json:"description"`
}
