package response_models

type ReviewResponse struct {
	ID           string `json:"id"`
	BusinessUser string `json:"business_user"`
	Reviewer     string `json:"reviewer"`
	Rating       int    `json:"rating"`
	Description  string `json:"description"`
	CreatedAt    string `json:"created_at"`
	UpdatedAt    string `json:"updated_at"`
}
