package response_models

// ProfileResponse flattens the user row and its profile row into one
// payload. Text fields are always strings, never null.
type ProfileResponse struct {
	User         string `json:"user"`
	Username     string `json:"username"`
	FirstName    string `json:"first_name"`
	LastName     string `json:"last_name"`
	File         string `json:"file"`
	Location     string `json:"location"`
	Tel          string `json:"tel"`
	Description  string `json:"description"`
	WorkingHours string `json:"working_hours"`
	Type         string `json:"type"`
	Email        string `json:"email"`
	CreatedAt    string `json:"created_at"`
}
