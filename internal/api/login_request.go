package api

// swagger:model api.LoginRequest
type LoginRequest struct {
	Email    string `json:"email" example:"alice@example.com"`
	Password string `json:"password" example:"Secret123!"`
}
