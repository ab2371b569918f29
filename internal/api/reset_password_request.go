package api

// swagger:model api.ResetPasswordRequest
type ResetPasswordRequest struct {
	Password string `json:"password" validate:"required,min=6" example:"NewSecret123!"`
}
