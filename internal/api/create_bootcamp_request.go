package api

// swagger:model api.CreateBootcampRequest
type CreateBootcampRequest struct {
	Name        string   `json:"name" validate:"required,max=50" example:"Devworks Bootcamp"`
	Description string   `json:"description" validate:"required,max=500"`
	Website     string   `json:"website" validate:"omitempty,url" example:"https://devworks.com"`
	Address     string   `json:"address" validate:"required" example:"233 Bay State Rd Boston MA 02215"`
	Careers     []string `json:"careers" validate:"required,min=1,dive,oneof='Web Development' 'Mobile Development' 'UI/UX' 'Data Science' 'Business' 'Other'"`
}
