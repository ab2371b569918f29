package api

// UpdateBootcampRequest carries the mutable bootcamp fields. The location is
// fixed at creation time; changing the address would require re-geocoding,
// which this API does not expose.
// swagger:model api.UpdateBootcampRequest
type UpdateBootcampRequest struct {
	Name        string   `json:"name" validate:"required,max=50"`
	Description string   `json:"description" validate:"required,max=500"`
	Website     string   `json:"website" validate:"omitempty,url"`
	Careers     []string `json:"careers" validate:"required,min=1,dive,oneof='Web Development' 'Mobile Development' 'UI/UX' 'Data Science' 'Business' 'Other'"`
}
