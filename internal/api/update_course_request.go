package api

// swagger:model api.UpdateCourseRequest
type UpdateCourseRequest struct {
	Title        string `json:"title" validate:"required,max=100"`
	Description  string `json:"description" validate:"required"`
	Tuition      int    `json:"tuition" validate:"required,min=0"`
	Weeks        int    `json:"weeks" validate:"required,min=1"`
	MinimumSkill string `json:"minimum_skill" validate:"required,oneof=beginner intermediate advanced"`
}
