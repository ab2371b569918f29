package api

// swagger:model api.CreateCourseRequest
type CreateCourseRequest struct {
	Title        string `json:"title" validate:"required,max=100" example:"Full Stack Web Development"`
	Description  string `json:"description" validate:"required"`
	Tuition      int    `json:"tuition" validate:"required,min=0" example:"10000"`
	Weeks        int    `json:"weeks" validate:"required,min=1" example:"12"`
	MinimumSkill string `json:"minimum_skill" validate:"required,oneof=beginner intermediate advanced" example:"beginner"`
}
