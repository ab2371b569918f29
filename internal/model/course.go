// File: internal/model/course.go
package model

import "time"

// Minimum skill levels accepted on a course.
const (
	SkillBeginner     = "beginner"
	SkillIntermediate = "intermediate"
	SkillAdvanced     = "advanced"
)

type Course struct {
	ID           int       `db:"id" json:"id"`
	BootcampID   int       `db:"bootcamp_id" json:"bootcamp_id"`
	Title        string    `db:"title" json:"title"`
	Description  string    `db:"description" json:"description"`
	Tuition      int       `db:"tuition" json:"tuition"`
	Weeks        int       `db:"weeks" json:"weeks"`
	MinimumSkill string    `db:"minimum_skill" json:"minimum_skill"`
	CreatedAt    time.Time `db:"created_at" json:"created_at"`
}
