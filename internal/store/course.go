package store

import (
	"context"
	"fmt"

	"bootcampdir/internal/api"
	"bootcampdir/internal/database"
	"bootcampdir/internal/model"

	"github.com/jackc/pgx/v5"
)

const courseColumns = `id, bootcamp_id, title, description, tuition, weeks, minimum_skill, created_at`

var courseListColumns = map[string]bool{
	"id":            true,
	"bootcamp_id":   true,
	"title":         true,
	"tuition":       true,
	"weeks":         true,
	"minimum_skill": true,
	"created_at":    true,
}

func scanCourse(row interface{ Scan(dest ...any) error }) (*model.Course, error) {
	c := &model.Course{}
	err := row.Scan(
		&c.ID,
		&c.BootcampID,
		&c.Title,
		&c.Description,
		&c.Tuition,
		&c.Weeks,
		&c.MinimumSkill,
		&c.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return c, nil
}

func collectCourses(rows pgx.Rows) ([]model.Course, error) {
	defer rows.Close()
	out := []model.Course{}
	for rows.Next() {
		c, err := scanCourse(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *c)
	}
	return out, rows.Err()
}

func GetCourseByID(ctx context.Context, db database.DB, id int) (*model.Course, error) {
	row := db.QueryRow(ctx,
		`SELECT `+courseColumns+` FROM courses WHERE id = $1`,
		id,
	)
	c, err := scanCourse(row)
	if err != nil {
		return nil, fmt.Errorf("GetCourseByID: %w", err)
	}
	return c, nil
}

func CreateCourse(ctx context.Context, db database.DB, c *model.Course) (*model.Course, error) {
	row := db.QueryRow(ctx,
		`INSERT INTO courses (bootcamp_id, title, description, tuition, weeks, minimum_skill)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 RETURNING id, created_at`,
		c.BootcampID,
		c.Title,
		c.Description,
		c.Tuition,
		c.Weeks,
		c.MinimumSkill,
	)
	if err := row.Scan(&c.ID, &c.CreatedAt); err != nil {
		return nil, fmt.Errorf("CreateCourse: %w", err)
	}
	return c, nil
}

func UpdateCourse(ctx context.Context, db database.DB, c *model.Course) (*model.Course, error) {
	row := db.QueryRow(ctx,
		`UPDATE courses
		 SET title = $1, description = $2, tuition = $3, weeks = $4, minimum_skill = $5
		 WHERE id = $6
		 RETURNING `+courseColumns,
		c.Title,
		c.Description,
		c.Tuition,
		c.Weeks,
		c.MinimumSkill,
		c.ID,
	)
	updated, err := scanCourse(row)
	if err != nil {
		return nil, fmt.Errorf("UpdateCourse: %w", err)
	}
	return updated, nil
}

func DeleteCourse(ctx context.Context, db database.DB, id int) error {
	_, err := db.Exec(ctx,
		`DELETE FROM courses WHERE id = $1`,
		id,
	)
	if err != nil {
		return fmt.Errorf("DeleteCourse: %w", err)
	}
	return nil
}

func ListCourses(ctx context.Context, db database.DB, p api.ListParams) ([]model.Course, error) {
	sql, args := buildListQuery(`SELECT `+courseColumns+` FROM courses`, courseListColumns, p)
	rows, err := db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("ListCourses: %w", err)
	}
	out, err := collectCourses(rows)
	if err != nil {
		return nil, fmt.Errorf("ListCourses: %w", err)
	}
	return out, nil
}

func ListCoursesByBootcamp(ctx context.Context, db database.DB, bootcampID int) ([]model.Course, error) {
	rows, err := db.Query(ctx,
		`SELECT `+courseColumns+` FROM courses WHERE bootcamp_id = $1 ORDER BY id`,
		bootcampID,
	)
	if err != nil {
		return nil, fmt.Errorf("ListCoursesByBootcamp: %w", err)
	}
	out, err := collectCourses(rows)
	if err != nil {
		return nil, fmt.Errorf("ListCoursesByBootcamp: %w", err)
	}
	return out, nil
}
