package store

import (
	"context"
	"errors"
	"testing"
	"time"

	"bootcampdir/internal/api"
	"bootcampdir/internal/database"
	"bootcampdir/internal/model"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/require"
)

type fakeCourseRow struct {
	scanErr error
	course  *model.Course
}

func (r *fakeCourseRow) Scan(dest ...any) error {
	if r.scanErr != nil {
		return r.scanErr
	}
	c := r.course
	switch len(dest) {
	case 8:
		*dest[0].(*int) = c.ID
		*dest[1].(*int) = c.BootcampID
		*dest[2].(*string) = c.Title
		*dest[3].(*string) = c.Description
		*dest[4].(*int) = c.Tuition
		*dest[5].(*int) = c.Weeks
		*dest[6].(*string) = c.MinimumSkill
		*dest[7].(*time.Time) = c.CreatedAt
	case 2:
		// CreateCourse: id, created_at
		*dest[0].(*int) = c.ID
		*dest[1].(*time.Time) = c.CreatedAt
	default:
		panic("fakeCourseRow.Scan: unexpected number of dest")
	}
	return nil
}

type fakeCourseRows struct {
	data    []model.Course
	idx     int
	scanErr error
	err     error
}

func (r *fakeCourseRows) Close()                                       {}
func (r *fakeCourseRows) Err() error                                   { return r.err }
func (r *fakeCourseRows) CommandTag() pgconn.CommandTag                { return pgconn.CommandTag{} }
func (r *fakeCourseRows) FieldDescriptions() []pgconn.FieldDescription { return nil }
func (r *fakeCourseRows) Next() bool                                   { return r.idx < len(r.data) }
func (r *fakeCourseRows) Scan(dest ...any) error {
	if r.scanErr != nil {
		return r.scanErr
	}
	c := r.data[r.idx]
	r.idx++
	return (&fakeCourseRow{course: &c}).Scan(dest...)
}
func (r *fakeCourseRows) Values() ([]any, error) { return nil, nil }
func (r *fakeCourseRows) RawValues() [][]byte    { return nil }
func (r *fakeCourseRows) Conn() *pgx.Conn        { return nil }

func TestCourseStore(t *testing.T) {
	now := time.Now().UTC()
	sample := model.Course{
		ID:           1,
		BootcampID:   2,
		Title:        "Full Stack Web Development",
		Description:  "twelve weeks",
		Tuition:      10000,
		Weeks:        12,
		MinimumSkill: model.SkillIntermediate,
		CreatedAt:    now,
	}

	t.Run("Get ok", func(t *testing.T) {
		db := &database.FakeDB{
			QueryRowFn: func(_ context.Context, _ string, _ ...any) pgx.Row {
				return &fakeCourseRow{course: &sample}
			},
		}
		got, err := GetCourseByID(context.Background(), db, 1)
		require.NoError(t, err)
		require.Equal(t, sample.Title, got.Title)
		require.Equal(t, sample.BootcampID, got.BootcampID)
	})

	t.Run("Get not found", func(t *testing.T) {
		db := &database.FakeDB{
			QueryRowFn: func(_ context.Context, _ string, _ ...any) pgx.Row {
				return &fakeCourseRow{scanErr: pgx.ErrNoRows}
			},
		}
		_, err := GetCourseByID(context.Background(), db, 1)
		require.ErrorIs(t, err, pgx.ErrNoRows)
	})

	t.Run("Create ok", func(t *testing.T) {
		db := &database.FakeDB{
			QueryRowFn: func(_ context.Context, _ string, _ ...any) pgx.Row {
				return &fakeCourseRow{course: &model.Course{ID: 5, CreatedAt: now}}
			},
		}
		c := sample
		c.ID = 0
		got, err := CreateCourse(context.Background(), db, &c)
		require.NoError(t, err)
		require.Equal(t, 5, got.ID)
	})

	t.Run("Create err", func(t *testing.T) {
		db := &database.FakeDB{
			QueryRowFn: func(_ context.Context, _ string, _ ...any) pgx.Row {
				return &fakeCourseRow{scanErr: errors.New("fk")}
			},
		}
		_, err := CreateCourse(context.Background(), db, &model.Course{})
		require.Error(t, err)
	})

	t.Run("Update ok", func(t *testing.T) {
		updated := sample
		updated.Tuition = 12000
		db := &database.FakeDB{
			QueryRowFn: func(_ context.Context, _ string, _ ...any) pgx.Row {
				return &fakeCourseRow{course: &updated}
			},
		}
		got, err := UpdateCourse(context.Background(), db, &sample)
		require.NoError(t, err)
		require.Equal(t, 12000, got.Tuition)
	})

	t.Run("Delete ok", func(t *testing.T) {
		db := &database.FakeDB{
			ExecFn: func(_ context.Context, _ string, _ ...any) (pgconn.CommandTag, error) {
				return pgconn.CommandTag{}, nil
			},
		}
		require.NoError(t, DeleteCourse(context.Background(), db, 1))
	})

	t.Run("List ok", func(t *testing.T) {
		db := &database.FakeDB{
			QueryFn: func(_ context.Context, _ string, _ ...any) (pgx.Rows, error) {
				return &fakeCourseRows{data: []model.Course{sample, sample, sample}}, nil
			},
		}
		list, err := ListCourses(context.Background(), db, api.ListParams{Page: 1, Limit: 25})
		require.NoError(t, err)
		require.Len(t, list, 3)
	})

	t.Run("ListByBootcamp ok", func(t *testing.T) {
		var gotArg any
		db := &database.FakeDB{
			QueryFn: func(_ context.Context, _ string, args ...any) (pgx.Rows, error) {
				gotArg = args[0]
				return &fakeCourseRows{data: []model.Course{sample}}, nil
			},
		}
		list, err := ListCoursesByBootcamp(context.Background(), db, 2)
		require.NoError(t, err)
		require.Equal(t, 2, gotArg)
		require.Len(t, list, 1)
	})

	t.Run("ListByBootcamp query err", func(t *testing.T) {
		db := &database.FakeDB{
			QueryFn: func(_ context.Context, _ string, _ ...any) (pgx.Rows, error) {
				return nil, errors.New("database fail")
			},
		}
		_, err := ListCoursesByBootcamp(context.Background(), db, 2)
		require.Error(t, err)
	})
}
