package store

import (
	"context"
	"fmt"

	"bootcampdir/internal/api"
	"bootcampdir/internal/database"
	"bootcampdir/internal/model"

	"github.com/jackc/pgx/v5"
)

const bootcampColumns = `id, user_id, name, description, website, address, latitude, longitude, careers, photo, created_at`

// bootcampListColumns are the filterable/sortable columns of the generic
// list contract.
var bootcampListColumns = map[string]bool{
	"id":         true,
	"user_id":    true,
	"name":       true,
	"careers":    true,
	"created_at": true,
}

func scanBootcamp(row interface{ Scan(dest ...any) error }) (*model.Bootcamp, error) {
	b := &model.Bootcamp{}
	err := row.Scan(
		&b.ID,
		&b.UserID,
		&b.Name,
		&b.Description,
		&b.Website,
		&b.Address,
		&b.Latitude,
		&b.Longitude,
		&b.Careers,
		&b.Photo,
		&b.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return b, nil
}

func collectBootcamps(rows pgx.Rows) ([]model.Bootcamp, error) {
	defer rows.Close()
	out := []model.Bootcamp{}
	for rows.Next() {
		b, err := scanBootcamp(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *b)
	}
	return out, rows.Err()
}

func GetBootcampByID(ctx context.Context, db database.DB, id int) (*model.Bootcamp, error) {
	row := db.QueryRow(ctx,
		`SELECT `+bootcampColumns+` FROM bootcamps WHERE id = $1`,
		id,
	)
	b, err := scanBootcamp(row)
	if err != nil {
		return nil, fmt.Errorf("GetBootcampByID: %w", err)
	}
	return b, nil
}

// GetBootcampByUserID returns the user's published bootcamp, pgx.ErrNoRows
// if they have none. Used to enforce the one-bootcamp-per-publisher rule.
func GetBootcampByUserID(ctx context.Context, db database.DB, userID int) (*model.Bootcamp, error) {
	row := db.QueryRow(ctx,
		`SELECT `+bootcampColumns+` FROM bootcamps WHERE user_id = $1 LIMIT 1`,
		userID,
	)
	b, err := scanBootcamp(row)
	if err != nil {
		return nil, fmt.Errorf("GetBootcampByUserID: %w", err)
	}
	return b, nil
}

func CreateBootcamp(ctx context.Context, db database.DB, b *model.Bootcamp) (*model.Bootcamp, error) {
	row := db.QueryRow(ctx,
		`INSERT INTO bootcamps (user_id, name, description, website, address, latitude, longitude, careers)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		 RETURNING id, photo, created_at`,
		b.UserID,
		b.Name,
		b.Description,
		b.Website,
		b.Address,
		b.Latitude,
		b.Longitude,
		b.Careers,
	)
	if err := row.Scan(&b.ID, &b.Photo, &b.CreatedAt); err != nil {
		return nil, fmt.Errorf("CreateBootcamp: %w", err)
	}
	return b, nil
}

// UpdateBootcamp applies the patch as one atomic statement and returns the
// updated record; pgx.ErrNoRows when the bootcamp vanished in the meantime.
func UpdateBootcamp(ctx context.Context, db database.DB, b *model.Bootcamp) (*model.Bootcamp, error) {
	row := db.QueryRow(ctx,
		`UPDATE bootcamps
		 SET name = $1, description = $2, website = $3, careers = $4
		 WHERE id = $5
		 RETURNING `+bootcampColumns,
		b.Name,
		b.Description,
		b.Website,
		b.Careers,
		b.ID,
	)
	updated, err := scanBootcamp(row)
	if err != nil {
		return nil, fmt.Errorf("UpdateBootcamp: %w", err)
	}
	return updated, nil
}

func UpdateBootcampPhoto(ctx context.Context, db database.DB, id int, photo string) error {
	_, err := db.Exec(ctx,
		`UPDATE bootcamps SET photo = $1 WHERE id = $2`,
		photo,
		id,
	)
	if err != nil {
		return fmt.Errorf("UpdateBootcampPhoto: %w", err)
	}
	return nil
}

// DeleteBootcamp removes the bootcamp; its courses go with it through the
// ON DELETE CASCADE constraint.
func DeleteBootcamp(ctx context.Context, db database.DB, id int) error {
	_, err := db.Exec(ctx,
		`DELETE FROM bootcamps WHERE id = $1`,
		id,
	)
	if err != nil {
		return fmt.Errorf("DeleteBootcamp: %w", err)
	}
	return nil
}

func ListBootcamps(ctx context.Context, db database.DB, p api.ListParams) ([]model.Bootcamp, error) {
	sql, args := buildListQuery(`SELECT `+bootcampColumns+` FROM bootcamps`, bootcampListColumns, p)
	rows, err := db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("ListBootcamps: %w", err)
	}
	out, err := collectBootcamps(rows)
	if err != nil {
		return nil, fmt.Errorf("ListBootcamps: %w", err)
	}
	return out, nil
}

// FindBootcampsWithinRadius selects bootcamps whose location lies inside the
// spherical cap of the given angular radius (radians) around the center.
// The central angle comes from the spherical law of cosines, clamped into
// acos' domain; the boundary is inclusive.
func FindBootcampsWithinRadius(ctx context.Context, db database.DB, lat, lng, radius float64) ([]model.Bootcamp, error) {
	rows, err := db.Query(ctx,
		`SELECT `+bootcampColumns+`
		 FROM bootcamps
		 WHERE acos(LEAST(1.0, GREATEST(-1.0,
		       sin(radians($1)) * sin(radians(latitude)) +
		       cos(radians($1)) * cos(radians(latitude)) * cos(radians(longitude - $2))
		 ))) <= $3`,
		lat,
		lng,
		radius,
	)
	if err != nil {
		return nil, fmt.Errorf("FindBootcampsWithinRadius: %w", err)
	}
	out, err := collectBootcamps(rows)
	if err != nil {
		return nil, fmt.Errorf("FindBootcampsWithinRadius: %w", err)
	}
	return out, nil
}
