package store

import (
	"context"
	"fmt"
	"time"

	"bootcampdir/internal/database"
	"bootcampdir/internal/model"
)

const userColumns = `id, name, email, password_hash, role, reset_token_hash, reset_token_expires_at, created_at`

func scanUser(row interface{ Scan(dest ...any) error }) (*model.User, error) {
	u := &model.User{}
	err := row.Scan(
		&u.ID,
		&u.Name,
		&u.Email,
		&u.PasswordHash,
		&u.Role,
		&u.ResetTokenHash,
		&u.ResetTokenExpiresAt,
		&u.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return u, nil
}

func GetUserByID(ctx context.Context, db database.DB, userID int) (*model.User, error) {
	row := db.QueryRow(ctx,
		`SELECT `+userColumns+` FROM users WHERE id = $1`,
		userID,
	)
	u, err := scanUser(row)
	if err != nil {
		return nil, fmt.Errorf("GetUserByID: %w", err)
	}
	return u, nil
}

func GetUserByEmail(ctx context.Context, db database.DB, email string) (*model.User, error) {
	row := db.QueryRow(ctx,
		`SELECT `+userColumns+` FROM users WHERE email = $1`,
		email,
	)
	u, err := scanUser(row)
	if err != nil {
		return nil, fmt.Errorf("GetUserByEmail: %w", err)
	}
	return u, nil
}

func CreateUser(ctx context.Context, db database.DB, u *model.User) (*model.User, error) {
	row := db.QueryRow(ctx,
		`INSERT INTO users (name, email, password_hash, role)
		 VALUES ($1, $2, $3, $4)
		 RETURNING id, created_at`,
		u.Name,
		u.Email,
		u.PasswordHash,
		u.Role,
	)
	if err := row.Scan(&u.ID, &u.CreatedAt); err != nil {
		return nil, fmt.Errorf("CreateUser: %w", err)
	}
	return u, nil
}

func SetUserResetToken(ctx context.Context, db database.DB, userID int, tokenHash string, expiresAt time.Time) error {
	_, err := db.Exec(ctx,
		`UPDATE users
		 SET reset_token_hash = $1, reset_token_expires_at = $2
		 WHERE id = $3`,
		tokenHash,
		expiresAt,
		userID,
	)
	if err != nil {
		return fmt.Errorf("SetUserResetToken: %w", err)
	}
	return nil
}

// GetUserByResetToken matches an unexpired reset-token hash.
func GetUserByResetToken(ctx context.Context, db database.DB, tokenHash string) (*model.User, error) {
	row := db.QueryRow(ctx,
		`SELECT `+userColumns+`
		 FROM users
		 WHERE reset_token_hash = $1 AND reset_token_expires_at > now()`,
		tokenHash,
	)
	u, err := scanUser(row)
	if err != nil {
		return nil, fmt.Errorf("GetUserByResetToken: %w", err)
	}
	return u, nil
}

// UpdateUserPassword stores the new hash and clears any pending reset token.
func UpdateUserPassword(ctx context.Context, db database.DB, userID int, passwordHash string) error {
	_, err := db.Exec(ctx,
		`UPDATE users
		 SET password_hash = $1, reset_token_hash = NULL, reset_token_expires_at = NULL
		 WHERE id = $2`,
		passwordHash,
		userID,
	)
	if err != nil {
		return fmt.Errorf("UpdateUserPassword: %w", err)
	}
	return nil
}
