package store

import (
	"context"
	"errors"
	"testing"
	"time"

	"bootcampdir/internal/database"
	"bootcampdir/internal/model"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/require"
)

type fakeUserRow struct {
	scanErr error
	user    *model.User
}

func (r *fakeUserRow) Scan(dest ...any) error {
	if r.scanErr != nil {
		return r.scanErr
	}
	u := r.user
	switch len(dest) {
	case 8:
		*dest[0].(*int) = u.ID
		*dest[1].(*string) = u.Name
		*dest[2].(*string) = u.Email
		*dest[3].(*string) = u.PasswordHash
		*dest[4].(*string) = u.Role
		*dest[5].(**string) = u.ResetTokenHash
		*dest[6].(**time.Time) = u.ResetTokenExpiresAt
		*dest[7].(*time.Time) = u.CreatedAt
	case 2:
		// CreateUser: id, created_at
		*dest[0].(*int) = u.ID
		*dest[1].(*time.Time) = u.CreatedAt
	default:
		panic("fakeUserRow.Scan: unexpected number of dest")
	}
	return nil
}

func TestUserStore(t *testing.T) {
	now := time.Now().UTC()
	sample := model.User{
		ID:           1,
		Name:         "Jane",
		Email:        "jane@example.com",
		PasswordHash: "hash",
		Role:         model.RolePublisher,
		CreatedAt:    now,
	}

	t.Run("GetUserByID ok", func(t *testing.T) {
		db := &database.FakeDB{
			QueryRowFn: func(_ context.Context, _ string, _ ...any) pgx.Row {
				return &fakeUserRow{user: &sample}
			},
		}
		got, err := GetUserByID(context.Background(), db, 1)
		require.NoError(t, err)
		require.Equal(t, sample.Email, got.Email)
		require.Equal(t, sample.Role, got.Role)
	})

	t.Run("GetUserByID not found", func(t *testing.T) {
		db := &database.FakeDB{
			QueryRowFn: func(_ context.Context, _ string, _ ...any) pgx.Row {
				return &fakeUserRow{scanErr: pgx.ErrNoRows}
			},
		}
		_, err := GetUserByID(context.Background(), db, 1)
		require.ErrorIs(t, err, pgx.ErrNoRows)
	})

	t.Run("GetUserByEmail ok", func(t *testing.T) {
		var gotArg any
		db := &database.FakeDB{
			QueryRowFn: func(_ context.Context, _ string, args ...any) pgx.Row {
				gotArg = args[0]
				return &fakeUserRow{user: &sample}
			},
		}
		got, err := GetUserByEmail(context.Background(), db, "jane@example.com")
		require.NoError(t, err)
		require.Equal(t, "jane@example.com", gotArg)
		require.Equal(t, sample.ID, got.ID)
	})

	t.Run("CreateUser ok", func(t *testing.T) {
		db := &database.FakeDB{
			QueryRowFn: func(_ context.Context, _ string, _ ...any) pgx.Row {
				return &fakeUserRow{user: &model.User{ID: 7, CreatedAt: now}}
			},
		}
		u := model.User{Name: "n", Email: "e", PasswordHash: "h", Role: model.RoleUser}
		got, err := CreateUser(context.Background(), db, &u)
		require.NoError(t, err)
		require.Equal(t, 7, got.ID)
		require.Equal(t, now, got.CreatedAt)
	})

	t.Run("CreateUser err", func(t *testing.T) {
		db := &database.FakeDB{
			QueryRowFn: func(_ context.Context, _ string, _ ...any) pgx.Row {
				return &fakeUserRow{scanErr: errors.New("dup")}
			},
		}
		_, err := CreateUser(context.Background(), db, &model.User{})
		require.Error(t, err)
	})

	t.Run("SetUserResetToken ok", func(t *testing.T) {
		var gotArgs []any
		db := &database.FakeDB{
			ExecFn: func(_ context.Context, _ string, args ...any) (pgconn.CommandTag, error) {
				gotArgs = args
				return pgconn.CommandTag{}, nil
			},
		}
		expires := now.Add(15 * time.Minute)
		require.NoError(t, SetUserResetToken(context.Background(), db, 1, "tokenhash", expires))
		require.Equal(t, []any{"tokenhash", expires, 1}, gotArgs)
	})

	t.Run("GetUserByResetToken expired", func(t *testing.T) {
		db := &database.FakeDB{
			QueryRowFn: func(_ context.Context, _ string, _ ...any) pgx.Row {
				return &fakeUserRow{scanErr: pgx.ErrNoRows}
			},
		}
		_, err := GetUserByResetToken(context.Background(), db, "tokenhash")
		require.ErrorIs(t, err, pgx.ErrNoRows)
	})

	t.Run("UpdateUserPassword clears reset token", func(t *testing.T) {
		var gotSQL string
		db := &database.FakeDB{
			ExecFn: func(_ context.Context, sql string, _ ...any) (pgconn.CommandTag, error) {
				gotSQL = sql
				return pgconn.CommandTag{}, nil
			},
		}
		require.NoError(t, UpdateUserPassword(context.Background(), db, 1, "newhash"))
		require.Contains(t, gotSQL, "reset_token_hash = NULL")
	})

	t.Run("UpdateUserPassword err", func(t *testing.T) {
		db := &database.FakeDB{
			ExecFn: func(_ context.Context, _ string, _ ...any) (pgconn.CommandTag, error) {
				return pgconn.CommandTag{}, errors.New("fail")
			},
		}
		require.Error(t, UpdateUserPassword(context.Background(), db, 1, "newhash"))
	})
}
