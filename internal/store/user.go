// File: internal/store/user.go
package store

import (
	"context"
	"fmt"

	"blog/internal/database"
	"blog/internal/model"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
)

var userColumns = []string{"id", "name", "email", "password_hash", "role", "created_at"}

func GetUserByID(ctx context.Context, db database.DB, userID int) (*model.User, error) {
	query, args, err := psql.Select(userColumns...).
		From(usersTable).
		Where(sq.Eq{"id": userID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("GetUserByID: build query: %w", err)
	}

	u, err := scanUser(db.QueryRow(ctx, query, args...))
	if err != nil {
		return nil, wrapErr("GetUserByID", err)
	}
	return u, nil
}

// GetUserByEmail 以 email 精確比對 (區分大小寫)
func GetUserByEmail(ctx context.Context, db database.DB, email string) (*model.User, error) {
	query, args, err := psql.Select(userColumns...).
		From(usersTable).
		Where(sq.Eq{"email": email}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("GetUserByEmail: build query: %w", err)
	}

	u, err := scanUser(db.QueryRow(ctx, query, args...))
	if err != nil {
		return nil, wrapErr("GetUserByEmail", err)
	}
	return u, nil
}

func CountUsers(ctx context.Context, db database.DB) (int, error) {
	query, args, err := psql.Select("COUNT(*)").From(usersTable).ToSql()
	if err != nil {
		return 0, fmt.Errorf("CountUsers: build query: %w", err)
	}

	var n int
	if err := db.QueryRow(ctx, query, args...).Scan(&n); err != nil {
		return 0, wrapErr("CountUsers", err)
	}
	return n, nil
}

func CreateUser(ctx context.Context, db database.DB, u *model.User) (*model.User, error) {
	query, args, err := psql.Insert(usersTable).
		Columns("name", "email", "password_hash", "role").
		Values(u.Name, u.Email, u.PasswordHash, string(u.Role)).
		Suffix("RETURNING id, created_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("CreateUser: build query: %w", err)
	}

	if err := db.QueryRow(ctx, query, args...).Scan(&u.ID, &u.CreatedAt); err != nil {
		return nil, wrapErr("CreateUser", err)
	}
	return u, nil
}

func scanUser(row pgx.Row) (*model.User, error) {
	u := &model.User{}
	var role string
	if err := row.Scan(
		&u.ID,
		&u.Name,
		&u.Email,
		&u.PasswordHash,
		&role,
		&u.CreatedAt,
	); err != nil {
		return nil, err
	}
	u.Role = model.Role(role)
	return u, nil
}
