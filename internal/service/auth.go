// File: internal/service/auth.go
package service

import (
	"context"
	"errors"
	"fmt"

	"blog/internal/database"
	"blog/internal/model"
	"blog/internal/store"
)

// 以下變數供測試替換
var (
	getUserByEmail = store.GetUserByEmail
	getUserByID    = store.GetUserByID
	countUsers     = store.CountUsers
	createUser     = store.CreateUser
)

type RegisterInput struct {
	Email    string
	Password string
	Name     string
}

// Register 建立新使用者；email 已存在時回傳 ErrDuplicateEmail
// adminEmail 非空時只有該 email 取得 admin 角色，否則第一位註冊者成為 admin
func Register(ctx context.Context, db database.DB, in RegisterInput, adminEmail string) (*model.User, error) {
	_, err := getUserByEmail(ctx, db, in.Email)
	switch {
	case err == nil:
		return nil, ErrDuplicateEmail
	case !errors.Is(err, store.ErrNotFound):
		return nil, fmt.Errorf("Register: %w", err)
	}

	role, err := roleFor(ctx, db, in.Email, adminEmail)
	if err != nil {
		return nil, fmt.Errorf("Register: %w", err)
	}

	hash, err := HashPassword(in.Password)
	if err != nil {
		return nil, fmt.Errorf("Register: hash password: %w", err)
	}

	u, err := createUser(ctx, db, &model.User{
		Name:         in.Name,
		Email:        in.Email,
		PasswordHash: hash,
		Role:         role,
	})
	// users_single_admin 只允許一位 admin；同時註冊的第一位使用者改以 member 重試
	if errors.Is(err, store.ErrConflict) && role == model.RoleAdmin {
		u, err = createUser(ctx, db, &model.User{
			Name:         in.Name,
			Email:        in.Email,
			PasswordHash: hash,
			Role:         model.RoleMember,
		})
	}
	if errors.Is(err, store.ErrConflict) {
		return nil, ErrDuplicateEmail
	}
	if err != nil {
		return nil, fmt.Errorf("Register: %w", err)
	}
	return u, nil
}

func roleFor(ctx context.Context, db database.DB, email, adminEmail string) (model.Role, error) {
	if adminEmail != "" {
		if email == adminEmail {
			return model.RoleAdmin, nil
		}
		return model.RoleMember, nil
	}
	n, err := countUsers(ctx, db)
	if err != nil {
		return "", err
	}
	if n == 0 {
		return model.RoleAdmin, nil
	}
	return model.RoleMember, nil
}

// Login 以 email/密碼驗證使用者
func Login(ctx context.Context, db database.DB, email, password string) (*model.User, error) {
	u, err := getUserByEmail(ctx, db, email)
	if errors.Is(err, store.ErrNotFound) {
		return nil, ErrUnknownUser
	}
	if err != nil {
		return nil, fmt.Errorf("Login: %w", err)
	}
	if err := ComparePassword(u.PasswordHash, password); err != nil {
		return nil, ErrInvalidCredentials
	}
	return u, nil
}

// CurrentUser 依 session 中的 user id 取回使用者；找不到時回傳 nil, nil
func CurrentUser(ctx context.Context, db database.DB, userID int) (*model.User, error) {
	u, err := getUserByID(ctx, db, userID)
	if errors.Is(err, store.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("CurrentUser: %w", err)
	}
	return u, nil
}
