// File: internal/handler/auth/auth.go
package auth

import (
	"blog/internal/model"
	"blog/internal/service"

	"github.com/labstack/echo/v4"
)

// Sessions 由 session.Manager 實作
type Sessions interface {
	Start(c echo.Context, u *model.User) error
	End(c echo.Context) error
}

const (
	DuplicateEmailMessage = "Email already in use. Login instead."
	BadLoginMessage       = "Invalid email or password."
)

// 以下變數供測試替換
var (
	register = service.Register
	login    = service.Login
)
