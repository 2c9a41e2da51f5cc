// File: internal/middleware/middleware.go
package middleware

import (
	"net/http"

	"blog/internal/database"
	"blog/internal/dto"
	"blog/internal/logging"
	"blog/internal/model"
	"blog/internal/service"
	"blog/internal/session"

	"github.com/labstack/echo/v4"
)

const (
	ContextUserKey = "user"

	LoginFirstMessage = "Please log in first."
)

// SessionReader 由 session.Manager 實作
type SessionReader interface {
	UserID(c echo.Context) (int, bool, error)
}

var currentUser = service.CurrentUser

// LoadUser 依 session cookie 取出目前使用者並放入 context
// 查詢失敗時視為未登入，只記錄 log
func LoadUser(sessions SessionReader, db database.DB) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			id, ok, err := sessions.UserID(c)
			if err != nil {
				logging.FromContext(c).WithError(err).Warn("session lookup failed")
				return next(c)
			}
			if !ok {
				return next(c)
			}
			u, err := currentUser(c.Request().Context(), db, id)
			if err != nil {
				logging.FromContext(c).WithError(err).WithField("user_id", id).Warn("load user failed")
				return next(c)
			}
			if u != nil {
				c.Set(ContextUserKey, u)
			}
			return next(c)
		}
	}
}

// CurrentUser 回傳 LoadUser 放入的使用者，未登入為 nil
func CurrentUser(c echo.Context) *model.User {
	u, _ := c.Get(ContextUserKey).(*model.User)
	return u
}

// RequireAdmin 未登入導向 /login，非 admin 回傳 403
func RequireAdmin(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		switch service.AuthorizeAdmin(CurrentUser(c)) {
		case service.Unauthenticated:
			session.SetFlash(c, LoginFirstMessage)
			return c.Redirect(http.StatusSeeOther, "/login")
		case service.Forbidden:
			return c.JSON(http.StatusForbidden, dto.HTTPError{Message: "admin privileges required"})
		}
		return next(c)
	}
}
