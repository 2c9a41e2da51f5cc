// File: internal/handler/auth/logout.go
package auth

import (
	"net/http"

	"blog/internal/logging"

	"github.com/labstack/echo/v4"
)

// LogoutHandler 結束 session 並導向首頁，未登入時同樣成功
// @Summary     登出
// @Tags        auth
// @Success     303
// @Router      /logout [get]
func LogoutHandler(sessions Sessions) echo.HandlerFunc {
	return func(c echo.Context) error {
		if err := sessions.End(c); err != nil {
			logging.FromContext(c).WithError(err).Warn("revoke session failed")
		}
		return c.Redirect(http.StatusSeeOther, "/")
	}
}
