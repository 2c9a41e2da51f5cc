// File: internal/handler/auth/login.go
package auth

import (
	"errors"
	"net/http"

	"blog/internal/database"
	"blog/internal/dto"
	"blog/internal/handler"
	"blog/internal/logging"
	"blog/internal/service"

	"github.com/labstack/echo/v4"
)

// LoginPageHandler 登入頁
// @Summary     登入頁
// @Tags        auth
// @Produce     json
// @Success     200 {object} dto.AuthPage
// @Router      /login [get]
func LoginPageHandler() echo.HandlerFunc {
	return func(c echo.Context) error {
		return c.JSON(http.StatusOK, dto.AuthPage{Page: handler.NewPage(c), Form: "login"})
	}
}

// LoginHandler 使用 Email/Password 驗證並建立 session
// @Summary     登入使用者
// @Description 驗證失敗一律回傳相同訊息並導向 /login
// @Tags        auth
// @Accept      application/x-www-form-urlencoded
// @Param       email    formData string true "Email"
// @Param       password formData string true "密碼"
// @Success     303
// @Failure     500 {object} dto.HTTPError
// @Router      /login [post]
func LoginHandler(db database.DB, sessions Sessions) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req dto.LoginRequest
		if err := handler.BindForm(c, &req); err != nil {
			return handler.RedirectWithFlash(c, "/login", err.Error())
		}

		u, err := login(c.Request().Context(), db, req.Email, req.Password)
		if err != nil {
			// 詳細原因只寫入 log
			logging.FromContext(c).WithError(err).WithField("email", req.Email).Info("login failed")
			if isCredentialError(err) {
				return handler.RedirectWithFlash(c, "/login", BadLoginMessage)
			}
			return handler.RespondError(c, err)
		}

		if err := sessions.Start(c, u); err != nil {
			return handler.RespondError(c, err)
		}
		return c.Redirect(http.StatusSeeOther, "/")
	}
}

func isCredentialError(err error) bool {
	return errors.Is(err, service.ErrUnknownUser) || errors.Is(err, service.ErrInvalidCredentials)
}
