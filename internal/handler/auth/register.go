// File: internal/handler/auth/register.go
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

// RegisterPageHandler 註冊頁
// @Summary     註冊頁
// @Tags        auth
// @Produce     json
// @Success     200 {object} dto.AuthPage
// @Router      /register [get]
func RegisterPageHandler() echo.HandlerFunc {
	return func(c echo.Context) error {
		return c.JSON(http.StatusOK, dto.AuthPage{Page: handler.NewPage(c), Form: "register"})
	}
}

// RegisterHandler 建立帳號並直接登入
// @Summary     註冊使用者
// @Description email 已存在時導向 /login，成功後建立 session 並導向首頁
// @Tags        auth
// @Accept      application/x-www-form-urlencoded
// @Param       email    formData string true "Email"
// @Param       password formData string true "密碼"
// @Param       name     formData string true "顯示名稱"
// @Success     303
// @Failure     500 {object} dto.HTTPError
// @Router      /register [post]
func RegisterHandler(db database.DB, sessions Sessions, adminEmail string) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req dto.RegisterRequest
		if err := handler.BindForm(c, &req); err != nil {
			return handler.RedirectWithFlash(c, "/register", err.Error())
		}

		u, err := register(c.Request().Context(), db, service.RegisterInput{
			Email:    req.Email,
			Password: req.Password,
			Name:     req.Name,
		}, adminEmail)
		if errors.Is(err, service.ErrDuplicateEmail) {
			return handler.RedirectWithFlash(c, "/login", DuplicateEmailMessage)
		}
		if err != nil {
			return handler.RespondError(c, err)
		}

		if err := sessions.Start(c, u); err != nil {
			return handler.RespondError(c, err)
		}
		logging.FromContext(c).WithField("user_id", u.ID).WithField("role", u.Role).Info("user registered")
		return c.Redirect(http.StatusSeeOther, "/")
	}
}
