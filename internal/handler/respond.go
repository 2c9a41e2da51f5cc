// File: internal/handler/respond.go
package handler

import (
	"errors"
	"net/http"
	"strconv"

	"blog/internal/dto"
	"blog/internal/logging"
	"blog/internal/middleware"
	"blog/internal/service"
	"blog/internal/session"

	"github.com/labstack/echo/v4"
)

// NewPage 組出頁面共用欄位並取出待顯示的 flash
func NewPage(c echo.Context) dto.Page {
	u := middleware.CurrentUser(c)
	return dto.Page{
		LoggedIn:    u != nil,
		CurrentUser: dto.NewUserResponse(u),
		Flashes:     session.Flashes(c),
	}
}

// RedirectWithFlash 留下訊息並以 303 導向
func RedirectWithFlash(c echo.Context, path, msg string) error {
	if msg != "" {
		session.SetFlash(c, msg)
	}
	return c.Redirect(http.StatusSeeOther, path)
}

// ParseID 讀取路徑中的 :id，非整數時 ok 為 false
func ParseID(c echo.Context) (int, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return 0, false
	}
	return id, true
}

func NotFound(c echo.Context) error {
	return c.JSON(http.StatusNotFound, dto.HTTPError{Message: "not found"})
}

// RespondError 將 service 錯誤轉為 HTTP 回應
func RespondError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, service.ErrNotFound):
		return NotFound(c)
	case errors.Is(err, service.ErrForbidden):
		return c.JSON(http.StatusForbidden, dto.HTTPError{Message: "admin privileges required"})
	case errors.Is(err, service.ErrUnauthenticated):
		return RedirectWithFlash(c, "/login", middleware.LoginFirstMessage)
	}
	logging.FromContext(c).WithError(err).Error("request failed")
	return c.JSON(http.StatusInternalServerError, dto.HTTPError{Message: "internal server error"})
}
