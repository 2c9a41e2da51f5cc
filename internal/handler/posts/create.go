// File: internal/handler/posts/create.go
package posts

import (
	"errors"
	"net/http"

	"blog/internal/database"
	"blog/internal/dto"
	"blog/internal/handler"
	"blog/internal/logging"
	"blog/internal/middleware"
	"blog/internal/service"

	"github.com/labstack/echo/v4"
)

// NewPostPageHandler 空白的新增文章表單（需 admin）
// @Summary     新增文章表單
// @Tags        posts
// @Produce     json
// @Success     200 {object} dto.PostFormPage
// @Failure     403 {object} dto.HTTPError
// @Router      /new-post [get]
func NewPostPageHandler() echo.HandlerFunc {
	return func(c echo.Context) error {
		return c.JSON(http.StatusOK, dto.PostFormPage{Page: handler.NewPage(c)})
	}
}

// CreatePostHandler 新增文章（需 admin）
// @Summary     新增文章
// @Tags        posts
// @Accept      application/x-www-form-urlencoded
// @Param       title    formData string true "標題"
// @Param       subtitle formData string true "副標題"
// @Param       img_url  formData string true "圖片網址"
// @Param       body     formData string true "內文"
// @Success     303
// @Failure     403 {object} dto.HTTPError
// @Router      /new-post [post]
func CreatePostHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		var form dto.PostForm
		if err := handler.BindForm(c, &form); err != nil {
			return handler.RedirectWithFlash(c, "/new-post", err.Error())
		}

		p, err := createPost(c.Request().Context(), db, middleware.CurrentUser(c), toInput(form))
		if errors.Is(err, service.ErrDuplicateTitle) {
			return handler.RedirectWithFlash(c, "/new-post", DuplicateTitleMessage)
		}
		if err != nil {
			return handler.RespondError(c, err)
		}
		logging.FromContext(c).WithField("post_id", p.ID).Info("post created")
		return c.Redirect(http.StatusSeeOther, "/")
	}
}
