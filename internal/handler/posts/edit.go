// File: internal/handler/posts/edit.go
package posts

import (
	"errors"
	"fmt"
	"net/http"

	"blog/internal/database"
	"blog/internal/dto"
	"blog/internal/handler"
	"blog/internal/middleware"
	"blog/internal/service"

	"github.com/labstack/echo/v4"
)

// EditPostPageHandler 帶入原內容的編輯表單（需 admin）
// @Summary     編輯文章表單
// @Tags        posts
// @Produce     json
// @Param       id  path     int true "文章 ID"
// @Success     200 {object} dto.PostFormPage
// @Failure     403 {object} dto.HTTPError
// @Failure     404 {object} dto.HTTPError
// @Router      /edit-post/{id} [get]
func EditPostPageHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, ok := handler.ParseID(c)
		if !ok {
			return handler.NotFound(c)
		}
		detail, err := getPost(c.Request().Context(), db, id)
		if err != nil {
			return handler.RespondError(c, err)
		}
		p := detail.Post
		return c.JSON(http.StatusOK, dto.PostFormPage{
			Page:   handler.NewPage(c),
			IsEdit: true,
			Form: dto.PostForm{
				Title:    p.Title,
				Subtitle: p.Subtitle,
				ImgURL:   p.ImgURL,
				Body:     p.Body,
			},
		})
	}
}

// EditPostHandler 更新文章內容，作者不變（需 admin）
// @Summary     編輯文章
// @Tags        posts
// @Accept      application/x-www-form-urlencoded
// @Param       id       path     int    true "文章 ID"
// @Param       title    formData string true "標題"
// @Param       subtitle formData string true "副標題"
// @Param       img_url  formData string true "圖片網址"
// @Param       body     formData string true "內文"
// @Success     303
// @Failure     403 {object} dto.HTTPError
// @Failure     404 {object} dto.HTTPError
// @Router      /edit-post/{id} [post]
func EditPostHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, ok := handler.ParseID(c)
		if !ok {
			return handler.NotFound(c)
		}
		back := fmt.Sprintf("/edit-post/%d", id)

		var form dto.PostForm
		if err := handler.BindForm(c, &form); err != nil {
			return handler.RedirectWithFlash(c, back, err.Error())
		}

		_, err := editPost(c.Request().Context(), db, middleware.CurrentUser(c), id, toInput(form))
		if errors.Is(err, service.ErrDuplicateTitle) {
			return handler.RedirectWithFlash(c, back, DuplicateTitleMessage)
		}
		if err != nil {
			return handler.RespondError(c, err)
		}
		return c.Redirect(http.StatusSeeOther, fmt.Sprintf("/post/%d", id))
	}
}
