// File: internal/handler/posts/show.go
package posts

import (
	"errors"
	"fmt"
	"net/http"

	"blog/internal/database"
	"blog/internal/dto"
	"blog/internal/handler"
	"blog/internal/logging"
	"blog/internal/middleware"
	"blog/internal/service"

	"github.com/labstack/echo/v4"
)

// ShowPostHandler 單篇文章與留言
// @Summary     取得文章
// @Tags        posts
// @Produce     json
// @Param       id  path     int true "文章 ID"
// @Success     200 {object} dto.PostPage
// @Failure     404 {object} dto.HTTPError
// @Router      /post/{id} [get]
func ShowPostHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, ok := handler.ParseID(c)
		if !ok {
			return handler.NotFound(c)
		}
		return renderPost(c, db, id)
	}
}

// AddCommentHandler 登入使用者對文章留言
// @Summary     新增留言
// @Description 文章不存在回傳 404；未登入導向 /login；成功後回傳文章頁
// @Tags        posts
// @Accept      application/x-www-form-urlencoded
// @Produce     json
// @Param       id   path     int    true "文章 ID"
// @Param       body formData string true "留言內容"
// @Success     200  {object} dto.PostPage
// @Failure     404  {object} dto.HTTPError
// @Router      /post/{id} [post]
func AddCommentHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, ok := handler.ParseID(c)
		if !ok {
			return handler.NotFound(c)
		}
		var form dto.CommentForm
		if err := handler.BindForm(c, &form); err != nil {
			// 文章不存在時優先回傳 404
			if _, perr := getPost(c.Request().Context(), db, id); perr != nil {
				return handler.RespondError(c, perr)
			}
			return handler.RedirectWithFlash(c, fmt.Sprintf("/post/%d", id), err.Error())
		}

		u := middleware.CurrentUser(c)
		_, err := addComment(c.Request().Context(), db, u, id, form.Body)
		if errors.Is(err, service.ErrUnauthenticated) {
			return handler.RedirectWithFlash(c, "/login", CommentLoginMessage)
		}
		if err != nil {
			return handler.RespondError(c, err)
		}
		logging.FromContext(c).WithField("post_id", id).WithField("user_id", u.ID).Info("comment added")
		return renderPost(c, db, id)
	}
}

func renderPost(c echo.Context, db database.DB, id int) error {
	detail, err := getPost(c.Request().Context(), db, id)
	if err != nil {
		return handler.RespondError(c, err)
	}
	return c.JSON(http.StatusOK, dto.PostPage{
		Page:     handler.NewPage(c),
		Post:     dto.NewPostResponse(detail.Post),
		Comments: dto.NewCommentResponses(detail.Comments),
		Form:     dto.CommentForm{},
	})
}
