// File: internal/handler/posts/delete.go
package posts

import (
	"net/http"

	"blog/internal/database"
	"blog/internal/handler"
	"blog/internal/logging"
	"blog/internal/middleware"

	"github.com/labstack/echo/v4"
)

// DeletePostHandler 刪除文章與其留言（需 admin）
// @Summary     刪除文章
// @Tags        posts
// @Param       id  path int true "文章 ID"
// @Success     303
// @Failure     403 {object} dto.HTTPError
// @Failure     404 {object} dto.HTTPError
// @Router      /delete/{id} [get]
func DeletePostHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, ok := handler.ParseID(c)
		if !ok {
			return handler.NotFound(c)
		}
		if err := deletePost(c.Request().Context(), db, middleware.CurrentUser(c), id); err != nil {
			return handler.RespondError(c, err)
		}
		logging.FromContext(c).WithField("post_id", id).Info("post deleted")
		return c.Redirect(http.StatusSeeOther, "/")
	}
}
