// File: internal/handler/posts/list.go
package posts

import (
	"net/http"

	"blog/internal/database"
	"blog/internal/dto"
	"blog/internal/handler"

	"github.com/labstack/echo/v4"
)

// ListPostsHandler 首頁文章列表
// @Summary     列出所有文章
// @Tags        posts
// @Produce     json
// @Success     200 {object} dto.IndexPage
// @Failure     500 {object} dto.HTTPError
// @Router      / [get]
func ListPostsHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		posts, err := listPosts(c.Request().Context(), db)
		if err != nil {
			return handler.RespondError(c, err)
		}
		return c.JSON(http.StatusOK, dto.IndexPage{
			Page:  handler.NewPage(c),
			Posts: dto.NewPostResponses(posts),
		})
	}
}
