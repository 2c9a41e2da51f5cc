// File: internal/router/router.go
package router

import (
	"github.com/labstack/echo/v4"
	echoSwagger "github.com/swaggo/echo-swagger"

	"blog/internal/cache"
	"blog/internal/database"
	"blog/internal/handler"
	"blog/internal/handler/auth"
	"blog/internal/handler/posts"
	"blog/internal/middleware"
	"blog/internal/session"
)

// Options 路由需要的設定值
type Options struct {
	AdminEmail string
}

// Setup 註冊所有路由與中介層
func Setup(e *echo.Echo, db database.DB, cch cache.Cache, sessions *session.Manager, opts Options) {
	e.Use(sessions.Attach())
	e.Use(middleware.LoadUser(sessions, db))

	// 健康檢查
	e.GET("/healthz", handler.HealthHandler(db, cch))

	// 註冊、登入、登出
	e.GET("/register", auth.RegisterPageHandler())
	e.POST("/register", auth.RegisterHandler(db, sessions, opts.AdminEmail))
	e.GET("/login", auth.LoginPageHandler())
	e.POST("/login", auth.LoginHandler(db, sessions))
	e.GET("/logout", auth.LogoutHandler(sessions))

	// 文章瀏覽與留言
	e.GET("/", posts.ListPostsHandler(db))
	e.GET("/post/:id", posts.ShowPostHandler(db))
	e.POST("/post/:id", posts.AddCommentHandler(db))

	// 管理員專屬
	e.GET("/new-post", posts.NewPostPageHandler(), middleware.RequireAdmin)
	e.POST("/new-post", posts.CreatePostHandler(db), middleware.RequireAdmin)
	e.GET("/edit-post/:id", posts.EditPostPageHandler(db), middleware.RequireAdmin)
	e.POST("/edit-post/:id", posts.EditPostHandler(db), middleware.RequireAdmin)
	e.GET("/delete/:id", posts.DeletePostHandler(db), middleware.RequireAdmin)

	e.GET("/swagger/*", echoSwagger.WrapHandler)
}
