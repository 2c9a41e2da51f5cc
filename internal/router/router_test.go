package router

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"blog/internal/cache"
	"blog/internal/database"
	"blog/internal/handler"
	"blog/internal/model"
	"blog/internal/session"

	"github.com/jackc/pgx/v5"
	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
)

func TestSetupRoutes(t *testing.T) {
	e := echo.New()
	Setup(e, &database.FakeDB{}, &cache.FakeCache{}, session.NewManager(&cache.FakeCache{}, "s", time.Hour, false), Options{})

	got := map[string]struct{}{}
	for _, r := range e.Routes() {
		got[r.Method+" "+r.Path] = struct{}{}
	}

	expected := []string{
		http.MethodGet + " /healthz",
		http.MethodGet + " /register",
		http.MethodPost + " /register",
		http.MethodGet + " /login",
		http.MethodPost + " /login",
		http.MethodGet + " /logout",
		http.MethodGet + " /",
		http.MethodGet + " /post/:id",
		http.MethodPost + " /post/:id",
		http.MethodGet + " /new-post",
		http.MethodPost + " /new-post",
		http.MethodGet + " /edit-post/:id",
		http.MethodPost + " /edit-post/:id",
		http.MethodGet + " /delete/:id",
		http.MethodGet + " /swagger/*",
	}

	require.Equal(t, len(expected), len(got))
	for _, k := range expected {
		_, ok := got[k]
		require.True(t, ok, "missing route %s", k)
	}
}

// 受保護的路由在進入 handler 前就被擋下，不會碰到資料庫
func TestAdminRoutesGuarded(t *testing.T) {
	data := map[string]string{}
	fc := &cache.FakeCache{
		GetFn: func(_ context.Context, key string) *redis.StringCmd {
			v, ok := data[key]
			if !ok {
				return redis.NewStringResult("", redis.Nil)
			}
			return redis.NewStringResult(v, nil)
		},
		SetFn: func(_ context.Context, key string, val any, _ time.Duration) *redis.StatusCmd {
			data[key] = fmt.Sprint(val)
			return redis.NewStatusResult("OK", nil)
		},
	}
	sessions := session.NewManager(fc, "secret", time.Hour, false)

	// FakeDB 只允許讀取使用者，其他呼叫會 panic
	db := &database.FakeDB{}
	e := echo.New()
	e.Validator = handler.NewValidator()
	Setup(e, db, fc, sessions, Options{})

	paths := []struct{ method, path string }{
		{http.MethodGet, "/new-post"},
		{http.MethodPost, "/new-post"},
		{http.MethodGet, "/edit-post/1"},
		{http.MethodPost, "/edit-post/1"},
		{http.MethodGet, "/delete/1"},
	}

	// 未登入
	for _, p := range paths {
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, httptest.NewRequest(p.method, p.path, nil))
		require.Equal(t, http.StatusSeeOther, rec.Code, p.path)
		require.Equal(t, "/login", rec.Header().Get(echo.HeaderLocation), p.path)
	}

	// member 登入後取得 403
	loginRec := httptest.NewRecorder()
	loginCtx := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), loginRec)
	require.NoError(t, sessions.Start(loginCtx, &model.User{ID: 2, Role: model.RoleMember}))
	cookies := loginRec.Result().Cookies()
	require.Len(t, cookies, 1)

	db.QueryRowFn = func(context.Context, string, ...any) pgx.Row {
		return database.FakeRow{Values: []any{2, "Member", "m@x.com", "hash", "member", time.Now()}}
	}
	for _, p := range paths {
		req := httptest.NewRequest(p.method, p.path, nil)
		req.AddCookie(cookies[0])
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)
		require.Equal(t, http.StatusForbidden, rec.Code, p.path)
	}

	// admin 可進入表單頁
	adminRec := httptest.NewRecorder()
	adminCtx := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), adminRec)
	require.NoError(t, sessions.Start(adminCtx, &model.User{ID: 1, Role: model.RoleAdmin}))
	db.QueryRowFn = func(context.Context, string, ...any) pgx.Row {
		return database.FakeRow{Values: []any{1, "Admin", "a@x.com", "hash", "admin", time.Now()}}
	}
	req := httptest.NewRequest(http.MethodGet, "/new-post", nil)
	req.AddCookie(adminRec.Result().Cookies()[0])
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), `"is_admin":true`)
}

func TestFlashCookieSecure(t *testing.T) {
	sessions := session.NewManager(&cache.FakeCache{}, "secret", time.Hour, true)
	e := echo.New()
	Setup(e, &database.FakeDB{}, &cache.FakeCache{}, sessions, Options{})

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/new-post", nil))
	require.Equal(t, http.StatusSeeOther, rec.Code)

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	require.Equal(t, session.FlashCookieName, cookies[0].Name)
	require.True(t, cookies[0].Secure)
}
