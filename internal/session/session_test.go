package session

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"blog/internal/cache"
	"blog/internal/model"

	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
)

func memCache() (*cache.FakeCache, map[string]string) {
	data := map[string]string{}
	return &cache.FakeCache{
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
		DelFn: func(_ context.Context, keys ...string) *redis.IntCmd {
			var n int64
			for _, k := range keys {
				if _, ok := data[k]; ok {
					delete(data, k)
					n++
				}
			}
			return redis.NewIntResult(n, nil)
		},
	}, data
}

// newContext 建立 echo context，並帶入前一個回應設定的 cookie
func newContext(prev *httptest.ResponseRecorder) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if prev != nil {
		for _, ck := range prev.Result().Cookies() {
			if ck.MaxAge < 0 {
				continue
			}
			req.AddCookie(ck)
		}
	}
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestManagerLifecycle(t *testing.T) {
	fc, data := memCache()
	m := NewManager(fc, "secret", time.Hour, true)
	u := &model.User{ID: 7, Role: model.RoleMember}

	// 未登入
	ctx, _ := newContext(nil)
	_, ok, err := m.UserID(ctx)
	require.NoError(t, err)
	require.False(t, ok)

	// 登入
	ctx, rec := newContext(nil)
	require.NoError(t, m.Start(ctx, u))
	require.Len(t, data, 1)
	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	require.Equal(t, CookieName, cookies[0].Name)
	require.True(t, cookies[0].HttpOnly)
	require.True(t, cookies[0].Secure)

	ctx, _ = newContext(rec)
	id, ok, err := m.UserID(ctx)
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, 7, id)

	// 登出後同一 cookie 失效
	loggedIn := rec
	ctx, out := newContext(loggedIn)
	require.NoError(t, m.End(ctx))
	require.Empty(t, data)
	require.Equal(t, -1, out.Result().Cookies()[0].MaxAge)

	ctx, _ = newContext(loggedIn)
	_, ok, err = m.UserID(ctx)
	require.NoError(t, err)
	require.False(t, ok)

	// 重複登出
	ctx, _ = newContext(loggedIn)
	require.NoError(t, m.End(ctx))
	ctx, _ = newContext(nil)
	require.NoError(t, m.End(ctx))
}

func TestManagerStartUsesUniqueSessionIDs(t *testing.T) {
	fc, data := memCache()
	m := NewManager(fc, "secret", time.Hour, false)
	u := &model.User{ID: 1, Role: model.RoleAdmin}

	ctx, _ := newContext(nil)
	require.NoError(t, m.Start(ctx, u))
	ctx, _ = newContext(nil)
	require.NoError(t, m.Start(ctx, u))
	require.Len(t, data, 2)
	for k, v := range data {
		require.Contains(t, k, keyPrefix)
		require.Equal(t, "1", v)
	}
}

func TestManagerErrors(t *testing.T) {
	u := &model.User{ID: 1}

	t.Run("nil user", func(t *testing.T) {
		m := NewManager(&cache.FakeCache{}, "secret", time.Hour, false)
		ctx, _ := newContext(nil)
		require.Error(t, m.Start(ctx, nil))
	})

	t.Run("store failure", func(t *testing.T) {
		fc := &cache.FakeCache{SetFn: func(context.Context, string, any, time.Duration) *redis.StatusCmd {
			return redis.NewStatusResult("", errors.New("down"))
		}}
		m := NewManager(fc, "secret", time.Hour, false)
		ctx, rec := newContext(nil)
		require.Error(t, m.Start(ctx, u))
		require.Empty(t, rec.Result().Cookies())
	})

	t.Run("lookup failure", func(t *testing.T) {
		fc, _ := memCache()
		m := NewManager(fc, "secret", time.Hour, false)
		ctx, rec := newContext(nil)
		require.NoError(t, m.Start(ctx, u))

		fc.GetFn = func(context.Context, string) *redis.StringCmd {
			return redis.NewStringResult("", errors.New("down"))
		}
		ctx, _ = newContext(rec)
		_, ok, err := m.UserID(ctx)
		require.Error(t, err)
		require.False(t, ok)
	})

	t.Run("forged cookie", func(t *testing.T) {
		fc, _ := memCache()
		m := NewManager(fc, "secret", time.Hour, false)
		other := NewManager(fc, "other-secret", time.Hour, false)
		ctx, rec := newContext(nil)
		require.NoError(t, other.Start(ctx, u))

		ctx, _ = newContext(rec)
		_, ok, err := m.UserID(ctx)
		require.NoError(t, err)
		require.False(t, ok)
	})

	t.Run("stored user mismatch", func(t *testing.T) {
		fc, data := memCache()
		m := NewManager(fc, "secret", time.Hour, false)
		ctx, rec := newContext(nil)
		require.NoError(t, m.Start(ctx, u))
		for k := range data {
			data[k] = "99"
		}
		ctx, _ = newContext(rec)
		_, ok, err := m.UserID(ctx)
		require.NoError(t, err)
		require.False(t, ok)
	})

	t.Run("revoke failure still clears cookie", func(t *testing.T) {
		fc, _ := memCache()
		m := NewManager(fc, "secret", time.Hour, false)
		ctx, rec := newContext(nil)
		require.NoError(t, m.Start(ctx, u))

		fc.DelFn = func(context.Context, ...string) *redis.IntCmd {
			return redis.NewIntResult(0, errors.New("down"))
		}
		ctx, out := newContext(rec)
		require.Error(t, m.End(ctx))
		require.Equal(t, -1, out.Result().Cookies()[0].MaxAge)
	})
}
