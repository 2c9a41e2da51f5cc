// File: internal/session/session.go
package session

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"blog/internal/cache"
	"blog/internal/model"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"
)

const (
	CookieName = "session"
	keyPrefix  = "session:"
)

// 以下變數供測試替換
var (
	newSessionID = uuid.NewString
	timeNow      = time.Now
)

// Manager 以簽章 cookie 搭配 Redis 中的 live session 管理登入狀態
// cookie 只攜帶 session id，登出時刪除 Redis key 即可撤銷
type Manager struct {
	cache  cache.Cache
	secret []byte
	ttl    time.Duration
	secure bool
}

func NewManager(c cache.Cache, secret string, ttl time.Duration, secure bool) *Manager {
	return &Manager{cache: c, secret: []byte(secret), ttl: ttl, secure: secure}
}

func sessionKey(sid string) string { return keyPrefix + sid }

// Start 為使用者建立新 session 並寫入 cookie
func (m *Manager) Start(c echo.Context, u *model.User) error {
	if u == nil {
		return fmt.Errorf("Start: nil user")
	}
	sid := newSessionID()
	now := timeNow()

	if err := m.cache.Set(c.Request().Context(), sessionKey(sid), strconv.Itoa(u.ID), m.ttl).Err(); err != nil {
		return fmt.Errorf("Start: store session: %w", err)
	}
	token, err := IssueSessionToken(m.secret, sid, *u, now, m.ttl)
	if err != nil {
		return fmt.Errorf("Start: %w", err)
	}

	c.SetCookie(&http.Cookie{
		Name:     CookieName,
		Value:    token,
		Path:     "/",
		Expires:  now.Add(m.ttl),
		MaxAge:   int(m.ttl / time.Second),
		HttpOnly: true,
		Secure:   m.secure,
		SameSite: http.SameSiteLaxMode,
	})
	return nil
}

// UserID 回傳目前 request 所屬的使用者 id；未登入時 ok 為 false
func (m *Manager) UserID(c echo.Context) (id int, ok bool, err error) {
	claims := m.claims(c)
	if claims == nil {
		return 0, false, nil
	}
	val, err := m.cache.Get(c.Request().Context(), sessionKey(claims.SessionID)).Result()
	if errors.Is(err, redis.Nil) {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, fmt.Errorf("UserID: %w", err)
	}
	// Redis 中的值必須與 cookie 一致
	if val != strconv.Itoa(claims.UserID) {
		return 0, false, nil
	}
	return claims.UserID, true, nil
}

// End 撤銷 session 並清除 cookie；未登入時也安全
func (m *Manager) End(c echo.Context) error {
	var err error
	if claims := m.claims(c); claims != nil {
		if delErr := m.cache.Del(c.Request().Context(), sessionKey(claims.SessionID)).Err(); delErr != nil {
			err = fmt.Errorf("End: %w", delErr)
		}
	}
	c.SetCookie(&http.Cookie{
		Name:     CookieName,
		Value:    "",
		Path:     "/",
		Expires:  time.Unix(0, 0),
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   m.secure,
		SameSite: http.SameSiteLaxMode,
	})
	return err
}

func (m *Manager) claims(c echo.Context) *Claims {
	cookie, err := c.Cookie(CookieName)
	if err != nil || cookie.Value == "" {
		return nil
	}
	claims, err := VerifySessionToken(m.secret, cookie.Value)
	if err != nil {
		return nil
	}
	return claims
}
