// File: internal/session/flash.go
package session

import (
	"encoding/base64"
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"
)

const (
	FlashCookieName  = "flash"
	flashContextKey  = "session.flashes"
	secureContextKey = "session.secure"
)

// Attach 讓 flash cookie 與 session cookie 使用相同的 Secure 設定
func (m *Manager) Attach() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			c.Set(secureContextKey, m.secure)
			return next(c)
		}
	}
}

// SetFlash 加入一則在下一次頁面請求顯示的訊息
func SetFlash(c echo.Context, msg string) {
	msgs := append(pending(c), msg)
	c.Set(flashContextKey, msgs)

	raw, _ := json.Marshal(msgs)
	writeFlashCookie(c, base64.RawURLEncoding.EncodeToString(raw), false)
}

// Flashes 取出並清除待顯示的訊息
func Flashes(c echo.Context) []string {
	msgs := pending(c)
	if len(msgs) == 0 {
		return []string{}
	}
	c.Set(flashContextKey, []string{})
	writeFlashCookie(c, "", true)
	return msgs
}

// writeFlashCookie 取代同一回應中先前寫入的 flash cookie，每個回應只留一個
func writeFlashCookie(c echo.Context, value string, expire bool) {
	h := c.Response().Header()
	prefix := FlashCookieName + "="
	kept := h.Values(echo.HeaderSetCookie)[:0:0]
	for _, v := range h.Values(echo.HeaderSetCookie) {
		if !strings.HasPrefix(v, prefix) {
			kept = append(kept, v)
		}
	}
	h.Del(echo.HeaderSetCookie)
	for _, v := range kept {
		h.Add(echo.HeaderSetCookie, v)
	}

	secure, _ := c.Get(secureContextKey).(bool)
	cookie := &http.Cookie{
		Name:     FlashCookieName,
		Value:    value,
		Path:     "/",
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteLaxMode,
	}
	if expire {
		cookie.Expires = time.Unix(0, 0)
		cookie.MaxAge = -1
	}
	c.SetCookie(cookie)
}

func pending(c echo.Context) []string {
	if msgs, ok := c.Get(flashContextKey).([]string); ok {
		return append([]string(nil), msgs...)
	}
	cookie, err := c.Cookie(FlashCookieName)
	if err != nil || cookie.Value == "" {
		return nil
	}
	raw, err := base64.RawURLEncoding.DecodeString(cookie.Value)
	if err != nil {
		return nil
	}
	var msgs []string
	if err := json.Unmarshal(raw, &msgs); err != nil {
		return nil
	}
	return msgs
}
