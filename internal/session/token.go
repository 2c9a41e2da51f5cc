// File: internal/session/token.go
package session

import (
	"fmt"
	"strconv"
	"time"

	"blog/internal/model"

	"github.com/golang-jwt/jwt/v5"
)

// Claims 定義 session cookie 的 JWT 負載內容
type Claims struct {
	SessionID string `json:"sid"`
	UserID    int    `json:"uid"`
	jwt.RegisteredClaims
}

var parseWithClaims = jwt.ParseWithClaims

// IssueSessionToken 依據 session id 與使用者資訊產生 HS256 JWT
func IssueSessionToken(secret []byte, sid string, user model.User, now time.Time, ttl time.Duration) (string, error) {
	if len(secret) == 0 {
		return "", fmt.Errorf("session secret not set")
	}
	claims := Claims{
		SessionID: sid,
		UserID:    user.ID,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        sid,
			Subject:   strconv.Itoa(user.ID),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(secret)
}

// VerifySessionToken 驗證簽章與到期時間並解析 Claims
func VerifySessionToken(secret []byte, tokenString string) (*Claims, error) {
	if len(secret) == 0 {
		return nil, fmt.Errorf("session secret not set")
	}
	token, err := parseWithClaims(tokenString, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return secret, nil
	})
	if err != nil {
		return nil, err
	}
	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid || claims.SessionID == "" {
		return nil, fmt.Errorf("invalid session token")
	}
	return claims, nil
}
