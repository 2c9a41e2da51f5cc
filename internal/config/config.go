// File: internal/config/config.go
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

type Config struct {
	SecretKey     string
	DatabaseURL   string
	RedisAddr     string
	RedisPassword string
	RedisDB       int
	ListenAddr    string
	SessionTTL    time.Duration
	AdminEmail    string
	LogLevel      string
	CookieSecure  bool
}

// Load 從環境變數讀取設定
func Load() (*Config, error) {
	cfg := &Config{
		SecretKey:     os.Getenv("SECRET_KEY"),
		DatabaseURL:   os.Getenv("DATABASE_URL"),
		RedisAddr:     os.Getenv("REDIS_ADDR"),
		RedisPassword: os.Getenv("REDIS_PASSWORD"),
		ListenAddr:    getenv("LISTEN_ADDR", ":8080"),
		AdminEmail:    os.Getenv("ADMIN_EMAIL"),
		LogLevel:      getenv("LOG_LEVEL", "info"),
		SessionTTL:    24 * time.Hour,
	}

	if cfg.SecretKey == "" {
		return nil, fmt.Errorf("環境變數 SECRET_KEY 未設定")
	}
	if cfg.DatabaseURL == "" {
		return nil, fmt.Errorf("環境變數 DATABASE_URL 未設定")
	}
	if cfg.RedisAddr == "" {
		return nil, fmt.Errorf("環境變數 REDIS_ADDR 未設定")
	}

	if v := os.Getenv("REDIS_DB"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			return nil, fmt.Errorf("無效的 REDIS_DB: %q", v)
		}
		cfg.RedisDB = n
	}
	if v := os.Getenv("SESSION_TTL"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil || d <= 0 {
			return nil, fmt.Errorf("無效的 SESSION_TTL: %q", v)
		}
		cfg.SessionTTL = d
	}
	if v := os.Getenv("COOKIE_SECURE"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return nil, fmt.Errorf("無效的 COOKIE_SECURE: %q", v)
		}
		cfg.CookieSecure = b
	}
	return cfg, nil
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
