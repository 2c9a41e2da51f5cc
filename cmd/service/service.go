// File: cmd/service/service.go
// @title        Blog API
// @version      1.0
// @description  部落格發佈服務：使用者、文章與留言
// @host         localhost:8080
// @BasePath     /
package main

import (
	"context"
	"fmt"
	"os"

	"blog/internal/cache"
	"blog/internal/config"
	"blog/internal/database"
	"blog/internal/handler"
	"blog/internal/logging"
	"blog/internal/router"
	"blog/internal/session"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/sirupsen/logrus"

	_ "blog/docs" // 引入 swag 產出的 docs
)

var (
	loadConfig      = config.Load
	newPgxPool      = database.NewPgxPool
	newRedisClient  = cache.NewRedisClient
	runMigrationsFn = database.RunMigrations
	startServer     = func(e *echo.Echo, addr string) error { return e.Start(addr) }
	exitFunc        = os.Exit
)

func run() error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	log, err := logging.New(cfg.LogLevel)
	if err != nil {
		return err
	}

	db, err := newPgxPool(context.Background(), cfg.DatabaseURL)
	if err != nil {
		return fmt.Errorf("DB 連線失敗: %v", err)
	}
	defer db.Close()

	rdb, err := newRedisClient(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
	if err != nil {
		return fmt.Errorf("Redis 連線失敗: %v", err)
	}
	defer rdb.Close()

	if err := runMigrationsFn(cfg.DatabaseURL); err != nil {
		return fmt.Errorf("Migration 執行失敗: %v", err)
	}

	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{Generator: uuid.NewString}))
	e.Use(logging.Attach(log))
	e.Use(logging.RequestLogger(log))
	e.Use(middleware.Recover())

	sessions := session.NewManager(rdb, cfg.SecretKey, cfg.SessionTTL, cfg.CookieSecure)
	router.Setup(e, db, rdb, sessions, router.Options{AdminEmail: cfg.AdminEmail})

	log.WithField("addr", cfg.ListenAddr).Info("server starting")
	return startServer(e, cfg.ListenAddr)
}

func main() {
	if err := run(); err != nil {
		logrus.WithError(err).Error("service stopped")
		exitFunc(1)
	}
}
