// File: internal/handler/health.go
package handler

import (
	"net/http"

	"blog/internal/cache"
	"blog/internal/database"
	"blog/internal/dto"

	"github.com/labstack/echo/v4"
)

// HealthResponse 健康檢查回應模型
// swagger:model HealthResponse
type HealthResponse struct {
	// 回應訊息
	Message string `json:"message" example:"pong"`
}

// HealthHandler 健康檢查
// @Summary     Health Check
// @Description 回傳 pong，並檢查資料庫與 session 儲存連線是否正常
// @Tags        health
// @Produce     json
// @Success     200 {object} HealthResponse
// @Failure     500 {object} dto.HTTPError
// @Router      /healthz [get]
func HealthHandler(db database.DB, cch cache.Cache) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()
		if err := db.Ping(ctx); err != nil {
			return c.JSON(http.StatusInternalServerError, dto.HTTPError{Message: "database unhealthy"})
		}
		if err := cch.Ping(ctx).Err(); err != nil {
			return c.JSON(http.StatusInternalServerError, dto.HTTPError{Message: "session store unhealthy"})
		}
		return c.JSON(http.StatusOK, HealthResponse{Message: "pong"})
	}
}
