package handlers

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/Sh0ckWaveZero/nktc-app-sub003/database"
)

// สถานะการเชื่อมต่อฐานข้อมูล ณ ตอนนี้
func databaseStatus() string {
	if database.DB == nil {
		return "down"
	}
	sqlDB, err := database.DB.DB()
	if err != nil || sqlDB.Ping() != nil {
		return "down"
	}
	return "up"
}

// GET /health — liveness ของ service กับสถานะฐานข้อมูล
func Health(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{
		"status":   "ok",
		"service":  "nktc-app",
		"database": databaseStatus(),
		"time":     time.Now().Format(time.RFC3339),
	})
}
