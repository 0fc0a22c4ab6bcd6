package handlers

import (
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/Sh0ckWaveZero/nktc-app-sub003/database"
	"github.com/Sh0ckWaveZero/nktc-app-sub003/middlewares"
	"github.com/Sh0ckWaveZero/nktc-app-sub003/models"
)

// แปลง string -> int; ถ้าแปลงไม่ได้ให้คืนค่าเริ่มต้น
func atoiOr(s string, def int) int {
	if s == "" {
		return def
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return def
	}
	return n
}

func uintParam(c echo.Context, name string) uint {
	n, err := strconv.ParseUint(strings.TrimSpace(c.Param(name)), 10, 64)
	if err != nil {
		return 0
	}
	return uint(n)
}

func uintQuery(c echo.Context, name string) uint {
	n, err := strconv.ParseUint(strings.TrimSpace(c.QueryParam(name)), 10, 64)
	if err != nil {
		return 0
	}
	return uint(n)
}

// teacher id ของผู้ใช้ที่ล็อกอินอยู่ (0 = ไม่ใช่ครู)
func teacherIDFromContext(c echo.Context) uint {
	userID := middlewares.UserID(c)
	if userID == 0 {
		return 0
	}
	var t models.Teacher
	if err := database.DB.Where("user_id = ?", userID).First(&t).Error; err != nil {
		return 0
	}
	return t.ID
}
