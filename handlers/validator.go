package handlers

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

// Validator ผูก validator/v10 เข้ากับ echo → ตรวจ payload ที่ขอบระบบครั้งเดียว
type Validator struct {
	v *validator.Validate
}

func NewValidator() *Validator { return &Validator{v: validator.New()} }

func (cv *Validator) Validate(i any) error {
	if err := cv.v.Struct(i); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, map[string]any{
			"error":  "INVALID_PAYLOAD",
			"detail": err.Error(),
		})
	}
	return nil
}
