package handlers

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"github.com/Sh0ckWaveZero/nktc-app-sub003/database"
	"github.com/Sh0ckWaveZero/nktc-app-sub003/models"
)

type ClassroomHandler struct{}

func NewClassroomHandler() *ClassroomHandler { return &ClassroomHandler{} }

// GET /classrooms?q=&programId=
func (h *ClassroomHandler) List(c echo.Context) error {
	q := strings.TrimSpace(c.QueryParam("q"))
	programID := uintQuery(c, "programId")

	tx := database.DB.Model(&models.Classroom{}).
		Preload("Program").Preload("Department").Preload("Level")
	if programID > 0 {
		tx = tx.Where("program_id = ?", programID)
	}
	if q != "" {
		tx = tx.Where("name ILIKE ?", "%"+q+"%")
	}

	var rows []models.Classroom
	if err := tx.Order("name ASC").Find(&rows).Error; err != nil {
		return c.JSON(http.StatusBadRequest, map[string]any{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, rows)
}

type classroomPayload struct {
	Name         string `json:"name" validate:"required,max=100"`
	ProgramID    *uint  `json:"program_id"`
	DepartmentID *uint  `json:"department_id"`
	LevelID      *uint  `json:"level_id"`
}

// POST /classrooms
func (h *ClassroomHandler) Create(c echo.Context) error {
	var p classroomPayload
	if err := c.Bind(&p); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, map[string]any{"error": "INVALID_PAYLOAD"})
	}
	p.Name = strings.TrimSpace(p.Name)
	if err := c.Validate(&p); err != nil {
		return err
	}

	rec := models.Classroom{
		Name:         p.Name,
		ProgramID:    p.ProgramID,
		DepartmentID: p.DepartmentID,
		LevelID:      p.LevelID,
	}
	if err := database.DB.Create(&rec).Error; err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, map[string]any{"error": err.Error()})
	}
	return c.JSON(http.StatusCreated, map[string]any{"id": rec.ID})
}

// PUT /classrooms/:id
func (h *ClassroomHandler) Update(c echo.Context) error {
	id := uintParam(c, "id")

	var room models.Classroom
	if err := database.DB.First(&room, id).Error; err != nil {
		return echo.NewHTTPError(http.StatusNotFound, map[string]any{"error": "NOT_FOUND"})
	}

	var p classroomPayload
	if err := c.Bind(&p); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, map[string]any{"error": "INVALID_PAYLOAD"})
	}
	p.Name = strings.TrimSpace(p.Name)
	if err := c.Validate(&p); err != nil {
		return err
	}

	updates := map[string]any{
		"name":          p.Name,
		"program_id":    p.ProgramID,
		"department_id": p.DepartmentID,
		"level_id":      p.LevelID,
	}
	if err := database.DB.Model(&room).Updates(updates).Error; err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, map[string]any{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, map[string]any{"id": room.ID})
}

// DELETE /classrooms/:id — ห้องที่ยังมีนักเรียนห้ามลบ
func (h *ClassroomHandler) Delete(c echo.Context) error {
	id := uintParam(c, "id")

	var room models.Classroom
	if err := database.DB.First(&room, id).Error; err != nil {
		return echo.NewHTTPError(http.StatusNotFound, map[string]any{"error": "NOT_FOUND"})
	}

	var n int64
	database.DB.Model(&models.Student{}).Where("classroom_id = ?", id).Count(&n)
	if n > 0 {
		return echo.NewHTTPError(http.StatusConflict, map[string]any{"error": "CLASSROOM_NOT_EMPTY"})
	}

	err := database.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("classroom_id = ?", id).Delete(&models.TeacherOnClassroom{}).Error; err != nil {
			return err
		}
		return tx.Delete(&room).Error
	})
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, map[string]any{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, map[string]any{"id": id})
}

type advisorsPayload struct {
	TeacherIDs []uint `json:"teacher_ids" validate:"required"`
}

// PUT /classrooms/:id/advisors — แทนที่รายชื่อครูที่ปรึกษาทั้งชุด
func (h *ClassroomHandler) SetAdvisors(c echo.Context) error {
	id := uintParam(c, "id")

	var room models.Classroom
	if err := database.DB.First(&room, id).Error; err != nil {
		return echo.NewHTTPError(http.StatusNotFound, map[string]any{"error": "NOT_FOUND"})
	}

	var p advisorsPayload
	if err := c.Bind(&p); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, map[string]any{"error": "INVALID_PAYLOAD"})
	}
	if err := c.Validate(&p); err != nil {
		return err
	}

	err := database.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("classroom_id = ?", id).Delete(&models.TeacherOnClassroom{}).Error; err != nil {
			return err
		}
		for _, tid := range p.TeacherIDs {
			rec := models.TeacherOnClassroom{TeacherID: tid, ClassroomID: id}
			if err := tx.Create(&rec).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, map[string]any{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, map[string]any{"id": id, "teacher_ids": p.TeacherIDs})
}
